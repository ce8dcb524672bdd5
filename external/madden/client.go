package madden

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/gridstats/gridiron/internal/platform/jsondoc"
	"github.com/gridstats/gridiron/internal/platform/logging"
)

const defaultBaseURL = "https://drop-api.ea.com/rating/madden-nfl"

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Client searches the video-game ratings API. Results are raw player
// documents with a stats map; name disambiguation is left to the caller.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{httpClient: httpClient, baseURL: baseURL, logger: logger}
}

// SearchPlayers returns every player document matching the search term.
// The API searches across full names, so a bare last name returns all
// players sharing it.
func (c *Client) SearchPlayers(ctx context.Context, name string) ([]jsondoc.Doc, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("player name is required")
	}

	values := url.Values{}
	values.Set("locale", "en")
	values.Set("limit", "100")
	values.Set("search", name)
	fullURL := c.baseURL + "?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("ratings api status=%d", resp.StatusCode)
	}

	doc, err := jsondoc.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode ratings payload: %w", err)
	}
	return doc.List("items"), nil
}
