package espn

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/gridstats/gridiron/internal/platform/jsondoc"
	"github.com/gridstats/gridiron/internal/platform/logging"
	"github.com/gridstats/gridiron/internal/platform/resilience"
	"github.com/gridstats/gridiron/internal/usecase"
)

const defaultBaseURL = "https://sports.core.api.espn.com/v2/sports/football/leagues/nfl"

var errTransient = crerr.New("league api transient failure")
var errNotFound = crerr.New("league api resource not found")

// canonicalJSON sorts map keys so structurally equal documents render the
// same bytes. Used to deduplicate inline listing items.
var canonicalJSON = sonic.Config{SortMapKeys: true}.Froze()

type ClientConfig struct {
	HTTPClient      *http.Client
	BaseURL         string
	Timeout         time.Duration
	MaxRetries      int
	PageConcurrency int
	Proxies         []string
	Logger          *logging.Logger
	CircuitBreaker  resilience.CircuitBreakerConfig
}

// Client reads the league feed. Every resource is addressed by an absolute
// $ref URL; the BaseURL is only used to build top-level listing URLs.
type Client struct {
	httpClient      *http.Client
	baseURL         string
	maxRetries      int
	pageConcurrency int
	logger          *logging.Logger
	breaker         *resilience.CircuitBreaker
	circuitEnabled  bool
	flight          resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		transport := http.RoundTripper(http.DefaultTransport)
		if len(cfg.Proxies) > 0 {
			transport = newProxyRotatingTransport(cfg.Proxies)
		}
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(transport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	pageConcurrency := cfg.PageConcurrency
	if pageConcurrency < 1 {
		pageConcurrency = 8
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:      httpClient,
		baseURL:         baseURL,
		maxRetries:      maxInt(cfg.MaxRetries, 0),
		pageConcurrency: pageConcurrency,
		logger:          logger,
		breaker:         resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled:  breakerCfg.Enabled,
	}
}

// BaseURL returns the configured feed root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Document fetches a single JSON resource. A 404 yields an empty document
// so callers can treat missing resources as absent fields.
func (c *Client) Document(ctx context.Context, resourceURL string) (jsondoc.Doc, error) {
	raw, err := c.get(ctx, resourceURL)
	if err != nil {
		if stderrors.Is(err, errNotFound) {
			return jsondoc.Doc{}, nil
		}
		return nil, err
	}
	return jsondoc.Decode(raw)
}

// AllRefs walks every page of a paginated listing and returns the union of
// item $ref URLs with query strings and fragments stripped. Pages past the
// first are fetched concurrently.
func (c *Client) AllRefs(ctx context.Context, listURL string) ([]string, error) {
	set := make(map[string]struct{}, 64)
	err := c.walkPages(ctx, listURL, func(page jsondoc.Doc) error {
		for _, item := range page.List("items") {
			ref := strings.TrimSpace(item.Str("$ref"))
			if ref == "" {
				continue
			}
			set[stripQuery(ref)] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(set))
	for ref := range set {
		out = append(out, ref)
	}
	sort.Strings(out)
	return out, nil
}

// AllItems walks every page of a paginated listing and returns the inline
// item documents. Structurally identical items appearing on more than one
// page are dropped.
func (c *Client) AllItems(ctx context.Context, listURL string) ([]jsondoc.Doc, error) {
	seen := make(map[string]struct{}, 64)
	out := make([]jsondoc.Doc, 0, 64)

	err := c.walkPages(ctx, listURL, func(page jsondoc.Doc) error {
		for _, item := range page.List("items") {
			key, err := canonicalJSON.MarshalToString(map[string]any(item))
			if err != nil {
				return fmt.Errorf("canonicalize listing item: %w", err)
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// walkPages fetches page 1 synchronously to learn pageCount, then fans out
// over the remaining pages. visit runs on the caller goroutine only.
func (c *Client) walkPages(ctx context.Context, listURL string, visit func(jsondoc.Doc) error) error {
	first, err := c.Document(ctx, listURL)
	if err != nil {
		return fmt.Errorf("fetch listing page 1: %w", err)
	}
	if err := visit(first); err != nil {
		return err
	}

	pageCount := first.Int("pageCount")
	if pageCount <= 1 {
		return nil
	}

	p := pool.NewWithResults[jsondoc.Doc]().WithContext(ctx).WithMaxGoroutines(c.pageConcurrency)
	for page := int64(2); page <= pageCount; page++ {
		pageURL, err := withPageParam(listURL, page)
		if err != nil {
			return fmt.Errorf("build page url: %w", err)
		}
		p.Go(func(ctx context.Context) (jsondoc.Doc, error) {
			doc, err := c.Document(ctx, pageURL)
			if err != nil {
				return nil, fmt.Errorf("fetch listing page %s: %w", pageURL, err)
			}
			return doc, nil
		})
	}

	pages, err := p.Wait()
	if err != nil {
		return err
	}
	for _, page := range pages {
		if err := visit(page); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, resourceURL string) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "league api circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: league feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	out, err, _ := c.flight.Do(resourceURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, resourceURL)
		if c.circuitEnabled {
			if reqErr != nil && stderrors.Is(reqErr, errTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}
	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errTransient, readErr)
			case resp.StatusCode == http.StatusNotFound:
				return nil, fmt.Errorf("%w: %s", errNotFound, fullURL)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: feed status=%d body=%s", errTransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("feed status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("feed request failed")
	}
	c.logger.WarnContext(ctx, "league api request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func stripQuery(ref string) string {
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	return ref
}

func withPageParam(listURL string, page int64) (string, error) {
	parsed, err := url.Parse(listURL)
	if err != nil {
		return "", err
	}
	values := parsed.Query()
	values.Set("page", strconv.FormatInt(page, 10))
	parsed.RawQuery = values.Encode()
	return parsed.String(), nil
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
