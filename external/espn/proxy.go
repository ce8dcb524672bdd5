package espn

import (
	"bufio"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync/atomic"
)

// proxyRotatingTransport cycles outbound requests across a fixed proxy
// list, one transport per proxy.
type proxyRotatingTransport struct {
	transports []*http.Transport
	next       atomic.Uint64
}

func newProxyRotatingTransport(proxies []string) *proxyRotatingTransport {
	transports := make([]*http.Transport, 0, len(proxies))
	for _, raw := range proxies {
		proxyURL, err := url.Parse(raw)
		if err != nil {
			continue
		}
		base := http.DefaultTransport.(*http.Transport).Clone()
		base.Proxy = http.ProxyURL(proxyURL)
		transports = append(transports, base)
	}
	return &proxyRotatingTransport{transports: transports}
}

func (t *proxyRotatingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if len(t.transports) == 0 {
		return http.DefaultTransport.RoundTrip(req)
	}
	idx := t.next.Add(1) % uint64(len(t.transports))
	return t.transports[idx].RoundTrip(req)
}

// LoadProxies reads one proxy URL per line, skipping blanks and comments.
func LoadProxies(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open proxy file: %w", err)
	}
	defer file.Close()

	var out []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read proxy file: %w", err)
	}
	return out, nil
}
