package usecase

import (
	"context"
	"sync"

	"github.com/gridstats/gridiron/internal/platform/jsondoc"
)

// stubFetcher serves canned feed responses keyed by URL and counts every
// request so tests can assert what was (not) fetched.
type stubFetcher struct {
	mu    sync.Mutex
	docs  map[string]jsondoc.Doc
	refs  map[string][]string
	items map[string][]jsondoc.Doc
	calls map[string]int
}

func newStubFetcher() *stubFetcher {
	return &stubFetcher{
		docs:  make(map[string]jsondoc.Doc),
		refs:  make(map[string][]string),
		items: make(map[string][]jsondoc.Doc),
		calls: make(map[string]int),
	}
}

func (f *stubFetcher) record(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[url]++
}

func (f *stubFetcher) callCount(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[url]
}

func (f *stubFetcher) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *stubFetcher) Document(_ context.Context, url string) (jsondoc.Doc, error) {
	f.record(url)
	if doc, ok := f.docs[url]; ok {
		return doc, nil
	}
	return jsondoc.Doc{}, nil
}

func (f *stubFetcher) AllRefs(_ context.Context, url string) ([]string, error) {
	f.record(url)
	return f.refs[url], nil
}

func (f *stubFetcher) AllItems(_ context.Context, url string) ([]jsondoc.Doc, error) {
	f.record(url)
	return f.items[url], nil
}

type stubRatings struct {
	mu      sync.Mutex
	items   map[string][]jsondoc.Doc
	queries []string
}

func newStubRatings() *stubRatings {
	return &stubRatings{items: make(map[string][]jsondoc.Doc)}
}

func (s *stubRatings) SearchPlayers(_ context.Context, name string) ([]jsondoc.Doc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, name)
	return s.items[name], nil
}

type stubTables struct {
	mu    sync.Mutex
	rows  map[string][][]string
	calls map[string]int
}

func newStubTables() *stubTables {
	return &stubTables{
		rows:  make(map[string][][]string),
		calls: make(map[string]int),
	}
}

func (s *stubTables) TableRows(_ context.Context, url string) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[url]++
	return s.rows[url], nil
}

func (s *stubTables) callCount(url string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[url]
}
