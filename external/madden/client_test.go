package madden

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gridstats/gridiron/internal/platform/logging"
)

func TestSearchPlayers_QueriesByName(t *testing.T) {
	t.Parallel()

	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"search": r.URL.Query().Get("search"),
			"locale": r.URL.Query().Get("locale"),
			"limit":  r.URL.Query().Get("limit"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[
			{"firstName":"A.J.","lastName":"Brown","stats":{"speed":{"value":92}}},
			{"firstName":"Noah","lastName":"Brown","stats":{"speed":{"value":88}}}]}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		Logger:     logging.NewNop(),
	})

	docs, err := client.SearchPlayers(context.Background(), "Brown")
	if err != nil {
		t.Fatalf("SearchPlayers: %v", err)
	}
	if gotQuery["search"] != "Brown" || gotQuery["locale"] != "en" || gotQuery["limit"] != "100" {
		t.Fatalf("unexpected query: %v", gotQuery)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 items, got=%d", len(docs))
	}
	if docs[0].Str("firstName") != "A.J." {
		t.Fatalf("unexpected first item: %v", docs[0])
	}
	if docs[0].Float("stats", "speed", "value") != 92 {
		t.Fatalf("unexpected stat value: %v", docs[0])
	}
}

func TestSearchPlayers_NotFoundIsEmpty(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{HTTPClient: server.Client(), BaseURL: server.URL, Logger: logging.NewNop()})

	docs, err := client.SearchPlayers(context.Background(), "Nobody")
	if err != nil {
		t.Fatalf("SearchPlayers: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no items, got=%d", len(docs))
	}
}

func TestSearchPlayers_EmptyNameRejected(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{Logger: logging.NewNop()})
	if _, err := client.SearchPlayers(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty name")
	}
}
