package spotrac

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gridstats/gridiron/internal/platform/logging"
)

const contractPage = `<html><body>
<table class="contract">
  <thead><tr><th>Year</th><th>Base Salary</th></tr></thead>
  <tbody>
    <tr><td>2023</td><td>$1,250,000</td></tr>
    <tr><td>2024</td><td>$2,000,000</td></tr>
  </tbody>
</table>
<table class="other"><tbody><tr><td>ignored</td></tr></tbody></table>
</body></html>`

func TestTableRows_ParsesFirstTableBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(contractPage))
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{BaseURL: server.URL, Logger: logging.NewNop()})

	rows, err := client.TableRows(context.Background(), server.URL+"/player/contract")
	if err != nil {
		t.Fatalf("TableRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got=%d", len(rows))
	}
	if rows[0][0] != "2023" || rows[0][1] != "$1,250,000" {
		t.Fatalf("unexpected first row: %v", rows[0])
	}
	if rows[1][1] != "$2,000,000" {
		t.Fatalf("unexpected second row: %v", rows[1])
	}
}

func TestTableRows_NotFoundIsEmpty(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{BaseURL: server.URL, Logger: logging.NewNop()})

	rows, err := client.TableRows(context.Background(), server.URL+"/player/missing")
	if err != nil {
		t.Fatalf("TableRows: %v", err)
	}
	if rows != nil {
		t.Fatalf("expected no rows, got=%v", rows)
	}
}

func TestTableRows_NoTable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body><p>nothing here</p></body></html>"))
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{BaseURL: server.URL, Logger: logging.NewNop()})

	rows, err := client.TableRows(context.Background(), server.URL+"/player/empty")
	if err != nil {
		t.Fatalf("TableRows: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got=%v", rows)
	}
}
