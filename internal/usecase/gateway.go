package usecase

import (
	"context"

	"github.com/gridstats/gridiron/internal/platform/jsondoc"
)

// DocumentFetcher reads API resources addressed by absolute $ref URLs.
type DocumentFetcher interface {
	// Document fetches a single JSON resource. A missing resource yields an
	// empty document, not an error.
	Document(ctx context.Context, url string) (jsondoc.Doc, error)
	// AllRefs walks every page of a paginated listing and returns the union
	// of item $ref URLs with query strings stripped.
	AllRefs(ctx context.Context, url string) ([]string, error)
	// AllItems walks every page of a paginated listing and returns the inline
	// item documents, dropping duplicates.
	AllItems(ctx context.Context, url string) ([]jsondoc.Doc, error)
}

// RatingsProvider searches the video-game ratings API by player name.
type RatingsProvider interface {
	SearchPlayers(ctx context.Context, name string) ([]jsondoc.Doc, error)
}

// TableProvider scrapes an HTML page and returns the rows of its first
// data table, one cell per string.
type TableProvider interface {
	TableRows(ctx context.Context, url string) ([][]string, error)
}
