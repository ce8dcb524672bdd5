package refurl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed reports a reference URL without a trailing numeric segment.
var ErrMalformed = errors.New("reference url has no trailing numeric id")

// ID extracts the numeric entity ID from a `$ref`-style URL of the form
// `.../{collection}/{id}`, ignoring any query string or fragment.
func ID(ref string) (int64, error) {
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty reference", ErrMalformed)
	}

	if idx := strings.IndexAny(trimmed, "?#"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	trimmed = strings.TrimRight(trimmed, "/")

	segment := trimmed
	if idx := strings.LastIndexByte(trimmed, '/'); idx >= 0 {
		segment = trimmed[idx+1:]
	}

	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, ref)
	}

	return id, nil
}

// MaybeID is ID for optional references: an empty ref resolves to no ID
// rather than an error.
func MaybeID(ref string) (int64, bool, error) {
	if strings.TrimSpace(ref) == "" {
		return 0, false, nil
	}
	id, err := ID(ref)
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// StripQuery removes the query string and fragment from a reference URL.
// Listing endpoints return refs carrying `?lang=en&region=us` style params
// that must not leak into dedup keys.
func StripQuery(ref string) string {
	if idx := strings.IndexAny(ref, "?#"); idx >= 0 {
		return ref[:idx]
	}
	return ref
}
