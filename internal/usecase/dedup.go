package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gridstats/gridiron/internal/platform/cache"
)

// Entities is the in-run identity map for normalized records. Lookups go
// through two tiers: the in-memory store first, then the repository; only
// a miss on both tiers creates the record.
type Entities struct {
	store *cache.Store
}

func NewEntities(ttl time.Duration) *Entities {
	return &Entities{store: cache.NewStore(ttl)}
}

func (e *Entities) Reset() {
	e.store = cache.NewStore(0)
}

func entityKey(kind string, parts ...any) string {
	var b strings.Builder
	b.WriteString(kind)
	for _, p := range parts {
		b.WriteByte(':')
		fmt.Fprintf(&b, "%v", p)
	}
	return b.String()
}

// lookupOrCreate resolves key through the entity map. Concurrent callers
// for the same key share a single find/create round trip.
func lookupOrCreate[T any](
	ctx context.Context,
	e *Entities,
	key string,
	find func(context.Context) (T, bool, error),
	create func(context.Context) (T, error),
) (T, error) {
	var zero T

	value, err := e.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		existing, ok, err := find(ctx)
		if err != nil {
			return nil, err
		}
		if ok {
			return existing, nil
		}
		return create(ctx)
	})
	if err != nil {
		return zero, err
	}

	out, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: entity %q resolved to unexpected type %T", ErrInvalidInput, key, value)
	}
	return out, nil
}
