package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker(2, time.Minute, 1)

	if err := b.Allow(); err != nil {
		t.Fatalf("closed breaker must allow: %v", err)
	}
	b.RecordFailure()
	b.RecordFailure()

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got=%v", err)
	}
	if b.State() != CircuitStateOpen {
		t.Fatalf("expected open state, got=%s", b.State())
	}
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	t.Parallel()

	now := time.Now()
	b := NewCircuitBreaker(1, 10*time.Second, 1)
	b.now = func() time.Time { return now }

	b.RecordFailure()
	if b.State() != CircuitStateOpen {
		t.Fatalf("expected open state, got=%s", b.State())
	}

	now = now.Add(11 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("half-open probe must be allowed: %v", err)
	}
	b.RecordSuccess()

	if b.State() != CircuitStateClosed {
		t.Fatalf("expected closed after probe success, got=%s", b.State())
	}
}

func TestSingleFlight_SharesResult(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	calls := 0

	value, err, _ := g.Do("k", func() (any, error) {
		calls++
		return 42, nil
	})
	if err != nil {
		t.Fatalf("Do error: %v", err)
	}
	if value != 42 || calls != 1 {
		t.Fatalf("unexpected result value=%v calls=%d", value, calls)
	}
}
