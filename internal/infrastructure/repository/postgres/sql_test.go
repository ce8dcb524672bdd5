package postgres

import (
	"database/sql"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatal("expected true for sql.ErrNoRows")
	}
	if !isNotFound(fmt.Errorf("select team: %w", sql.ErrNoRows)) {
		t.Fatal("expected true for wrapped sql.ErrNoRows")
	}
	if isNotFound(fmt.Errorf("connection refused")) {
		t.Fatal("expected false for unrelated error")
	}
}

func TestNullInt64Helpers(t *testing.T) {
	if got := nullInt64ToPtr(sql.NullInt64{}); got != nil {
		t.Fatalf("expected nil for null value, got %v", *got)
	}
	if got := nullInt64ToPtr(sql.NullInt64{Int64: 7, Valid: true}); got == nil || *got != 7 {
		t.Fatalf("expected 7, got %v", got)
	}

	if got := ptrToNullInt64(nil); got.Valid {
		t.Fatalf("expected invalid for nil pointer, got %+v", got)
	}
	v := int64(12)
	if got := ptrToNullInt64(&v); !got.Valid || got.Int64 != 12 {
		t.Fatalf("expected 12, got %+v", got)
	}
}
