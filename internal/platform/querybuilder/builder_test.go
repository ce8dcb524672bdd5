package querybuilder

import "testing"

func TestSelect_WhereOrderLimit(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id", "name").From("venues").
		Where(Eq("id", int64(3933))).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "SELECT id, name FROM venues WHERE id = $1 ORDER BY id LIMIT 1"
	if query != want {
		t.Fatalf("unexpected sql:\n got=%s\nwant=%s", query, want)
	}
	if len(args) != 1 || args[0] != int64(3933) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelect_InAndIsNull(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id").From("athletes").
		Where(
			In("team_id", []any{int64(12), int64(21)}),
			IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "SELECT id FROM athletes WHERE team_id IN ($1, $2) AND deleted_at IS NULL"
	if query != want {
		t.Fatalf("unexpected sql: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelect_EmptyInNeverMatches(t *testing.T) {
	t.Parallel()

	query, _, err := Select("id").From("teams").
		Where(In("id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}
	if query != "SELECT id FROM teams WHERE 1=0" {
		t.Fatalf("unexpected sql: %s", query)
	}
}

func TestInsertModel_UsesDBTagsAndSuffix(t *testing.T) {
	t.Parallel()

	type row struct {
		ID   int64  `db:"id"`
		Name string `db:"name"`
		Skip string `db:"-"`
	}

	query, args, err := InsertModel("venues", row{ID: 3933, Name: "Arrowhead Stadium"}, "ON CONFLICT (id) DO NOTHING")
	if err != nil {
		t.Fatalf("InsertModel error: %v", err)
	}

	want := "INSERT INTO venues (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING"
	if query != want {
		t.Fatalf("unexpected sql:\n got=%s\nwant=%s", query, want)
	}
	if len(args) != 2 || args[0] != int64(3933) || args[1] != "Arrowhead Stadium" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsert_RowArityMismatchFails(t *testing.T) {
	t.Parallel()

	_, _, err := InsertInto("stats").
		Columns("name", "value").
		Values("rushingYards").
		ToSQL()
	if err == nil {
		t.Fatal("expected arity error")
	}
}
