package usecase

import "testing"

func TestTeamLookups(t *testing.T) {
	t.Parallel()

	if name, ok := TeamName(28); !ok || name != "Washington Commanders" {
		t.Fatalf("TeamName(28) = %q, %v", name, ok)
	}
	if abbr, ok := TeamAbbreviation(30); !ok || abbr != "JAX" {
		t.Fatalf("TeamAbbreviation(30) = %q, %v", abbr, ok)
	}
	if _, ok := TeamName(31); ok {
		t.Fatal("TeamName(31) should be unknown, the feed skips that id")
	}
	if _, ok := TeamAbbreviation(0); ok {
		t.Fatal("TeamAbbreviation(0) should be unknown")
	}
}

func TestTeamIDs(t *testing.T) {
	t.Parallel()

	ids := TeamIDs()
	if len(ids) != 32 {
		t.Fatalf("TeamIDs returned %d ids, want 32", len(ids))
	}
	for _, id := range ids {
		if id == 31 || id == 32 {
			t.Fatalf("TeamIDs includes skipped id %d", id)
		}
	}
}

func TestTeamNameSlug(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"Green Bay Packers", "Green-Bay-Packers"},
		{"San Francisco 49ers", "San-Francisco-49ers"},
		{"  Chicago   Bears ", "Chicago-Bears"},
	}
	for _, tc := range cases {
		if got := teamNameSlug(tc.in); got != tc.want {
			t.Fatalf("teamNameSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
