package render

import (
	"strings"
	"testing"
)

func TestQuoteIdent(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		in   string
		want string
	}{
		{"myTable", `"myTable"`},
		{`weird"name`, `"weird""name"`},
		{`""`, `""""""`},
		{"", `""`},
	}

	for _, tt := range tests {
		if got := QuoteIdent(cfg, tt.in); got != tt.want {
			t.Errorf("QuoteIdent(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

// Stripping the delimiter and un-doubling reproduces the input exactly.
func TestQuoteIdentRoundTrip(t *testing.T) {
	cfg := testConfig()

	names := []string{
		"users",
		`a"b`,
		`"`,
		`end"`,
		`"start`,
		"with space",
		"unicode_åß∂",
	}

	for _, n := range names {
		q := QuoteIdent(cfg, n)
		if !strings.HasPrefix(q, `"`) || !strings.HasSuffix(q, `"`) {
			t.Fatalf("QuoteIdent(%q) = %s, not wrapped", n, q)
		}
		inner := q[1 : len(q)-1]
		if got := strings.ReplaceAll(inner, `""`, `"`); got != n {
			t.Errorf("round trip of %q = %q via %s", n, got, q)
		}
	}
}

func TestQuoteIdentDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.QuoteIdentifiers = false

	if got := QuoteIdent(cfg, "myTable"); got != "myTable" {
		t.Errorf("QuoteIdent() = %s, want myTable", got)
	}
	if got := QualifyColumn(cfg, "t", "c"); got != "t.c" {
		t.Errorf("QualifyColumn() = %s, want t.c", got)
	}
}

func TestQualifyColumn(t *testing.T) {
	cfg := testConfig()

	if got := QualifyColumn(cfg, "users", "id"); got != `"users"."id"` {
		t.Errorf("QualifyColumn() = %s", got)
	}
	if got := QualifyColumn(cfg, "", "id"); got != `"id"` {
		t.Errorf("QualifyColumn() with empty table = %s", got)
	}
}

func TestQuoteRef(t *testing.T) {
	cfg := testConfig()

	if got := QuoteRef(cfg, "users.id"); got != `"users"."id"` {
		t.Errorf("QuoteRef() = %s", got)
	}
	if got := QuoteRef(cfg, "id"); got != `"id"` {
		t.Errorf("QuoteRef() = %s", got)
	}
}
