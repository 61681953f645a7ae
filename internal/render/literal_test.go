package render

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

// testConfig mirrors the primary dialect defaults.
func testConfig() *Config {
	return &Config{
		Name:             "test",
		QuoteChar:        '"',
		QuoteIdentifiers: true,
		BindPrefix:       "sequelize_",
		BoolTrue:         "true",
		BoolFalse:        "false",
		Hints:            HintUseForceIgnore,
	}
}

func TestEscapeLiteral(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, "NULL"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"string", "foo", "'foo'"},
		{"string with quote", "it's", "'it''s'"},
		{"int", 42, "42"},
		{"negative int64", int64(-7), "-7"},
		{"uint", uint(42), "42"},
		{"float drops trailing zeros", 1.5, "1.5"},
		{"float integral", float64(3), "3"},
		{"float32", float32(0.25), "0.25"},
		{"bytes as hex blob", []byte{0xde, 0xad}, "X'dead'"},
		{
			"timestamp millisecond utc",
			time.Date(2025, 3, 9, 14, 30, 0, 123e6, time.UTC),
			"'2025-03-09 14:30:00.123'",
		},
		{
			"timestamp converts to utc",
			time.Date(2025, 3, 9, 14, 30, 0, 0, time.FixedZone("x", 3600)),
			"'2025-03-09 13:30:00.000'",
		},
		{
			"uuid as quoted string",
			uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
			"'6ba7b810-9dad-11d1-80b4-00c04fd430c8'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EscapeLiteral(cfg, tt.value)
			if err != nil {
				t.Fatalf("EscapeLiteral(%v) error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("EscapeLiteral(%v) = %s, want %s", tt.value, got, tt.want)
			}
		})
	}
}

func TestEscapeLiteralRejectsUnknownKinds(t *testing.T) {
	cfg := testConfig()

	for _, v := range []any{struct{}{}, map[string]int{}, []int{1, 2}, make(chan int)} {
		if _, err := EscapeLiteral(cfg, v); err == nil {
			t.Errorf("EscapeLiteral(%T) = nil error, want UnsupportedLiteralError", v)
		}
	}
}

// Rendered string literals must stay one inert token no matter what the
// payload contains: after stripping the outer quotes, every remaining
// quote must be part of a doubled pair.
func TestEscapeStringKeepsPayloadInert(t *testing.T) {
	payloads := []string{
		"foo';DROP TABLE myTable;",
		"'); DELETE FROM users; --",
		"a'b''c",
		"''",
		"\\' OR 1=1 --",
	}

	for _, p := range payloads {
		got := EscapeString(p)
		if !strings.HasPrefix(got, "'") || !strings.HasSuffix(got, "'") {
			t.Fatalf("EscapeString(%q) = %s, not a quoted token", p, got)
		}
		inner := got[1 : len(got)-1]
		if strings.Contains(strings.ReplaceAll(inner, "''", ""), "'") {
			t.Errorf("EscapeString(%q) = %s, contains an unescaped quote", p, got)
		}
		// un-doubling reproduces the payload exactly
		if strings.ReplaceAll(inner, "''", "'") != p {
			t.Errorf("EscapeString(%q) does not round-trip: %s", p, got)
		}
	}
}

func TestEscapeList(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"int slice", []int{1, 2, 3}, "(1, 2, 3)"},
		{"string slice", []string{"a", "b"}, "('a', 'b')"},
		{"mixed any slice", []any{1, "x", nil}, "(1, 'x', NULL)"},
		{"empty list never matches", []string{}, "(NULL)"},
		{"scalar treated as one-element list", 5, "(5)"},
		{"bytes are a blob not a list", []byte{0x01}, "(X'01')"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EscapeList(cfg, tt.value)
			if err != nil {
				t.Fatalf("EscapeList(%v) error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("EscapeList(%v) = %s, want %s", tt.value, got, tt.want)
			}
		})
	}
}
