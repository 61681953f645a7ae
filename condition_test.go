package sqlgen_test

import (
	"testing"

	"github.com/zorple/sqlgen"
	"github.com/zorple/sqlgen/snowflake"
)

func TestConstructors(t *testing.T) {
	g := snowflake.New()

	tests := []struct {
		name string
		item sqlgen.ConditionItem
		want string
	}{
		{"eq", sqlgen.Eq("a", 1), `SELECT * FROM "t" WHERE "t"."a" = 1;`},
		{"ne", sqlgen.Ne("a", 1), `SELECT * FROM "t" WHERE "t"."a" != 1;`},
		{"gt", sqlgen.Gt("a", 1), `SELECT * FROM "t" WHERE "t"."a" > 1;`},
		{"gte", sqlgen.Gte("a", 1), `SELECT * FROM "t" WHERE "t"."a" >= 1;`},
		{"lt", sqlgen.Lt("a", 1), `SELECT * FROM "t" WHERE "t"."a" < 1;`},
		{"lte", sqlgen.Lte("a", 1), `SELECT * FROM "t" WHERE "t"."a" <= 1;`},
		{"like", sqlgen.Like("a", "x%"), `SELECT * FROM "t" WHERE "t"."a" LIKE 'x%';`},
		{"pk shorthand", sqlgen.PK(7), `SELECT * FROM "t" WHERE "t"."id" = 7;`},
		{
			"qualified column in the constructor",
			sqlgen.Eq("other.a", 1),
			`SELECT * FROM "t" WHERE "other"."a" = 1;`,
		},
		{
			"column-to-column comparison",
			sqlgen.C(sqlgen.Col("updatedAt"), sqlgen.GT, sqlgen.Col("createdAt")),
			`SELECT * FROM "t" WHERE "t"."updatedAt" > "createdAt";`,
		},
		{
			"and group",
			sqlgen.And(sqlgen.Eq("a", 1), sqlgen.Eq("b", 2)),
			`SELECT * FROM "t" WHERE ("t"."a" = 1 AND "t"."b" = 2);`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.Select("t", &sqlgen.Query{Where: []sqlgen.ConditionItem{tt.item}})
			if err != nil {
				t.Fatalf("Select() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Select() =\n  %s\nwant\n  %s", got, tt.want)
			}
		})
	}
}

// Hostile values must come out as a single literal token in every statement
// shape that inlines them.
func TestInjectionPayloadsStayInert(t *testing.T) {
	g := snowflake.New()

	payloads := []struct {
		name    string
		payload string
	}{
		{"quote breakout", "foo';DROP TABLE myTable;"},
		{"stacked delete", "'); DELETE FROM users; --"},
		{"comment tail", "x' --"},
		{"backslash prefix", `\' OR 1=1 --`},
		{"doubled quotes", "a''b"},
	}

	for _, tt := range payloads {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.Select("users", &sqlgen.Query{
				Where: []sqlgen.ConditionItem{sqlgen.Eq("name", tt.payload)},
			})
			if err != nil {
				t.Fatalf("Select() error: %v", err)
			}
			if !singleStringToken(got, "SELECT * FROM \"users\" WHERE \"users\".\"name\" = ", ";") {
				t.Errorf("payload escaped the literal: %s", got)
			}

			bulk, err := g.BulkInsert("users", []sqlgen.Row{
				{{Column: "name", Value: tt.payload}},
			}, nil)
			if err != nil {
				t.Fatalf("BulkInsert() error: %v", err)
			}
			if !singleStringToken(bulk, "INSERT INTO \"users\" (\"name\") VALUES (", ");") {
				t.Errorf("payload escaped the literal: %s", bulk)
			}
		})
	}
}

// singleStringToken strips the fixed statement frame and checks that what
// remains parses as exactly one quoted string: it starts and ends with a
// quote and every interior quote is part of a doubled pair.
func singleStringToken(stmt, prefix, suffix string) bool {
	if len(stmt) < len(prefix)+len(suffix) {
		return false
	}
	if stmt[:len(prefix)] != prefix || stmt[len(stmt)-len(suffix):] != suffix {
		return false
	}
	lit := stmt[len(prefix) : len(stmt)-len(suffix)]
	if len(lit) < 2 || lit[0] != '\'' || lit[len(lit)-1] != '\'' {
		return false
	}
	inner := lit[1 : len(lit)-1]
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\'' {
			if i+1 >= len(inner) || inner[i+1] != '\'' {
				return false
			}
			i++
		}
	}
	return true
}
