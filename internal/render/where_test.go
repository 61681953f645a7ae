package render

import (
	"errors"
	"testing"

	"github.com/zorple/sqlgen/internal/types"
)

func cond(col string, op types.Operator, v any) types.Condition {
	return types.Condition{
		Column:   types.Column{Name: col},
		Operator: op,
		Value:    types.Value{V: v},
	}
}

func TestRenderWhere(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name  string
		scope Scope
		items []types.ConditionItem
		want  string
	}{
		{
			"single comparison with scope qualification",
			Scope{Table: "users"},
			[]types.ConditionItem{cond("id", types.OpEq, 2)},
			`"users"."id" = 2`,
		},
		{
			"bare scope leaves columns unqualified",
			Scope{},
			[]types.ConditionItem{cond("id", types.OpEq, 2)},
			`"id" = 2`,
		},
		{
			"explicit table wins over scope",
			Scope{Table: "users"},
			[]types.ConditionItem{types.Condition{
				Column:   types.Column{Table: "other", Name: "id"},
				Operator: types.OpEq,
				Value:    types.Value{V: 1},
			}},
			`"other"."id" = 1`,
		},
		{
			"list joins with AND and no outer parens",
			Scope{},
			[]types.ConditionItem{
				cond("a", types.OpGt, 1),
				cond("b", types.OpLt, 2),
			},
			`"a" > 1 AND "b" < 2`,
		},
		{
			"nil entries are skipped",
			Scope{},
			[]types.ConditionItem{nil, cond("a", types.OpEq, 1), nil},
			`"a" = 1`,
		},
		{
			"or group parenthesizes",
			Scope{},
			[]types.ConditionItem{types.ConditionGroup{
				Logic: types.OR,
				Conditions: []types.ConditionItem{
					cond("a", types.OpEq, 1),
					cond("b", types.OpEq, 2),
				},
			}},
			`("a" = 1 OR "b" = 2)`,
		},
		{
			"nested groups",
			Scope{},
			[]types.ConditionItem{types.ConditionGroup{
				Logic: types.AND,
				Conditions: []types.ConditionItem{
					cond("a", types.OpEq, 1),
					types.ConditionGroup{
						Logic: types.OR,
						Conditions: []types.ConditionItem{
							cond("b", types.OpEq, 2),
							cond("c", types.OpEq, 3),
						},
					},
				},
			}},
			`("a" = 1 AND ("b" = 2 OR "c" = 3))`,
		},
		{
			"single-member group unwraps",
			Scope{},
			[]types.ConditionItem{types.ConditionGroup{
				Logic:      types.OR,
				Conditions: []types.ConditionItem{cond("a", types.OpEq, 1)},
			}},
			`"a" = 1`,
		},
		{
			"raw condition renders verbatim",
			Scope{},
			[]types.ConditionItem{types.RawCondition{SQL: "length(name) > 3"}},
			`length(name) > 3`,
		},
		{
			"empty raw condition renders the tautology",
			Scope{},
			[]types.ConditionItem{types.RawCondition{}},
			`1=1`,
		},
		{
			"column compared to column",
			Scope{},
			[]types.ConditionItem{types.Condition{
				Column:   types.Column{Name: "updatedAt"},
				Operator: types.OpGt,
				Value:    types.Column{Name: "createdAt"},
			}},
			`"updatedAt" > "createdAt"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderWhere(cfg, tt.scope, tt.items, nil)
			if err != nil {
				t.Fatalf("RenderWhere() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RenderWhere() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRenderWhereEmpty(t *testing.T) {
	cfg := testConfig()

	got, err := RenderWhere(cfg, Scope{}, nil, nil)
	if err != nil {
		t.Fatalf("RenderWhere() error: %v", err)
	}
	if got != "" {
		t.Errorf("RenderWhere(nil) = %q, want empty", got)
	}
}

func TestRenderWhereWithBinder(t *testing.T) {
	cfg := testConfig()
	b := NewBinder(cfg.BindPrefix)
	b.Add("seed") // simulate a continuing sequence

	got, err := RenderWhere(cfg, Scope{}, []types.ConditionItem{
		cond("id", types.OpEq, 5),
		cond("status", types.OpIn, []string{"a", "b"}),
	}, b)
	if err != nil {
		t.Fatalf("RenderWhere() error: %v", err)
	}
	// plain literals bind, IN lists always inline
	if want := `"id" = $sequelize_2 AND "status" IN ('a', 'b')`; got != want {
		t.Errorf("RenderWhere() = %s, want %s", got, want)
	}
	if b.Values()["sequelize_2"] != 5 {
		t.Errorf("bind value = %v, want 5", b.Values()["sequelize_2"])
	}
}

func TestRenderWhereErrors(t *testing.T) {
	cfg := testConfig()

	t.Run("unknown operator", func(t *testing.T) {
		_, err := RenderWhere(cfg, Scope{}, []types.ConditionItem{
			cond("id", types.Operator("<=>"), 1),
		}, nil)
		var opErr UnknownOperatorError
		if !errors.As(err, &opErr) {
			t.Fatalf("error = %v, want UnknownOperatorError", err)
		}
	})

	t.Run("empty group", func(t *testing.T) {
		_, err := RenderWhere(cfg, Scope{}, []types.ConditionItem{
			types.ConditionGroup{Logic: types.AND},
		}, nil)
		var predErr MalformedPredicateError
		if !errors.As(err, &predErr) {
			t.Fatalf("error = %v, want MalformedPredicateError", err)
		}
	})

	t.Run("empty column name", func(t *testing.T) {
		_, err := RenderWhere(cfg, Scope{}, []types.ConditionItem{
			cond("", types.OpEq, 1),
		}, nil)
		var colErr InvalidColumnError
		if !errors.As(err, &colErr) {
			t.Fatalf("error = %v, want InvalidColumnError", err)
		}
	})

	t.Run("missing comparison value", func(t *testing.T) {
		_, err := RenderWhere(cfg, Scope{}, []types.ConditionItem{
			types.Condition{Column: types.Column{Name: "id"}, Operator: types.OpEq},
		}, nil)
		var predErr MalformedPredicateError
		if !errors.As(err, &predErr) {
			t.Fatalf("error = %v, want MalformedPredicateError", err)
		}
	})

	t.Run("non-literal IN operand", func(t *testing.T) {
		_, err := RenderWhere(cfg, Scope{}, []types.ConditionItem{
			types.Condition{
				Column:   types.Column{Name: "id"},
				Operator: types.OpIn,
				Value:    types.Column{Name: "other"},
			},
		}, nil)
		var predErr MalformedPredicateError
		if !errors.As(err, &predErr) {
			t.Fatalf("error = %v, want MalformedPredicateError", err)
		}
	})
}

func TestBinderNumbering(t *testing.T) {
	b := NewBinder("sequelize_")

	if got := b.Add("a"); got != "$sequelize_1" {
		t.Errorf("Add() = %s, want $sequelize_1", got)
	}
	if got := b.Add("b"); got != "$sequelize_2" {
		t.Errorf("Add() = %s, want $sequelize_2", got)
	}
	vals := b.Values()
	if vals["sequelize_1"] != "a" || vals["sequelize_2"] != "b" {
		t.Errorf("Values() = %v", vals)
	}
}
