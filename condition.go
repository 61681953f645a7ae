package sqlgen

import (
	"reflect"

	"github.com/zorple/sqlgen/internal/types"
)

// valueExpr wraps a plain Go value as a literal node; expression nodes pass
// through untouched.
func valueExpr(v any) types.Expr {
	if e, ok := v.(types.Expr); ok {
		return e
	}
	return types.Value{V: v}
}

// C creates a condition from an arbitrary left-hand expression, an operator
// and a value. The value may be a plain Go scalar (escaped or bound on
// rendering) or another expression node, which covers raw-fragment
// predicates such as C(Fn("LOWER", Col("name")), LIKE, "%t%").
func C(col types.Expr, op Operator, value any) Condition {
	return types.Condition{Column: col, Operator: op, Value: valueExpr(value)}
}

// Eq creates col = value; a nil value renders col IS NULL.
func Eq(col string, value any) Condition { return C(Col(col), EQ, value) }

// Ne creates col != value; a nil value renders col IS NOT NULL.
func Ne(col string, value any) Condition { return C(Col(col), NE, value) }

// Gt creates col > value.
func Gt(col string, value any) Condition { return C(Col(col), GT, value) }

// Gte creates col >= value.
func Gte(col string, value any) Condition { return C(Col(col), GTE, value) }

// Lt creates col < value.
func Lt(col string, value any) Condition { return C(Col(col), LT, value) }

// Lte creates col <= value.
func Lte(col string, value any) Condition { return C(Col(col), LTE, value) }

// Like creates col LIKE pattern.
func Like(col string, pattern any) Condition { return C(Col(col), LIKE, pattern) }

// Unlike creates col NOT LIKE pattern.
func Unlike(col string, pattern any) Condition { return C(Col(col), NotLike, pattern) }

// Regexp creates col REGEXP 'pattern'.
func Regexp(col string, pattern string) Condition { return C(Col(col), REGEXP, pattern) }

// NotRegexpMatch creates col NOT REGEXP 'pattern'.
func NotRegexpMatch(col string, pattern string) Condition { return C(Col(col), NotRegexp, pattern) }

// Not creates the negation comparison: IS NOT for boolean and nil values,
// != for everything else.
func Not(col string, value any) Condition { return C(Col(col), NOT, value) }

// In creates col IN (values...). A single slice argument is used as the
// list directly.
func In(col string, values ...any) Condition {
	return C(Col(col), IN, listValue(values))
}

// NotInList creates col NOT IN (values...).
func NotInList(col string, values ...any) Condition {
	return C(Col(col), NotIn, listValue(values))
}

func listValue(values []any) types.Expr {
	if len(values) == 1 {
		if e, ok := values[0].(types.Raw); ok {
			return e
		}
		if _, ok := values[0].([]byte); ok {
			return types.Value{V: values}
		}
		if k := reflect.ValueOf(values[0]).Kind(); k == reflect.Slice || k == reflect.Array {
			return types.Value{V: values[0]}
		}
	}
	return types.Value{V: values}
}

// Null creates col IS NULL.
func Null(col string) Condition {
	return types.Condition{Column: Col(col), Operator: IsNull}
}

// NotNull creates col IS NOT NULL.
func NotNull(col string) Condition {
	return types.Condition{Column: Col(col), Operator: IsNotNull}
}

// PK creates an equality comparison against the table's primary-key column,
// the interpretation given to a bare scalar predicate. The key column is
// "id".
func PK(value any) Condition { return Eq("id", value) }

// And groups conditions with AND logic; groups with more than one member
// render parenthesized.
func And(items ...ConditionItem) ConditionGroup {
	return types.ConditionGroup{Logic: types.AND, Conditions: items}
}

// Or groups conditions with OR logic.
func Or(items ...ConditionItem) ConditionGroup {
	return types.ConditionGroup{Logic: types.OR, Conditions: items}
}

// Fragment wraps a trusted boolean fragment rendered verbatim. The empty
// fragment renders the 1=1 tautology, preserving the legacy empty-predicate
// form. Never pass user-controlled input.
func Fragment(sql string) RawCondition {
	return types.RawCondition{SQL: sql}
}
