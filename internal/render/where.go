package render

import (
	"fmt"
	"strings"

	"github.com/zorple/sqlgen/internal/types"
)

// RenderWhere renders a predicate list as a boolean expression, AND-joined
// without outer parentheses. An empty (or all-nil) list yields "" and the
// caller omits the clause entirely. When b is non-nil, plain literal values
// become bind parameters continuing b's numbering; expression values and IN
// lists always inline.
func RenderWhere(cfg *Config, sc Scope, items []types.ConditionItem, b *Binder) (string, error) {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		s, err := renderItem(cfg, sc, item, b)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " AND "), nil
}

func renderItem(cfg *Config, sc Scope, item types.ConditionItem, b *Binder) (string, error) {
	switch c := item.(type) {
	case types.Condition:
		return renderCondition(cfg, sc, c, b)
	case types.ConditionGroup:
		if len(c.Conditions) == 0 {
			return "", MalformedPredicateError{Reason: "empty condition group"}
		}
		parts := make([]string, 0, len(c.Conditions))
		for _, sub := range c.Conditions {
			s, err := renderItem(cfg, sc, sub, b)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		if len(parts) == 1 {
			return parts[0], nil
		}
		return "(" + strings.Join(parts, " "+string(c.Logic)+" ") + ")", nil
	case types.RawCondition:
		// the legacy empty-predicate form renders a tautology
		if c.SQL == "" {
			return "1=1", nil
		}
		return c.SQL, nil
	}
	return "", MalformedPredicateError{Reason: fmt.Sprintf("unknown predicate node %T", item)}
}

// renderCondition maps each operator to its one fixed template.
func renderCondition(cfg *Config, sc Scope, c types.Condition, b *Binder) (string, error) {
	left, err := RenderExpr(cfg, sc, c.Column)
	if err != nil {
		return "", err
	}

	var lit any
	isLiteral := false
	if v, ok := c.Value.(types.Value); ok {
		lit = v.V
		isLiteral = true
	}
	isNull := isLiteral && lit == nil

	switch c.Operator {
	case types.OpEq:
		if isNull {
			return left + " IS NULL", nil
		}
	case types.OpNe:
		if isNull {
			return left + " IS NOT NULL", nil
		}
	case types.OpNot:
		if isNull {
			return left + " IS NOT NULL", nil
		}
		if _, ok := lit.(bool); ok {
			rhs, err := EscapeLiteral(cfg, lit)
			if err != nil {
				return "", err
			}
			return left + " IS NOT " + rhs, nil
		}
		rhs, err := renderValue(cfg, c.Value, b)
		if err != nil {
			return "", err
		}
		return left + " != " + rhs, nil
	case types.OpIsNull:
		return left + " IS NULL", nil
	case types.OpIsNotNull:
		return left + " IS NOT NULL", nil
	case types.OpIn, types.OpNotIn:
		list, err := renderList(cfg, c.Value)
		if err != nil {
			return "", err
		}
		return left + " " + string(c.Operator) + " " + list, nil
	case types.OpRegexp, types.OpNotRegexp:
		// fixed template with an inline quoted pattern
		rhs, err := renderValue(cfg, c.Value, nil)
		if err != nil {
			return "", err
		}
		return left + " " + string(c.Operator) + " " + rhs, nil
	case types.OpGt, types.OpGte, types.OpLt, types.OpLte, types.OpLike, types.OpNotLike:
	default:
		return "", UnknownOperatorError{Operator: string(c.Operator)}
	}

	rhs, err := renderValue(cfg, c.Value, b)
	if err != nil {
		return "", err
	}
	return left + " " + string(c.Operator) + " " + rhs, nil
}

// renderValue renders the right-hand side of a comparison: literals through
// the escaper (or the binder when bound generation is active), expressions
// through the expression renderer with a bare scope.
func renderValue(cfg *Config, e types.Expr, b *Binder) (string, error) {
	if e == nil {
		return "", MalformedPredicateError{Reason: "missing comparison value"}
	}
	if v, ok := e.(types.Value); ok {
		if b != nil {
			return b.Add(v.V), nil
		}
		return EscapeLiteral(cfg, v.V)
	}
	return RenderExpr(cfg, Scope{}, e)
}

// renderList renders the right-hand side of IN and NOT IN: a literal list,
// or a trusted raw fragment (e.g. a sub-select) parenthesized verbatim.
func renderList(cfg *Config, e types.Expr) (string, error) {
	switch v := e.(type) {
	case types.Value:
		return EscapeList(cfg, v.V)
	case types.Raw:
		return "(" + v.SQL + ")", nil
	case nil:
		return "", MalformedPredicateError{Reason: "missing IN list"}
	}
	return "", MalformedPredicateError{Reason: "IN requires a literal list or raw fragment"}
}
