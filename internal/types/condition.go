package types

// ConditionItem represents either a single condition or a group of
// conditions in a predicate tree.
type ConditionItem interface {
	isConditionItem()
}

// Condition is a single comparison. Column is the left-hand expression
// (usually a Column, but any Expr is accepted, e.g. a Func for predicates
// like LOWER(name) LIKE '%t%'). Value is the right-hand side: a Value for
// literals, or a Column/Func/Raw for expression comparisons.
type Condition struct {
	Column   Expr
	Operator Operator
	Value    Expr
}

// ConditionGroup combines conditions with AND/OR logic. Groups with more
// than one member render parenthesized.
type ConditionGroup struct {
	Logic      LogicOperator
	Conditions []ConditionItem
}

// RawCondition is a trusted boolean fragment rendered verbatim. The empty
// fragment renders as the tautology 1=1, preserving the legacy
// empty-predicate form.
type RawCondition struct {
	SQL string
}

func (Condition) isConditionItem()      {}
func (ConditionGroup) isConditionItem() {}
func (RawCondition) isConditionItem()   {}
