package types

// Operator represents comparison operators in a predicate tree. The set is
// closed: a renderer maps each constant to exactly one rendering rule and
// rejects anything else.
type Operator string

const (
	OpEq  Operator = "="
	OpNe  Operator = "!="
	OpGt  Operator = ">"
	OpGte Operator = ">="
	OpLt  Operator = "<"
	OpLte Operator = "<="

	OpIn    Operator = "IN"
	OpNotIn Operator = "NOT IN"

	OpLike    Operator = "LIKE"
	OpNotLike Operator = "NOT LIKE"

	OpRegexp    Operator = "REGEXP"
	OpNotRegexp Operator = "NOT REGEXP"

	// OpNot renders IS NOT for boolean and null operands and != otherwise.
	OpNot Operator = "NOT"

	OpIsNull    Operator = "IS NULL"
	OpIsNotNull Operator = "IS NOT NULL"
)

// LogicOperator represents how grouped conditions are combined.
type LogicOperator string

const (
	AND LogicOperator = "AND"
	OR  LogicOperator = "OR"
)
