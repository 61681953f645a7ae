package types

// Expr is a node of the expression model: column references, raw function
// calls, casts, trusted SQL fragments, and literal values. Nodes are built
// once by the caller, never mutated by a generator.
type Expr interface {
	isExpr()
}

// Column references a column, optionally qualified by a table or alias.
type Column struct {
	Table string
	Name  string
}

// Func is a raw SQL function call. The function name is trusted SQL and is
// rendered verbatim; every argument goes through full quoting and escaping.
type Func struct {
	Name string
	Args []Expr
}

// Cast renders CAST(expr AS type). The type string is trusted SQL.
type Cast struct {
	X    Expr
	Type string
}

// Raw is a trusted SQL fragment rendered verbatim. Raw nodes must only be
// constructed from application code, never from user-supplied strings.
type Raw struct {
	SQL string
}

// Value wraps a scalar literal. Rendering always goes through the dialect
// literal escaper or the bind collector, never plain concatenation.
type Value struct {
	V any
}

func (Column) isExpr() {}
func (Func) isExpr()   {}
func (Cast) isExpr()   {}
func (Raw) isExpr()    {}
func (Value) isExpr()  {}
