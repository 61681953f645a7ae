package sqlgen

import (
	"strings"

	"github.com/zorple/sqlgen/internal/types"
)

// Col references a column. A "table.column" reference splits on the first
// dot into a qualified reference; a bare name is qualified (or not) by the
// rendering context.
func Col(ref string) types.Column {
	if i := strings.IndexByte(ref, '.'); i >= 0 {
		return types.Column{Table: ref[:i], Name: ref[i+1:]}
	}
	return types.Column{Name: ref}
}

// Fn builds a raw SQL function call. The name is trusted SQL rendered
// verbatim; arguments go through full quoting and escaping, and may nest to
// arbitrary depth: Fn("f1", Fn("f2", Col("id"))).
func Fn(name string, args ...types.Expr) types.Func {
	return types.Func{Name: name, Args: args}
}

// V wraps a scalar value as a literal expression node. Rendering always
// goes through the dialect literal escaper.
func V(v any) types.Value {
	return types.Value{V: v}
}

// Literal wraps a trusted SQL fragment rendered verbatim. Never pass
// user-controlled input: use V and bind parameters for user values.
func Literal(sql string) types.Raw {
	return types.Raw{SQL: sql}
}

// CastAs renders CAST(expr AS type). The type string is trusted SQL.
func CastAs(x types.Expr, typ string) types.Cast {
	return types.Cast{X: x, Type: typ}
}
