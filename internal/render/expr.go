package render

import (
	"fmt"
	"strings"

	"github.com/zorple/sqlgen/internal/types"
)

// Scope carries the implicit table-qualification context for bare column
// references. Select WHERE clauses qualify bare columns with the main
// table (or alias); sub-query and HAVING contexts use an empty scope so
// columns render bare.
type Scope struct {
	Table string
}

// RenderExpr renders one expression-model node. Function names, cast types
// and raw fragments are trusted SQL; identifiers and literals go through
// quoting and escaping. Nested function calls render to arbitrary depth.
func RenderExpr(cfg *Config, sc Scope, e types.Expr) (string, error) {
	switch n := e.(type) {
	case types.Column:
		if n.Name == "" {
			return "", InvalidColumnError{Name: n.Name}
		}
		table := n.Table
		if table == "" {
			table = sc.Table
		}
		return QualifyColumn(cfg, table, n.Name), nil
	case types.Func:
		args := make([]string, 0, len(n.Args))
		for _, a := range n.Args {
			// arguments render bare; qualification never crosses a call
			s, err := RenderExpr(cfg, Scope{}, a)
			if err != nil {
				return "", err
			}
			args = append(args, s)
		}
		return n.Name + "(" + strings.Join(args, ", ") + ")", nil
	case types.Cast:
		inner, err := RenderExpr(cfg, Scope{}, n.X)
		if err != nil {
			return "", err
		}
		return "CAST(" + inner + " AS " + n.Type + ")", nil
	case types.Raw:
		return n.SQL, nil
	case types.Value:
		return EscapeLiteral(cfg, n.V)
	case nil:
		return "", MalformedPredicateError{Reason: "nil expression"}
	}
	return "", MalformedPredicateError{Reason: fmt.Sprintf("unknown expression node %T", e)}
}
