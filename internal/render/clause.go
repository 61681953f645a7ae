package render

import (
	"strconv"
	"strings"

	"github.com/zorple/sqlgen/internal/types"
)

// RenderAttributes renders the projection list, or * when no projection is
// given.
func RenderAttributes(cfg *Config, sc Scope, attrs []types.Expr) (string, error) {
	if len(attrs) == 0 {
		return "*", nil
	}
	parts := make([]string, 0, len(attrs))
	for _, a := range attrs {
		s, err := RenderExpr(cfg, sc, a)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", "), nil
}

// RenderTableRef renders the FROM target with an optional quoted alias.
func RenderTableRef(cfg *Config, table, alias string) string {
	s := QuoteIdent(cfg, table)
	if alias != "" {
		s += " AS " + QuoteIdent(cfg, alias)
	}
	return s
}

// RenderOrder renders the ORDER BY list. A recognized direction token is
// passed through uppercased. An unrecognized token is rendered as a second
// quoted column, a legacy contract preserved bit-for-bit rather than
// rejected.
func RenderOrder(cfg *Config, terms []types.OrderTerm) (string, error) {
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		s, err := RenderExpr(cfg, Scope{}, t.Expr)
		if err != nil {
			return "", err
		}
		if t.Direction == "" {
			parts = append(parts, s)
			continue
		}
		dir := strings.ToUpper(t.Direction)
		if dir == "ASC" || dir == "DESC" {
			parts = append(parts, s+" "+dir)
			continue
		}
		parts = append(parts, s, QuoteRef(cfg, t.Direction))
	}
	return strings.Join(parts, ", "), nil
}

// RenderGroupBy renders the GROUP BY expression list.
func RenderGroupBy(cfg *Config, exprs []types.Expr) (string, error) {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		s, err := RenderExpr(cfg, Scope{}, e)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", "), nil
}

// RenderLimit renders the pagination clause with its leading space. An
// offset without a limit needs the explicit LIMIT NULL placeholder; a zero
// offset alone renders nothing; limit 0 is honored.
func RenderLimit(limit, offset *int) string {
	switch {
	case limit == nil && offset == nil:
		return ""
	case limit == nil:
		if *offset == 0 {
			return ""
		}
		return " LIMIT NULL OFFSET " + strconv.Itoa(*offset)
	default:
		s := " LIMIT " + strconv.Itoa(*limit)
		if offset != nil && *offset != 0 {
			s += " OFFSET " + strconv.Itoa(*offset)
		}
		return s
	}
}

// RenderIndexHints renders index hints with their leading space.
// Unrecognized hint kinds are silently dropped, never an error.
func RenderIndexHints(cfg *Config, hints []types.IndexHint) string {
	if len(hints) == 0 || cfg.Hints == HintNone {
		return ""
	}
	var b strings.Builder
	for _, h := range hints {
		switch cfg.Hints {
		case HintUseForceIgnore:
			switch h.Kind {
			case types.UseIndex, types.ForceIndex, types.IgnoreIndex:
			default:
				continue
			}
			names := make([]string, 0, len(h.Indexes))
			for _, idx := range h.Indexes {
				names = append(names, QuoteIdent(cfg, idx))
			}
			b.WriteString(" " + string(h.Kind) + " INDEX (" + strings.Join(names, ",") + ")")
		case HintIndexedBy:
			switch h.Kind {
			case types.UseIndex, types.ForceIndex:
				if len(h.Indexes) > 0 {
					b.WriteString(" INDEXED BY " + QuoteIdent(cfg, h.Indexes[0]))
				}
			case types.IgnoreIndex:
				b.WriteString(" NOT INDEXED")
			}
		}
	}
	return b.String()
}
