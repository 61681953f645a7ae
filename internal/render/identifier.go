package render

import "strings"

// QuoteIdent wraps name in the dialect identifier delimiter, doubling any
// embedded delimiter so it can never terminate the identifier early. With
// quoting disabled the name passes through verbatim.
func QuoteIdent(cfg *Config, name string) string {
	if !cfg.QuoteIdentifiers {
		return name
	}
	q := string(cfg.QuoteChar)
	return q + strings.ReplaceAll(name, q, q+q) + q
}

// QualifyColumn renders a column reference with each part quoted and joined
// by a dot. An empty table yields the bare column.
func QualifyColumn(cfg *Config, table, name string) string {
	if table == "" {
		return QuoteIdent(cfg, name)
	}
	return QuoteIdent(cfg, table) + "." + QuoteIdent(cfg, name)
}

// QuoteRef quotes a possibly dot-qualified reference string, splitting
// table.column on the first dot.
func QuoteRef(cfg *Config, ref string) string {
	if i := strings.IndexByte(ref, '.'); i >= 0 {
		return QualifyColumn(cfg, ref[:i], ref[i+1:])
	}
	return QuoteIdent(cfg, ref)
}
