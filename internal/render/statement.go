package render

import (
	"strconv"
	"strings"

	"github.com/zorple/sqlgen/internal/types"
)

// Select composes a complete SELECT statement from the descriptor. With
// q.Subquery set, the base query is rendered as an inner
// SELECT ... FROM table AS alias carrying every inner clause (including
// HAVING), wrapped by an outer SELECT alias.* FROM (...) AS alias.
func Select(cfg *Config, table string, q *types.Query) (string, error) {
	if q == nil {
		q = &types.Query{}
	}

	attrs, err := RenderAttributes(cfg, Scope{}, q.Attributes)
	if err != nil {
		return "", err
	}
	hints := RenderIndexHints(cfg, q.IndexHints)

	alias := q.Alias
	if q.Subquery && alias == "" {
		alias = table
	}

	// bare columns in WHERE qualify with the main table (or its alias);
	// sub-query and HAVING contexts render bare names
	whereScope := Scope{Table: table}
	if alias != "" {
		whereScope = Scope{Table: alias}
	}
	if q.Subquery {
		whereScope = Scope{}
	}

	var b strings.Builder
	b.WriteString("SELECT " + attrs + " FROM " + RenderTableRef(cfg, table, alias) + hints)

	where, err := RenderWhere(cfg, whereScope, q.Where, nil)
	if err != nil {
		return "", err
	}
	if where != "" {
		b.WriteString(" WHERE " + where)
	}

	if len(q.GroupBy) > 0 {
		group, err := RenderGroupBy(cfg, q.GroupBy)
		if err != nil {
			return "", err
		}
		b.WriteString(" GROUP BY " + group)
	}

	having, err := RenderWhere(cfg, Scope{}, q.Having, nil)
	if err != nil {
		return "", err
	}
	if having != "" {
		b.WriteString(" HAVING " + having)
	}

	if len(q.Order) > 0 {
		order, err := RenderOrder(cfg, q.Order)
		if err != nil {
			return "", err
		}
		b.WriteString(" ORDER BY " + order)
	}

	b.WriteString(RenderLimit(q.Limit, q.Offset))

	if q.Subquery {
		outer := QuoteIdent(cfg, alias)
		return "SELECT " + outer + ".* FROM (" + b.String() + ") AS " + outer + ";", nil
	}
	return b.String() + ";", nil
}

// Insert renders a single-row INSERT with named bind parameters assigned
// sequentially in column order. With OmitNull set, nil-valued columns are
// dropped from the statement entirely. Expression values (Raw, Func)
// render inline instead of binding.
func Insert(cfg *Config, table string, row []types.Assignment, opts *types.InsertOptions) (*types.Statement, error) {
	if opts == nil {
		opts = &types.InsertOptions{}
	}
	b := NewBinder(cfg.BindPrefix)
	cols := make([]string, 0, len(row))
	vals := make([]string, 0, len(row))
	for _, a := range row {
		if opts.OmitNull && a.Value == nil {
			continue
		}
		cols = append(cols, QuoteIdent(cfg, a.Column))
		v, err := insertValue(cfg, a.Value, b)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}

	sql := "INSERT INTO " + QuoteIdent(cfg, table) +
		" (" + strings.Join(cols, ",") + ") VALUES (" + strings.Join(vals, ",") + ");"
	return &types.Statement{SQL: sql, Bind: b.Values()}, nil
}

func insertValue(cfg *Config, v any, b *Binder) (string, error) {
	if e, ok := v.(types.Expr); ok {
		return RenderExpr(cfg, Scope{}, e)
	}
	if b != nil {
		return b.Add(v), nil
	}
	return EscapeLiteral(cfg, v)
}

// BulkInsert renders a multi-row INSERT with inline literals: bulk
// statements cannot carry bind parameters uniformly across drivers. The
// column list is the union of columns across all rows in first-seen order;
// a column missing from a row renders NULL. OmitNull is deliberately
// ignored here (uniform column set), matching the single-row contract's
// documented asymmetry.
func BulkInsert(cfg *Config, table string, rows []types.Row, opts *types.BulkInsertOptions) (string, error) {
	if opts == nil {
		opts = &types.BulkInsertOptions{}
	}

	verb := "INSERT"
	if opts.IgnoreDuplicates {
		if cfg.InsertIgnore == "" {
			return "", NewUnsupportedFeatureError(cfg.Name, "ignoreDuplicates")
		}
		verb = cfg.InsertIgnore
	}

	var cols []string
	seen := make(map[string]bool)
	for _, r := range rows {
		for _, a := range r {
			if !seen[a.Column] {
				seen[a.Column] = true
				cols = append(cols, a.Column)
			}
		}
	}

	quoted := make([]string, 0, len(cols))
	for _, c := range cols {
		quoted = append(quoted, QuoteIdent(cfg, c))
	}

	tuples := make([]string, 0, len(rows))
	for _, r := range rows {
		byCol := make(map[string]any, len(r))
		present := make(map[string]bool, len(r))
		for _, a := range r {
			byCol[a.Column] = a.Value
			present[a.Column] = true
		}
		vals := make([]string, 0, len(cols))
		for _, c := range cols {
			if !present[c] {
				vals = append(vals, "NULL")
				continue
			}
			v, err := insertValue(cfg, byCol[c], nil)
			if err != nil {
				return "", err
			}
			vals = append(vals, v)
		}
		tuples = append(tuples, "("+strings.Join(vals, ",")+")")
	}

	return verb + " INTO " + QuoteIdent(cfg, table) +
		" (" + strings.Join(quoted, ",") + ") VALUES " + strings.Join(tuples, ",") + ";", nil
}

// Update renders SET assignments as bind parameters, with the WHERE clause
// continuing the same numbering sequence.
func Update(cfg *Config, table string, sets []types.Assignment, where []types.ConditionItem) (*types.Statement, error) {
	b := NewBinder(cfg.BindPrefix)
	parts := make([]string, 0, len(sets))
	for _, a := range sets {
		v, err := insertValue(cfg, a.Value, b)
		if err != nil {
			return nil, err
		}
		parts = append(parts, QuoteIdent(cfg, a.Column)+"="+v)
	}

	sql := "UPDATE " + QuoteIdent(cfg, table) + " SET " + strings.Join(parts, ",")
	w, err := RenderWhere(cfg, Scope{}, where, b)
	if err != nil {
		return nil, err
	}
	if w != "" {
		sql += " WHERE " + w
	}
	return &types.Statement{SQL: sql + ";", Bind: b.Values()}, nil
}

// Delete renders DELETE FROM with inline literals. Limit is honored only on
// dialects that allow it.
func Delete(cfg *Config, table string, where []types.ConditionItem, opts *types.DeleteOptions) (string, error) {
	sql := "DELETE FROM " + QuoteIdent(cfg, table)
	w, err := RenderWhere(cfg, Scope{}, where, nil)
	if err != nil {
		return "", err
	}
	if w != "" {
		sql += " WHERE " + w
	}
	if opts != nil && opts.Limit != nil && cfg.DeleteLimit {
		sql += " LIMIT " + strconv.Itoa(*opts.Limit)
	}
	return sql + ";", nil
}

// ColumnDDL renders each column definition as a DDL fragment keyed by
// column name. Fragment pieces appear in fixed order: type, NOT NULL,
// autoincrement keyword, PRIMARY KEY, DEFAULT, COMMENT, UNIQUE,
// REFERENCES, AFTER.
func ColumnDDL(cfg *Config, cols []types.ColumnDef) (map[string]string, error) {
	out := make(map[string]string, len(cols))
	for _, c := range cols {
		frag, err := columnFragment(cfg, c)
		if err != nil {
			return nil, err
		}
		out[c.Name] = frag
	}
	return out, nil
}

func columnFragment(cfg *Config, c types.ColumnDef) (string, error) {
	var b strings.Builder
	b.WriteString(c.Type)
	if c.NotNull {
		b.WriteString(" NOT NULL")
	}
	if c.AutoIncrement {
		b.WriteString(" " + cfg.AutoIncrement)
	}
	if c.PrimaryKey {
		b.WriteString(" PRIMARY KEY")
	}
	if c.Default != nil && !defaultForbidden(cfg, c.Type) {
		lit, err := EscapeLiteral(cfg, c.Default)
		if err != nil {
			return "", err
		}
		b.WriteString(" DEFAULT " + lit)
	}
	if c.Comment != "" {
		b.WriteString(" COMMENT " + EscapeString(c.Comment))
	}
	if c.Unique {
		b.WriteString(" UNIQUE")
	}
	if c.References != nil {
		b.WriteString(" " + referenceFragment(cfg, c.References))
	}
	if c.After != "" {
		b.WriteString(" AFTER " + QuoteIdent(cfg, c.After))
	}
	return b.String(), nil
}

func referenceFragment(cfg *Config, r *types.Reference) string {
	key := r.Key
	if key == "" {
		key = "id"
	}
	s := "REFERENCES " + QuoteIdent(cfg, r.Table) + " (" + QuoteIdent(cfg, key) + ")"
	if r.OnDelete != "" {
		s += " ON DELETE " + strings.ToUpper(r.OnDelete)
	}
	if r.OnUpdate != "" {
		s += " ON UPDATE " + strings.ToUpper(r.OnUpdate)
	}
	return s
}

// defaultForbidden reports whether the dialect silently drops DEFAULT for
// this column type.
func defaultForbidden(cfg *Config, typ string) bool {
	upper := strings.ToUpper(typ)
	for _, p := range cfg.NoDefaultTypes {
		if strings.HasPrefix(upper, p) {
			return true
		}
	}
	return false
}

// CreateTable renders CREATE TABLE IF NOT EXISTS. PRIMARY KEY and
// REFERENCES tokens embedded in column fragments are extracted into derived
// table-level PRIMARY KEY and FOREIGN KEY clauses; multi-column unique
// constraints derive uniq_<table>_<cols> names.
func CreateTable(cfg *Config, table string, cols []types.ColumnDef, opts *types.TableOptions) (string, error) {
	defs := make([]string, 0, len(cols))
	var pks, fks []string
	for _, c := range cols {
		frag, err := columnFragment(cfg, c)
		if err != nil {
			return "", err
		}
		if strings.Contains(frag, "PRIMARY KEY") {
			pks = append(pks, QuoteIdent(cfg, c.Name))
			frag = strings.Replace(frag, " PRIMARY KEY", "", 1)
		}
		if i := strings.Index(frag, "REFERENCES"); i >= 0 {
			fks = append(fks, "FOREIGN KEY ("+QuoteIdent(cfg, c.Name)+") "+frag[i:])
			frag = strings.TrimRight(frag[:i], " ")
		}
		defs = append(defs, QuoteIdent(cfg, c.Name)+" "+frag)
	}
	if len(pks) > 0 {
		defs = append(defs, "PRIMARY KEY ("+strings.Join(pks, ", ")+")")
	}
	defs = append(defs, fks...)

	if opts != nil {
		for _, uk := range opts.UniqueKeys {
			name := uk.Name
			if name == "" {
				name = "uniq_" + table + "_" + strings.Join(uk.Columns, "_")
			}
			quoted := make([]string, 0, len(uk.Columns))
			for _, c := range uk.Columns {
				quoted = append(quoted, QuoteIdent(cfg, c))
			}
			defs = append(defs, "UNIQUE "+QuoteIdent(cfg, name)+" ("+strings.Join(quoted, ", ")+")")
		}
	}

	sql := "CREATE TABLE IF NOT EXISTS " + QuoteIdent(cfg, table) + " (" + strings.Join(defs, ", ") + ")"
	if cfg.Engine != "" {
		sql += " ENGINE=" + cfg.Engine
	}
	if cfg.TableOptions && opts != nil {
		if opts.Charset != "" {
			sql += " DEFAULT CHARSET=" + opts.Charset
		}
		if opts.Collate != "" {
			sql += " COLLATE " + opts.Collate
		}
		if opts.RowFormat != "" {
			sql += " ROW_FORMAT=" + strings.ToUpper(opts.RowFormat)
		}
	}
	return sql + ";", nil
}

// DropTable renders DROP TABLE IF EXISTS.
func DropTable(cfg *Config, table string) string {
	return "DROP TABLE IF EXISTS " + QuoteIdent(cfg, table) + ";"
}

// RenameTable renders ALTER TABLE ... RENAME TO.
func RenameTable(cfg *Config, before, after string) string {
	return "ALTER TABLE " + QuoteIdent(cfg, before) + " RENAME TO " + QuoteIdent(cfg, after) + ";"
}

// RemoveColumn renders ALTER TABLE ... DROP COLUMN.
func RemoveColumn(cfg *Config, table, column string) string {
	return "ALTER TABLE " + QuoteIdent(cfg, table) + " DROP COLUMN " + QuoteIdent(cfg, column) + ";"
}
