// Package snowflake provides the Snowflake dialect generator.
//
// Identifiers quote with double quotes, autoincrement columns use the
// AUTOINCREMENT keyword, and introspection goes through
// INFORMATION_SCHEMA. Bind parameters render as $sequelize_<n>.
package snowflake

import (
	"github.com/zorple/sqlgen"
	"github.com/zorple/sqlgen/internal/render"
)

// Option configures a Generator at construction time.
type Option func(*render.Config)

// WithoutIdentifierQuoting emits bare identifiers instead of wrapping them
// in the dialect delimiter. The toggle threads through every clause
// builder uniformly.
func WithoutIdentifierQuoting() Option {
	return func(cfg *render.Config) { cfg.QuoteIdentifiers = false }
}

// Generator implements the Snowflake dialect. It is immutable after New
// and safe for concurrent use.
type Generator struct {
	cfg render.Config
}

var _ sqlgen.Generator = (*Generator)(nil)

// New creates a Snowflake generator.
func New(opts ...Option) *Generator {
	cfg := render.Config{
		Name:             "snowflake",
		QuoteChar:        '"',
		QuoteIdentifiers: true,
		BindPrefix:       "sequelize_",
		AutoIncrement:    "AUTOINCREMENT",
		BoolTrue:         "true",
		BoolFalse:        "false",
		NoDefaultTypes: []string{
			"BLOB", "BINARY", "VARBINARY",
			"TEXT",
			"JSON", "VARIANT", "OBJECT",
			"GEOMETRY", "GEOGRAPHY",
		},
		Hints:        render.HintUseForceIgnore,
		TableOptions: true,
	}
	for _, o := range opts {
		o(&cfg)
	}
	return &Generator{cfg: cfg}
}

// Select composes a complete SELECT statement.
func (g *Generator) Select(table string, q *sqlgen.Query) (string, error) {
	return render.Select(&g.cfg, table, q)
}

// Insert renders a single-row INSERT with named bind parameters.
func (g *Generator) Insert(table string, row []sqlgen.Assignment, opts *sqlgen.InsertOptions) (*sqlgen.Statement, error) {
	return render.Insert(&g.cfg, table, row, opts)
}

// BulkInsert renders a multi-row INSERT with inline literals. Snowflake has
// no duplicate-tolerant INSERT form, so IgnoreDuplicates reports an
// unsupported-feature error.
func (g *Generator) BulkInsert(table string, rows []sqlgen.Row, opts *sqlgen.BulkInsertOptions) (string, error) {
	return render.BulkInsert(&g.cfg, table, rows, opts)
}

// Update renders SET assignments and WHERE as one continuing bind sequence.
func (g *Generator) Update(table string, sets []sqlgen.Assignment, where []sqlgen.ConditionItem) (*sqlgen.Statement, error) {
	return render.Update(&g.cfg, table, sets, where)
}

// Delete renders DELETE FROM with inline literals.
func (g *Generator) Delete(table string, where []sqlgen.ConditionItem, opts *sqlgen.DeleteOptions) (string, error) {
	return render.Delete(&g.cfg, table, where, opts)
}

// CreateTable renders CREATE TABLE IF NOT EXISTS with derived PRIMARY KEY,
// FOREIGN KEY and UNIQUE clauses.
func (g *Generator) CreateTable(table string, cols []sqlgen.ColumnDef, opts *sqlgen.TableOptions) (string, error) {
	return render.CreateTable(&g.cfg, table, cols, opts)
}

// ColumnDDL renders each column definition as a DDL fragment keyed by
// column name.
func (g *Generator) ColumnDDL(cols []sqlgen.ColumnDef) (map[string]string, error) {
	return render.ColumnDDL(&g.cfg, cols)
}

// DropTable renders DROP TABLE IF EXISTS.
func (g *Generator) DropTable(table string) string {
	return render.DropTable(&g.cfg, table)
}

// RenameTable renders ALTER TABLE ... RENAME TO.
func (g *Generator) RenameTable(before, after string) string {
	return render.RenameTable(&g.cfg, before, after)
}

// RemoveColumn renders ALTER TABLE ... DROP COLUMN.
func (g *Generator) RemoveColumn(table, column string) string {
	return render.RemoveColumn(&g.cfg, table, column)
}

// TableExists renders the INFORMATION_SCHEMA lookup for a table, scoped to
// the given schema or the connection's current schema.
func (g *Generator) TableExists(table, schema string) string {
	sql := "SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_NAME = " +
		render.EscapeString(table) + " AND TABLE_SCHEMA = "
	if schema != "" {
		return sql + render.EscapeString(schema) + ";"
	}
	return sql + "CURRENT_SCHEMA();"
}

// ForeignKeys renders the KEY_COLUMN_USAGE lookup matching rows where
// table/key is either the referenced or the referencing side.
func (g *Generator) ForeignKeys(table, key string) string {
	t := render.EscapeString(table)
	k := render.EscapeString(key)
	return "SELECT CONSTRAINT_NAME as constraint_name FROM INFORMATION_SCHEMA.KEY_COLUMN_USAGE" +
		" WHERE (REFERENCED_TABLE_NAME = " + t + " AND REFERENCED_COLUMN_NAME = " + k + ")" +
		" OR (TABLE_NAME = " + t + " AND COLUMN_NAME = " + k + " AND REFERENCED_TABLE_NAME IS NOT NULL);"
}

// ShowTables renders the current-schema table listing.
func (g *Generator) ShowTables() string {
	return "SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = CURRENT_SCHEMA();"
}
