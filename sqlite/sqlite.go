// Package sqlite provides the SQLite dialect generator.
//
// Identifiers quote with backticks, booleans render as 1/0, index hints use
// INDEXED BY / NOT INDEXED, and introspection goes through sqlite_master
// and PRAGMA foreign_key_list.
package sqlite

import (
	"github.com/zorple/sqlgen"
	"github.com/zorple/sqlgen/internal/render"
)

// Option configures a Generator at construction time.
type Option func(*render.Config)

// WithoutIdentifierQuoting emits bare identifiers instead of wrapping them
// in backticks.
func WithoutIdentifierQuoting() Option {
	return func(cfg *render.Config) { cfg.QuoteIdentifiers = false }
}

// Generator implements the SQLite dialect. It is immutable after New and
// safe for concurrent use.
type Generator struct {
	cfg render.Config
}

var _ sqlgen.Generator = (*Generator)(nil)

// New creates a SQLite generator.
func New(opts ...Option) *Generator {
	cfg := render.Config{
		Name:             "sqlite",
		QuoteChar:        '`',
		QuoteIdentifiers: true,
		BindPrefix:       "sequelize_",
		AutoIncrement:    "AUTOINCREMENT",
		BoolTrue:         "1",
		BoolFalse:        "0",
		NoDefaultTypes: []string{
			"BLOB", "TEXT", "JSON", "GEOMETRY",
		},
		Hints:        render.HintIndexedBy,
		InsertIgnore: "INSERT OR IGNORE",
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

// Insert renders a single-row INSERT with named bind parameters. SQLite
// accepts the $name bind marker natively.
func (g *Generator) Insert(table string, row []sqlgen.Assignment, opts *sqlgen.InsertOptions) (*sqlgen.Statement, error) {
	return render.Insert(&g.cfg, table, row, opts)
}

// BulkInsert renders a multi-row INSERT with inline literals;
// IgnoreDuplicates renders INSERT OR IGNORE.
func (g *Generator) BulkInsert(table string, rows []sqlgen.Row, opts *sqlgen.BulkInsertOptions) (string, error) {
	return render.BulkInsert(&g.cfg, table, rows, opts)
}

// Update renders SET assignments and WHERE as one continuing bind sequence.
func (g *Generator) Update(table string, sets []sqlgen.Assignment, where []sqlgen.ConditionItem) (*sqlgen.Statement, error) {
	return render.Update(&g.cfg, table, sets, where)
}

// Delete renders DELETE FROM with inline literals. SQLite builds commonly
// lack the optional delete-limit extension, so Limit is ignored.
func (g *Generator) Delete(table string, where []sqlgen.ConditionItem, opts *sqlgen.DeleteOptions) (string, error) {
	return render.Delete(&g.cfg, table, where, opts)
}

// CreateTable renders CREATE TABLE IF NOT EXISTS. Table-level charset and
// row-format options do not apply to SQLite and are ignored.
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

// TableExists renders the sqlite_master lookup for a table. SQLite has no
// schemas; the schema argument is ignored.
func (g *Generator) TableExists(table, _ string) string {
	return "SELECT name FROM sqlite_master WHERE type='table' AND name=" +
		render.EscapeString(table) + ";"
}

// ForeignKeys renders the foreign-key listing pragma for a table. The key
// argument is unused: the pragma always reports every foreign key.
func (g *Generator) ForeignKeys(table, _ string) string {
	return "PRAGMA foreign_key_list(" + render.QuoteIdent(&g.cfg, table) + ");"
}

// ShowTables renders the user-table listing.
func (g *Generator) ShowTables() string {
	return "SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%';"
}
