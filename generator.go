package sqlgen

// Generator is the dialect entry point. Implementations are pure functions
// of descriptor to text: no I/O, no shared mutable state, byte-identical
// output for identical input and configuration.
type Generator interface {
	// Select composes a complete SELECT statement.
	Select(table string, q *Query) (string, error)

	// Insert renders a single-row INSERT with named bind parameters.
	Insert(table string, row []Assignment, opts *InsertOptions) (*Statement, error)

	// BulkInsert renders a multi-row INSERT with inline literals.
	BulkInsert(table string, rows []Row, opts *BulkInsertOptions) (string, error)

	// Update renders SET assignments and WHERE as one continuing bind
	// sequence.
	Update(table string, sets []Assignment, where []ConditionItem) (*Statement, error)

	// Delete renders DELETE FROM with inline literals.
	Delete(table string, where []ConditionItem, opts *DeleteOptions) (string, error)

	// CreateTable renders CREATE TABLE IF NOT EXISTS with derived
	// table-level constraints.
	CreateTable(table string, cols []ColumnDef, opts *TableOptions) (string, error)

	// ColumnDDL renders each column definition as a DDL fragment keyed by
	// column name.
	ColumnDDL(cols []ColumnDef) (map[string]string, error)

	// DropTable renders DROP TABLE IF EXISTS.
	DropTable(table string) string

	// RenameTable renders the dialect's table rename statement.
	RenameTable(before, after string) string

	// RemoveColumn renders the dialect's drop-column statement.
	RemoveColumn(table, column string) string

	// TableExists renders the introspection query checking for a table,
	// scoped to schema when given.
	TableExists(table, schema string) string

	// ForeignKeys renders the introspection query listing foreign keys
	// where table/key is either the referenced or the referencing side.
	ForeignKeys(table, key string) string

	// ShowTables renders the dialect's table listing query.
	ShowTables() string
}
