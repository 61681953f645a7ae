package types

// ColumnDef describes one column for CREATE TABLE and column DDL fragments.
type ColumnDef struct {
	Name          string
	Type          string
	NotNull       bool
	Default       any // nil means no DEFAULT clause
	PrimaryKey    bool
	Unique        bool
	AutoIncrement bool
	Comment       string
	After         string
	References    *Reference
}

// Reference describes a foreign-key target for a column definition.
type Reference struct {
	Table    string
	Key      string // referenced column, "id" when empty
	OnDelete string
	OnUpdate string
}

// UniqueKey is a multi-column unique constraint. Its derived name is
// uniq_<table>_<col1>_<col2>... unless Name overrides it.
type UniqueKey struct {
	Name    string
	Columns []string
}

// TableOptions carries table-level CREATE TABLE options. Dialects ignore
// the knobs they do not support.
type TableOptions struct {
	Charset    string
	Collate    string
	RowFormat  string
	UniqueKeys []UniqueKey
}
