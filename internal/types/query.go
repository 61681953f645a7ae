package types

// Query is the SELECT descriptor consumed by a statement generator. It is
// built once by the caller, consumed once, and never retained.
//
//nolint:govet // fieldalignment: logical grouping is preferred over memory optimization
type Query struct {
	Attributes []Expr
	Where      []ConditionItem
	GroupBy    []Expr
	Having     []ConditionItem
	Order      []OrderTerm
	Limit      *int
	Offset     *int
	IndexHints []IndexHint
	Subquery   bool
	Alias      string
}

// OrderTerm is one ORDER BY entry. Direction is passed through uppercased
// when it is a recognized keyword; an unrecognized token is rendered as a
// second quoted column instead (legacy contract, preserved bit-for-bit).
type OrderTerm struct {
	Expr      Expr
	Direction string
}

// HintKind is an index-hint keyword. Unrecognized kinds are silently
// dropped by the clause builder, never an error.
type HintKind string

const (
	UseIndex    HintKind = "USE"
	ForceIndex  HintKind = "FORCE"
	IgnoreIndex HintKind = "IGNORE"
)

// IndexHint instructs the engine which indexes to prefer, force or ignore.
type IndexHint struct {
	Kind    HintKind
	Indexes []string
}

// Assignment pairs a column with a value. Slices of assignments keep the
// caller's order, which fixes both column order and bind numbering.
type Assignment struct {
	Column string
	Value  any
}

// Row is one row of an insert: an ordered set of column assignments.
type Row []Assignment

// InsertOptions controls single-row insert generation.
type InsertOptions struct {
	// OmitNull drops columns whose value is nil from the statement.
	OmitNull bool
}

// BulkInsertOptions controls multi-row insert generation.
type BulkInsertOptions struct {
	// IgnoreDuplicates requests the dialect's duplicate-tolerant insert
	// form. Dialects without one report an unsupported-feature error.
	IgnoreDuplicates bool

	// OmitNull is accepted for symmetry with InsertOptions but has no
	// effect: bulk statements need a uniform column set across rows, so
	// nil values render as NULL instead of dropping the column. This is a
	// documented compatibility contract.
	OmitNull bool
}

// DeleteOptions controls DELETE generation.
type DeleteOptions struct {
	// Limit caps the number of deleted rows on dialects that allow it.
	Limit *int
}
