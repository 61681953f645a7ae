package render

// HintSyntax selects how a dialect renders index hints.
type HintSyntax int

const (
	// HintNone drops all index hints.
	HintNone HintSyntax = iota
	// HintUseForceIgnore renders USE|FORCE|IGNORE INDEX (names...).
	HintUseForceIgnore
	// HintIndexedBy renders SQLite's INDEXED BY name / NOT INDEXED.
	HintIndexedBy
)

// Config is the fixed set of per-dialect knobs consulted by every renderer.
// A dialect package constructs one Config per generator; it is read-only
// after construction and safe for concurrent use.
//
//nolint:govet // fieldalignment: logical grouping is preferred over memory optimization
type Config struct {
	// Name identifies the dialect in error messages.
	Name string

	// QuoteChar is the identifier delimiter. QuoteIdentifiers toggles
	// delimiter wrapping; when false identifiers pass through verbatim.
	QuoteChar        byte
	QuoteIdentifiers bool

	// BindPrefix is the bind-parameter name prefix; names are assigned as
	// <prefix>1, <prefix>2, ... in order of appearance.
	BindPrefix string

	// AutoIncrement is the column DDL keyword (AUTOINCREMENT vs
	// AUTO_INCREMENT).
	AutoIncrement string

	// Boolean literal keywords.
	BoolTrue  string
	BoolFalse string

	// NoDefaultTypes lists uppercase type-name prefixes whose DEFAULT
	// values are silently dropped from column DDL.
	NoDefaultTypes []string

	// Hints selects the index-hint syntax family.
	Hints HintSyntax

	// InsertIgnore is the duplicate-tolerant INSERT verb (INSERT IGNORE,
	// INSERT OR IGNORE). Empty means the dialect has none.
	InsertIgnore string

	// DeleteLimit reports whether DELETE accepts a LIMIT clause.
	DeleteLimit bool

	// TableOptions reports whether CREATE TABLE accepts charset, collate
	// and row-format options. Engine, when set, is appended as ENGINE=<v>.
	TableOptions bool
	Engine       string
}
