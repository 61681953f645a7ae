// Package sqlgen generates dialect-specific SQL from an abstract,
// dialect-agnostic query description.
//
// The package turns a query descriptor (table, projection, predicate tree,
// grouping, ordering, pagination, index hints) into a syntactically correct
// SQL string for one SQL dialect, plus an out-of-band bind map when bound
// parameters are used. It does not parse SQL, plan queries, or talk to a
// server: generation is a pure, synchronous transformation that is safe to
// invoke concurrently on independent descriptors.
//
// # Basic Usage
//
// Descriptors are built from small constructors and handed to a dialect
// generator:
//
//	import "github.com/zorple/sqlgen/snowflake"
//
//	g := snowflake.New()
//	sql, err := g.Select("myTable", &sqlgen.Query{
//		Where: []sqlgen.ConditionItem{sqlgen.Eq("id", 2)},
//	})
//	// sql: SELECT * FROM "myTable" WHERE "myTable"."id" = 2;
//
// # Bind Parameters
//
// Single-row INSERT and UPDATE return a Statement carrying the SQL text and
// a bind map keyed sequelize_1, sequelize_2, ... in strict left-to-right
// order of appearance:
//
//	st, err := g.Insert("myTable", []sqlgen.Assignment{{Column: "name", Value: "foo"}}, nil)
//	// st.SQL:  INSERT INTO "myTable" ("name") VALUES ($sequelize_1);
//	// st.Bind: map[sequelize_1:foo]
//
// Bulk INSERT always inlines escaped literals instead, since multi-row
// statements cannot carry bind parameters uniformly across drivers.
//
// # Dialects
//
// Each dialect lives in its own package (snowflake, sqlite, mysql) behind
// the Generator interface. Identifier quoting is the one configuration axis
// that reshapes every statement uniformly; it can be disabled per generator.
package sqlgen

import "github.com/zorple/sqlgen/internal/types"

// Expr is a node of the expression model: column references, raw function
// calls, casts, trusted fragments, and literal values.
type Expr = types.Expr

// Column references a column, optionally qualified by table or alias.
type Column = types.Column

// Operator represents query comparison operators.
type Operator = types.Operator

// Re-export operator constants for the public API.
const (
	EQ  = types.OpEq
	NE  = types.OpNe
	GT  = types.OpGt
	GTE = types.OpGte
	LT  = types.OpLt
	LTE = types.OpLte

	IN    = types.OpIn
	NotIn = types.OpNotIn

	LIKE    = types.OpLike
	NotLike = types.OpNotLike

	REGEXP    = types.OpRegexp
	NotRegexp = types.OpNotRegexp

	NOT       = types.OpNot
	IsNull    = types.OpIsNull
	IsNotNull = types.OpIsNotNull
)

// ConditionItem represents either a single condition or a group of
// conditions.
type (
	ConditionItem  = types.ConditionItem
	Condition      = types.Condition
	ConditionGroup = types.ConditionGroup
	RawCondition   = types.RawCondition
)

// Query is the SELECT descriptor consumed by a Generator.
type (
	Query     = types.Query
	OrderTerm = types.OrderTerm
	IndexHint = types.IndexHint
	HintKind  = types.HintKind
)

// Re-export index-hint kinds.
const (
	UseIndex    = types.UseIndex
	ForceIndex  = types.ForceIndex
	IgnoreIndex = types.IgnoreIndex
)

// Assignment pairs a column with a value; slices preserve caller order.
type (
	Assignment        = types.Assignment
	Row               = types.Row
	InsertOptions     = types.InsertOptions
	BulkInsertOptions = types.BulkInsertOptions
	DeleteOptions     = types.DeleteOptions
)

// ColumnDef describes one column for CREATE TABLE and DDL fragments.
type (
	ColumnDef    = types.ColumnDef
	Reference    = types.Reference
	UniqueKey    = types.UniqueKey
	TableOptions = types.TableOptions
)

// Statement is a rendered statement plus its out-of-band bind values.
type Statement = types.Statement
