package sqlgen

import "github.com/zorple/sqlgen/internal/render"

// Error taxonomy. Generation either fully succeeds or fails with one of
// these before any text is returned; it is deterministic, so callers should
// not retry.
type (
	// UnsupportedLiteralError reports a value outside the closed set of
	// literal kinds.
	UnsupportedLiteralError = render.UnsupportedLiteralError

	// UnknownOperatorError reports an operator outside the closed set.
	UnknownOperatorError = render.UnknownOperatorError

	// InvalidColumnError reports a column reference that cannot render.
	InvalidColumnError = render.InvalidColumnError

	// MalformedPredicateError reports an uninterpretable predicate tree.
	MalformedPredicateError = render.MalformedPredicateError

	// UnsupportedFeatureError reports a feature the dialect lacks.
	UnsupportedFeatureError = render.UnsupportedFeatureError
)
