package render

import "fmt"

// UnsupportedLiteralError indicates a value outside the closed set of
// literal kinds a dialect can render.
type UnsupportedLiteralError struct {
	Value any
}

func (e UnsupportedLiteralError) Error() string {
	return fmt.Sprintf("unsupported literal kind %T (%v)", e.Value, e.Value)
}

// UnknownOperatorError indicates a comparison operator outside the closed
// operator set.
type UnknownOperatorError struct {
	Operator string
}

func (e UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator %q", e.Operator)
}

// InvalidColumnError indicates a column reference that cannot be rendered,
// such as an empty name.
type InvalidColumnError struct {
	Name string
}

func (e InvalidColumnError) Error() string {
	return fmt.Sprintf("invalid column reference %q", e.Name)
}

// MalformedPredicateError indicates a predicate tree the where renderer
// cannot interpret.
type MalformedPredicateError struct {
	Reason string
}

func (e MalformedPredicateError) Error() string {
	return "malformed predicate: " + e.Reason
}

// UnsupportedFeatureError indicates a feature not supported by the dialect.
type UnsupportedFeatureError struct {
	Feature string
	Dialect string
	Hint    string
}

func (e UnsupportedFeatureError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s is not supported: %s", e.Dialect, e.Feature, e.Hint)
	}
	return fmt.Sprintf("%s: %s is not supported", e.Dialect, e.Feature)
}

// NewUnsupportedFeatureError creates a new unsupported feature error.
func NewUnsupportedFeatureError(dialect, feature string, hint ...string) error {
	err := UnsupportedFeatureError{Feature: feature, Dialect: dialect}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}
