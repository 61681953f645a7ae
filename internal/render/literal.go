package render

import (
	"encoding/hex"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// TimestampLayout is the canonical date/time rendering: millisecond
// precision, always UTC.
const TimestampLayout = "2006-01-02 15:04:05.000"

// EscapeString renders a single-quoted string literal with embedded single
// quotes doubled. Doubling (not backslash escaping) keeps payloads such as
// `');DROP TABLE x;--` inert as one string token.
func EscapeString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// EscapeLiteral maps a scalar value to its canonical dialect text. The set
// of accepted kinds is closed; anything else reports
// UnsupportedLiteralError. Lists are rejected here; they are only valid
// inside IN and go through EscapeList.
func EscapeLiteral(cfg *Config, v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "NULL", nil
	case bool:
		if val {
			return cfg.BoolTrue, nil
		}
		return cfg.BoolFalse, nil
	case string:
		return EscapeString(val), nil
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(cast.ToInt64(val), 10), nil
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(cast.ToUint64(val), 10), nil
	case float32, float64:
		return strconv.FormatFloat(cast.ToFloat64(val), 'f', -1, 64), nil
	case time.Time:
		return EscapeString(val.UTC().Format(TimestampLayout)), nil
	case []byte:
		return "X'" + hex.EncodeToString(val) + "'", nil
	case uuid.UUID:
		return EscapeString(val.String()), nil
	}
	return "", UnsupportedLiteralError{Value: v}
}

// EscapeList renders a parenthesized, comma-separated literal list for IN
// and NOT IN. A scalar is treated as a one-element list; an empty list
// renders (NULL) so the comparison stays valid SQL and matches nothing.
func EscapeList(cfg *Config, v any) (string, error) {
	rv := reflect.ValueOf(v)
	if v == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		lit, err := EscapeLiteral(cfg, v)
		if err != nil {
			return "", err
		}
		return "(" + lit + ")", nil
	}
	// []byte is a blob, not a list
	if b, ok := v.([]byte); ok {
		lit, _ := EscapeLiteral(cfg, b)
		return "(" + lit + ")", nil
	}

	if rv.Len() == 0 {
		return "(NULL)", nil
	}
	parts := make([]string, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		lit, err := EscapeLiteral(cfg, rv.Index(i).Interface())
		if err != nil {
			return "", err
		}
		parts = append(parts, lit)
	}
	return "(" + strings.Join(parts, ", ") + ")", nil
}
