package blockcss

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// IsEmpty reports whether v carries no usable style value.
//
// nil, typed nil pointers, the empty string, empty slices/arrays and maps
// with no keys are empty. The number 0 and false are values, not empty.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return IsEmpty(rv.Elem().Interface())
	case reflect.Slice, reflect.Map:
		return rv.IsNil() || rv.Len() == 0
	case reflect.Array, reflect.String:
		return rv.Len() == 0
	}
	return false
}

// formatValue renders a style value as CSS text.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return formatValue(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}

// numericValue returns v as a float when it is a finite number or a decimal
// numeric string. Inf, NaN and hex literals are not numbers in CSS.
func numericValue(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint64:
		return float64(x), true
	case string:
		if !isDecimalLiteral(x) {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// isDecimalLiteral reports whether s only holds characters of a decimal
// number: digits, sign, point and exponent.
func isDecimalLiteral(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '+', r == '-', r == '.', r == 'e', r == 'E':
		default:
			return false
		}
	}
	return true
}
