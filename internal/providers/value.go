package providers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrValueAbsent is returned when a concrete type is requested from an absent or null cell.
var ErrValueAbsent = errors.New("value absent")

// Value is a single cell from an upstream row. stats.nba.com mixes numbers,
// strings and nulls within one column, so cells stay untyped until a
// normalizer asks for a concrete type.
type Value struct {
	raw     any
	present bool
}

// NewValue wraps a decoded JSON value. A nil raw value is present but null.
func NewValue(raw any) Value {
	return Value{raw: raw, present: true}
}

// Absent returns a Value for a field the upstream did not send at all.
func Absent() Value {
	return Value{}
}

// Present reports whether the upstream sent a non-null value.
func (v Value) Present() bool {
	return v.present && v.raw != nil
}

// Raw exposes the decoded JSON value.
func (v Value) Raw() any {
	return v.raw
}

// Truthy applies upstream truthiness: null, absent, zero, "" and false are falsy.
func (v Value) Truthy() bool {
	if !v.Present() {
		return false
	}
	switch x := v.raw.(type) {
	case bool:
		return x
	case string:
		return x != ""
	}
	if f, ok := number(v.raw); ok {
		return f != 0
	}
	return true
}

// Int converts the value to an integer. Fractional numbers are truncated.
func (v Value) Int() (int, error) {
	if !v.Present() {
		return 0, ErrValueAbsent
	}
	switch x := v.raw.(type) {
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, fmt.Errorf("invalid integer %q", x)
		}
		return n, nil
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return int(n), nil
		}
	}
	f, ok := number(v.raw)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid integer %v", v.raw)
	}
	return int(math.Trunc(f)), nil
}

// Float converts the value to a float64.
func (v Value) Float() (float64, error) {
	if !v.Present() {
		return 0, ErrValueAbsent
	}
	switch x := v.raw.(type) {
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number %q", x)
		}
		return f, nil
	}
	f, ok := number(v.raw)
	if !ok {
		return 0, fmt.Errorf("invalid number %v", v.raw)
	}
	return f, nil
}

// Text renders the value as a string. The boolean is false when the value is absent or null.
func (v Value) Text() (string, bool) {
	if !v.Present() {
		return "", false
	}
	switch x := v.raw.(type) {
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case bool:
		return strconv.FormatBool(x), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case int:
		return strconv.Itoa(x), true
	}
	return fmt.Sprint(v.raw), true
}

func number(raw any) (float64, bool) {
	switch x := raw.(type) {
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	default:
		return 0, false
	}
}
