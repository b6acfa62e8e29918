package shape

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type primitive struct {
	name   string
	coerce func(v any) (any, bool)
}

func (p primitive) String() string { return p.name }

func (p primitive) mapValue(v any, path Path) (any, []Failure) {
	out, ok := p.coerce(v)
	if !ok {
		return nil, mismatch(path, p, v)
	}
	return out, nil
}

// String accepts strings.
func String() Shape { return primitive{name: "string", coerce: coerceString} }

// Number accepts numbers and numeric strings and maps them to float64.
func Number() Shape { return primitive{name: "number", coerce: coerceNumber} }

// Int accepts integral numbers and integer strings and maps them to int64.
func Int() Shape { return primitive{name: "int", coerce: coerceInt} }

// Boolean accepts booleans and the strings "true" and "false".
func Boolean() Shape { return primitive{name: "boolean", coerce: coerceBoolean} }

type unknown struct{}

func (unknown) String() string { return "unknown" }

func (unknown) mapValue(v any, _ Path) (any, []Failure) {
	if v == Missing {
		return nil, nil
	}
	return v, nil
}

// Unknown accepts any value, including null and absence, unchanged.
func Unknown() Shape { return unknown{} }

func coerceString(v any) (any, bool) {
	s, ok := v.(string)
	return s, ok
}

func coerceNumber(v any) (any, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		return numericString(x)
	}
	return nil, false
}

func numericString(s string) (any, bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil, false
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return f, true
}

func coerceInt(v any) (any, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i, true
		}
		f, err := x.Float64()
		if err != nil {
			return nil, false
		}
		return integral(f)
	case float64:
		return integral(x)
	case float32:
		return integral(float64(x))
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64); err == nil {
			return i, true
		}
	}
	return nil, false
}

func integral(f float64) (any, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, false
	}
	return int64(f), true
}

func coerceBoolean(v any) (any, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case string:
		switch x {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return nil, false
}
