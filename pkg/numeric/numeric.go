// Package numeric holds the safe coercion primitives used across the
// estimate domain. Stored quantities and rates must never be NaN,
// infinite, or negative; anything unparsable collapses to zero.
package numeric

import (
	"math"
	"strconv"
	"strings"
)

// Safe returns v, or 0 when v is NaN or infinite.
func Safe(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// NonNegative returns v clamped to zero from below, with NaN/Inf
// collapsed to zero first.
func NonNegative(v float64) float64 {
	return math.Max(0, Safe(v))
}

// AtLeast returns v clamped to the given floor.
func AtLeast(floor, v float64) float64 {
	return math.Max(floor, Safe(v))
}

// Parse coerces a numeric string to a float64. Thousands separators are
// tolerated; anything else unparsable yields 0.
func Parse(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return Safe(v)
}

// FromAny coerces loosely typed values (JSON numbers, numeric strings,
// bools) to a float64, never returning NaN.
func FromAny(v any) float64 {
	switch t := v.(type) {
	case float64:
		return Safe(t)
	case float32:
		return Safe(float64(t))
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		return Parse(t)
	case bool:
		if t {
			return 1
		}
		return 0
	default:
		return 0
	}
}
