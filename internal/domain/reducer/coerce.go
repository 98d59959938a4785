package reducer

import (
	"strings"
	"time"

	"bidworks/pkg/numeric"
)

// Loose coercion for action payloads that arrive as decoded JSON. The
// reducer never propagates NaN or negative quantities into stored
// state.

func asFloat(v any) float64 { return numeric.FromAny(v) }

func nonNegative(v float64) float64 { return numeric.NonNegative(v) }

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.EqualFold(t, "true")
	case float64:
		return t != 0
	default:
		return false
	}
}

// asTime accepts time values directly or as RFC3339 / date-only
// strings. Anything else yields nil, which clears the field.
func asTime(v any) *time.Time {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return nil
		}
		return &t
	case *time.Time:
		return t
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return &parsed
			}
		}
		return nil
	default:
		return nil
	}
}
