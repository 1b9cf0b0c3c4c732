package db

import (
	"math"
	"time"
)

// Sanitize prepares a raw document payload for Firestore. NaN and infinite
// numbers become nil (stored as null), nil elements are dropped from
// slices, and empty strings, empty slices, and empty nested maps are kept
// as-is. A key that was never present in the map is the Go analog of an
// undefined field: it is simply not written.
//
// Used by the import/migration paths, which build documents as
// map[string]any from external JSON rather than typed models.
func Sanitize(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		return v
	case float32:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return v
	case []any:
		cleaned := make([]any, 0, len(v))
		for _, item := range v {
			if c := Sanitize(item); c != nil {
				cleaned = append(cleaned, c)
			}
		}
		return cleaned
	case map[string]any:
		cleaned := make(map[string]any, len(v))
		for key, item := range v {
			cleaned[key] = Sanitize(item)
		}
		return cleaned
	case time.Time:
		return v
	default:
		return v
	}
}

// SanitizeMap is Sanitize for a whole document payload.
func SanitizeMap(doc map[string]any) map[string]any {
	return Sanitize(doc).(map[string]any)
}
