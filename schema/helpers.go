package schema

import (
	"fmt"
	"sort"
)

// GroupSignalsByPep indexes signals by PEP number for per-activity rendering.
func GroupSignalsByPep(signals []PepSignal) map[int][]PepSignal {
	grouped := make(map[int][]PepSignal)
	for _, s := range signals {
		grouped[s.Number] = append(grouped[s.Number], s)
	}
	return grouped
}

// SortSignalsForDisplay orders signals by descending weight, then by kind
// name, so the most significant signal always renders first.
func SortSignalsForDisplay(signals []PepSignal) {
	sort.SliceStable(signals, func(i, j int) bool {
		if signals[i].Weight != signals[j].Weight {
			return signals[i].Weight > signals[j].Weight
		}
		return signals[i].Kind < signals[j].Kind
	})
}

// PepURL returns the canonical peps.python.org URL for a PEP number.
func PepURL(number int) string {
	return fmt.Sprintf("https://peps.python.org/pep-%04d/", number)
}

// StringValue dereferences an optional metadata field, returning fallback
// when the field is absent.
func StringValue(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
