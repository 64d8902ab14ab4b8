package molfile

import (
	"fmt"
	"strings"
)

// formatOccurrence renders one packed occurrence range per §4.3. The
// packing convention (molecule.PackOccurrence) stores high-half = low,
// low-half = high; unpack in that order before applying the case split.
func formatOccurrence(packed int) string {
	low := (packed >> 16) & 0xFFFF
	high := packed & 0xFFFF

	switch {
	case low == high:
		return fmt.Sprintf("%d", low)
	case high == 0xFFFF:
		return fmt.Sprintf(">%d", low-1)
	case low == 0:
		return fmt.Sprintf("<%d", high+1)
	default:
		return fmt.Sprintf("%d-%d", low, high)
	}
}

// formatOccurrenceList renders a comma-space separated list of packed
// occurrence ranges in order.
func formatOccurrenceList(packed []int) string {
	parts := make([]string, len(packed))
	for i, p := range packed {
		parts[i] = formatOccurrence(p)
	}
	return strings.Join(parts, ", ")
}
