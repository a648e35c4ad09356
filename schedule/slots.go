/*
slots.go - Fixed time-slot boundary catalog and interval math

PURPOSE:
  The workday is divided into fixed hour slots by an ordered catalog of
  boundary points (08:30 through 17:30). Leave intervals are expressed as
  half-open index ranges [start, end) into this catalog, which turns every
  overlap and coverage question into integer comparison.

INVARIANTS:
  - The boundary catalog is strictly increasing and identical for all dates
  - Intervals are half-open: a leave ending at 11:30 does not conflict with
    one starting at 11:30

SEE ALSO:
  - index.go: Uses Covers for slot queries
  - lifecycle.go: Uses Overlaps for proxy conflict detection
*/
package schedule

// boundaries is the fixed catalog of time-of-day cut points. The first
// NumSlots entries start a bookable slot; the final entry only closes the
// day.
var boundaries = []string{
	"08:30", "09:30", "10:30", "11:30", "12:30",
	"13:30", "14:30", "15:30", "16:30", "17:30",
}

// NumBoundaries is the number of boundary points in the catalog.
const NumBoundaries = 10

// NumSlots is the number of bookable hour slots.
const NumSlots = NumBoundaries - 1

// BoundaryIndex resolves an HH:MM label to its catalog index.
// Returns (-1, false) when the label is not in the catalog.
func BoundaryIndex(label string) (int, bool) {
	for i, b := range boundaries {
		if b == label {
			return i, true
		}
	}
	return -1, false
}

// BoundaryLabel returns the HH:MM label for a catalog index.
// Returns "" for an out-of-range index.
func BoundaryLabel(i int) string {
	if i < 0 || i >= len(boundaries) {
		return ""
	}
	return boundaries[i]
}

// ValidBoundary reports whether i is a catalog index.
func ValidBoundary(i int) bool { return i >= 0 && i < NumBoundaries }

// ValidSlot reports whether i starts a bookable slot.
func ValidSlot(i int) bool { return i >= 0 && i < NumSlots }

// =============================================================================
// INTERVAL - Half-open boundary index range
// =============================================================================

// Interval is a half-open range [Start, End) of boundary indices.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether two half-open intervals share any slot.
// Touching intervals (one ends where the other begins) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return !(iv.End <= other.Start || iv.Start >= other.End)
}

// Covers reports whether the slot starting at boundary s lies inside the
// interval.
func (iv Interval) Covers(s int) bool {
	return iv.Start <= s && s < iv.End
}

// Hours returns the interval length in whole hours (one slot = one hour).
func (iv Interval) Hours() int { return iv.End - iv.Start }
