package marina

import "strings"

// Boats are ordered by the lowercase-folded name compared byte by byte, the
// same ordering ordinary case-insensitive lexicographic comparison gives.
// The insertion sequence breaks ties so comparison-equal names keep their
// original relative order.

func foldName(name string) string {
	return strings.ToLower(name)
}

func byBoatName(a, b interface{}) bool {
	b1, b2 := a.(*Boat), b.(*Boat)
	if b1.folded != b2.folded {
		return b1.folded < b2.folded
	}

	return b1.seq < b2.seq
}
