package reservation

import "vango/models"

// Overlaps reports whether two [start,end) windows conflict. Touching
// boundaries (one ends exactly when the other starts) do not conflict.
func Overlaps(a, b models.Window) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}
