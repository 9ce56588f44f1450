package domain

const (
	MinRating = 1.0
	MaxRating = 5.0
)

// ValidRating reports whether a submitted rating is inside [1,5].
func ValidRating(r float64) bool {
	return r >= MinRating && r <= MaxRating
}

// NextRating folds a new submission into a kitchen's displayed rating.
// This is a fixed-weight smoothing, (current+submitted)/2, not a
// count-weighted running mean: old submissions decay geometrically.
func NextRating(current, submitted float64) float64 {
	return (current + submitted) / 2
}
