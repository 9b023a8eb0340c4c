// Package grading compiles sub-scores into a point grade and produces the
// checksummed export bundle a teacher can verify offline. The bundle is built
// fresh on every export and never persisted; only an audit row recording that
// an export happened is kept.
package grading

import "math"

// SubScore is a correct/total pair for one scored category.
type SubScore struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Attempted reports whether the category was ever taken.
func (s SubScore) Attempted() bool {
	return s.Total > 0
}

// Breakdown is the point composition of a grade. PracticePoints is a pointer
// so an unattempted practice section is absent from the serialized breakdown
// rather than contributing a zero. With practice the maximum is 10, without
// it 7. The asymmetry with AtomicPoints (which always contributes) is
// long-standing scoring behavior and must not be changed without product
// sign-off.
type Breakdown struct {
	DinOficiu      int  `json:"dinOficiu"`
	AtomicPoints   int  `json:"atomicPoints"`
	PracticePoints *int `json:"practicePoints,omitempty"`
	Grade          int  `json:"grade"`
}

// Compile combines the theory (atomic) and practice sub-scores into a grade
// on the Romanian 1-10 scale. One din oficiu point is unconditional; theory
// is worth up to 6 points and practice up to 3. practice may be nil.
func Compile(atomic SubScore, practice *SubScore) Breakdown {
	b := Breakdown{DinOficiu: 1}
	b.AtomicPoints = scale(atomic, 6)

	total := b.DinOficiu + b.AtomicPoints
	if practice != nil && practice.Attempted() {
		pts := scale(*practice, 3)
		b.PracticePoints = &pts
		total += pts
	}

	b.Grade = clamp(total, 1, 10)
	return b
}

// scale maps a sub-score onto max points, rounding half away from zero.
func scale(s SubScore, max int) int {
	if s.Total <= 0 {
		return 0
	}
	return int(math.Round(float64(s.Correct) / float64(s.Total) * float64(max)))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
