package attempts

import "context"

// Reward multiplier tiers, keyed by average attempts per answered question.
// Boundary values round to the better tier (the comparison is ≤, not <).
const (
	multiplierFull    = 1.0
	multiplierHalf    = 0.5
	multiplierQuarter = 0.25

	fullTierMaxAvg = 2.0
	halfTierMaxAvg = 3.0
)

// XPMultiplier maps a lesson's average attempts-per-question to a reward
// scalar for the gamification layer: ≤2 average → 1.0, ≤3 → 0.5, otherwise
// 0.25. A lesson with no answered questions earns the full multiplier.
func (g *Gate) XPMultiplier(ctx context.Context, lessonID string) (float64, error) {
	records, err := g.Lesson(ctx, lessonID)
	if err != nil {
		return 0, err
	}

	total, answered := 0, 0
	for _, rec := range records {
		if rec.Attempts == 0 {
			continue
		}
		answered++
		total += rec.Attempts
	}
	if answered == 0 {
		return multiplierFull, nil
	}

	avg := float64(total) / float64(answered)
	switch {
	case avg <= fullTierMaxAvg:
		return multiplierFull, nil
	case avg <= halfTierMaxAvg:
		return multiplierHalf, nil
	default:
		return multiplierQuarter, nil
	}
}
