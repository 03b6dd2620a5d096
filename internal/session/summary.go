package session

import "math"

// Tier is the results-screen message band.
type Tier int

const (
	TierKeepPracticing Tier = iota
	TierGoodJob
	TierExcellent
)

// Message is the headline shown for the tier.
func (t Tier) Message() string {
	switch t {
	case TierExcellent:
		return "Excellent work!"
	case TierGoodJob:
		return "Good job!"
	default:
		return "Keep practicing!"
	}
}

// Summary is the results-screen view of a Result.
type Summary struct {
	Result
	Percentage int
	Tier       Tier
}

// Summarize rounds the score to a percentage and picks the tier:
// above 80 is excellent, above 50 good, anything else keep practicing.
func Summarize(r Result) Summary {
	pct := 0
	if r.Total > 0 {
		pct = int(math.Round(float64(r.Score) / float64(r.Total) * 100))
	}

	tier := TierKeepPracticing
	switch {
	case pct > 80:
		tier = TierExcellent
	case pct > 50:
		tier = TierGoodJob
	}
	return Summary{Result: r, Percentage: pct, Tier: tier}
}
