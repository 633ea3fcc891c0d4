package service

import "github.com/hellostack/portal/internal/core/domain"

// vitalThresholds holds the upper bounds of "good" and "needs-improvement"
// per metric. Values are milliseconds except CLS, which is unitless.
var vitalThresholds = map[string][2]float64{
	"LCP":  {2500, 4000},
	"INP":  {200, 500},
	"CLS":  {0.1, 0.25},
	"TTFB": {600, 1200},
	"FCP":  {1800, 3000},
}

// KnownVital reports whether name has thresholds.
func KnownVital(name string) bool {
	_, ok := vitalThresholds[name]
	return ok
}

// Rate classifies value for the named metric. Unknown metrics rate as
// needs-improvement.
func Rate(name string, value float64) domain.Rating {
	t, ok := vitalThresholds[name]
	if !ok {
		return domain.RatingNeedsImprovement
	}
	switch {
	case value <= t[0]:
		return domain.RatingGood
	case value <= t[1]:
		return domain.RatingNeedsImprovement
	default:
		return domain.RatingPoor
	}
}
