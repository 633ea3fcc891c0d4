package domain

import "time"

// Rating classifies a web vital sample.
type Rating string

const (
	RatingGood             Rating = "good"
	RatingNeedsImprovement Rating = "needs-improvement"
	RatingPoor             Rating = "poor"
)

// WebVital is one sample reported by the browser.
type WebVital struct {
	Name      string
	Value     float64
	Delta     float64
	ID        string
	URL       string
	UserAgent string
	Timestamp time.Time
}
