package domain

import "time"

// MatchResult is the outcome of one similarity scan. A no-match result
// (Matched false, Asana nil) is a valid terminal outcome, not an error;
// Score still carries the best similarity seen so near-misses stay visible.
type MatchResult struct {
	Matched  bool
	Asana    *Asana
	Score    float64
	Duration time.Duration
}
