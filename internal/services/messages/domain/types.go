// Package domain defines the message archive types and ports
package domain

import "unwrapped/internal/core/analysis"

// Record is an archived channel post as stored, before the service
// applies defaulting and derived fields
type Record = analysis.Message

// YearSpan is the inclusive range of years present in the archive,
// taken from the local timestamps
type YearSpan struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Empty reports whether the archive held no messages at all
func (s YearSpan) Empty() bool { return s.Min == 0 && s.Max == 0 }

// Years expands the span into the explicit list of years
func (s YearSpan) Years() []int {
	if s.Empty() || s.Max < s.Min {
		return nil
	}
	out := make([]int, 0, s.Max-s.Min+1)
	for y := s.Min; y <= s.Max; y++ {
		out = append(out, y)
	}
	return out
}
