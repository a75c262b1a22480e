// Package analysis implements the yearly analysis engine over archived
// channel messages: aggregate statistics, message classification, per-block
// counters, national-grid failure event reconstruction, word frequency and
// top-N selection. Everything here is pure in-memory computation; storage
// and transport live in the service layer
package analysis

import (
	"time"
	"unicode/utf8"
)

// TimeLayout is the display format archive timestamps are stored in.
// Lexicographic order on these strings is chronological order
const TimeLayout = "2006-01-02 15:04:05"

// ParseStamp parses an archive timestamp, nil when it does not parse
func ParseStamp(s string) *time.Time {
	ts, err := time.Parse(TimeLayout, s)
	if err != nil {
		return nil
	}
	return &ts
}

// Message is one archived channel post with engagement metrics.
// Fields are always populated (empty string / zero / empty map) except the
// parsed date fields, which stay nil when the display string did not parse
type Message struct {
	ID             int            `json:"id"`
	Link           string         `json:"link"`
	DateUTC        string         `json:"date_utc"`
	DateUTCParsed  *time.Time     `json:"date_utc_d"`
	DateCuba       string         `json:"date_cuba"`
	DateCubaParsed *time.Time     `json:"date_cuba_d"`
	Reactions      map[string]int `json:"reactions"`
	Views          int            `json:"views"`
	Replies        int            `json:"replies"`
	Text           string         `json:"text"`
}

// MessageWithCount annotates a Message with one derived metric.
// The source Message is never mutated
type MessageWithCount struct {
	Message
	Count int `json:"count"`
}

// WithCount pairs a copy of m with a metric value
func WithCount(m Message, count int) MessageWithCount {
	return MessageWithCount{Message: m, Count: count}
}

// TextLength counts characters, not bytes; accented Spanish text makes the
// distinction matter
func TextLength(m Message) int { return utf8.RuneCountInString(m.Text) }

// positive and negative reaction emoji, fixed process-wide sets
var (
	positiveEmojis = map[string]struct{}{
		"👍": {}, "👏": {}, "😁": {}, "❤": {}, "🙏": {},
	}
	negativeEmojis = map[string]struct{}{
		"👎": {}, "🤬": {}, "😱": {}, "😢": {},
	}
)

// ReactionTotal sums every reaction count on m
func ReactionTotal(m Message) int {
	total := 0
	for _, c := range m.Reactions {
		total += c
	}
	return total
}

// PositiveReactions sums counts for the positive emoji set
func PositiveReactions(m Message) int {
	total := 0
	for emoji, c := range m.Reactions {
		if _, ok := positiveEmojis[emoji]; ok {
			total += c
		}
	}
	return total
}

// NegativeReactions sums counts for the negative emoji set
func NegativeReactions(m Message) int {
	total := 0
	for emoji, c := range m.Reactions {
		if _, ok := negativeEmojis[emoji]; ok {
			total += c
		}
	}
	return total
}
