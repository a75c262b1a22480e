package analysis

import (
	"sort"
	"time"

	perr "unwrapped/internal/platform/errors"
)

// ErrEmptyYear is returned when analysis is invoked on a year with no
// messages; callers are expected to guard with the archive's year range
var ErrEmptyYear = perr.New(perr.ErrorCodeInvalidArgument, "no messages to analyze")

// ErrNoTextMessages is returned when a year has messages but none carry
// text; first/last/shortest/longest selection needs at least one
var ErrNoTextMessages = perr.New(perr.ErrorCodeInvalidArgument, "no text-bearing messages to analyze")

// timeNow is a seam for tests
var timeNow = time.Now

// Analyze runs the full engine over one year's messages and returns a fresh
// Report. The input is re-sorted ascending by local timestamp; every
// downstream component relies on that order, the failure detector
// especially. A run either produces a complete report or fails before
// producing one
func Analyze(year int, msgs []Message) (*Report, error) {
	if len(msgs) == 0 {
		return nil, ErrEmptyYear
	}

	sorted := make([]Message, len(msgs))
	copy(sorted, msgs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DateCuba < sorted[j].DateCuba
	})

	withText := make([]Message, 0, len(sorted))
	for _, m := range sorted {
		if m.Text != "" {
			withText = append(withText, m)
		}
	}
	if len(withText) == 0 {
		return nil, ErrNoTextMessages
	}

	rep := NewReport(year)
	rep.SyncDate = timeNow()

	rep.FirstMessage = &withText[0]
	rep.LastMessage = &withText[len(withText)-1]
	shortest := minBy(withText, TextLength)
	rep.ShortestMessage = &shortest
	longest := maxBy(withText, TextLength)
	rep.LongestMessage = &longest

	aggregate(rep, sorted)

	for _, m := range withText {
		rep.DistributionMessage[Classify(m.Text)]++
	}
	rep.DistributionReaction = reactionDistribution(sorted)

	rep.Top3MostViewedMessages = TopBy(withText, 3, func(m Message) int { return m.Views })
	rep.Top3MostRepliedMessages = TopBy(withText, 3, func(m Message) int { return m.Replies })
	rep.Top3MostPositiveReactionMessages = TopBy(withText, 3, PositiveReactions)
	rep.Top3MostNegativeReactionMessages = TopBy(withText, 3, NegativeReactions)

	rep.Top25MostRepeatedWords = TopWords(sorted, 25)

	rep.BlocksAnalysis = AnalyzeBlocks(sorted)
	rep.SENAnalysis = AnalyzeSEN(sorted)

	return rep, nil
}
