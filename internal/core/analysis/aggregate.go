package analysis

import (
	"math"
	"sort"
)

// roundDiv divides and rounds half to even, matching the reference
// implementation's rounding so pinned integer expectations stay stable
func roundDiv(total, n int) int {
	return int(math.RoundToEven(float64(total) / float64(n)))
}

// aggregate fills totals, averages and date rollups on rep. msgs is the
// full year (empty-text posts included, they still carry views and
// reactions); len(msgs) > 0 is the caller's precondition
func aggregate(rep *Report, msgs []Message) {
	n := len(msgs)
	rep.TotalMessages = n

	var views, replies, reactions, positive, negative, textLen int
	for _, m := range msgs {
		views += m.Views
		replies += m.Replies
		reactions += ReactionTotal(m)
		positive += PositiveReactions(m)
		negative += NegativeReactions(m)
		textLen += TextLength(m)
	}
	rep.TotalViews = views
	rep.TotalReplies = replies
	rep.TotalReactions = reactions
	rep.TotalPositiveReactions = positive
	rep.TotalNegativeReactions = negative

	// the id gap between the year's first and last post approximates
	// deletions; ids are assumed contiguous per channel, and negative or
	// zero results pass through unclamped
	rep.TotalErasedMessages = (msgs[n-1].ID - msgs[0].ID + 1) - n

	rep.AvgViews = roundDiv(views, n)
	rep.AvgReplies = roundDiv(replies, n)
	rep.AvgReactions = roundDiv(reactions, n)
	rep.AvgPositiveReactions = roundDiv(positive, n)
	rep.AvgNegativeReactions = roundDiv(negative, n)
	rep.AvgTextLength = roundDiv(textLen, n)

	// date rollups only see messages whose local date parsed; the rest
	// silently do not contribute
	for _, m := range msgs {
		if m.DateCubaParsed == nil {
			continue
		}
		month := int(m.DateCubaParsed.Month())
		rep.MonthlyMessages[month]++
		rep.MonthlyViews[month] += m.Views
		rep.MonthlyReplies[month] += m.Replies
		rep.MonthlyReactions[month] += ReactionTotal(m)

		rep.DailyMessages[m.DateCubaParsed.YearDay()]++

		_, week := m.DateCubaParsed.ISOWeek()
		rep.WeeklyMessages[week]++
	}
}

// reactionDistribution counts every reaction emoji across the year,
// sorted count-descending with first-seen tie-break. Per-message emoji
// keys are visited in sorted order so the tie-break is deterministic
func reactionDistribution(msgs []Message) OrderedCounts {
	c := newCounter()
	for _, m := range msgs {
		emojis := make([]string, 0, len(m.Reactions))
		for e := range m.Reactions {
			emojis = append(emojis, e)
		}
		sort.Strings(emojis)
		for _, e := range emojis {
			c.add(e, m.Reactions[e])
		}
	}
	return c.top(0)
}
