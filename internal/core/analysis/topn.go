package analysis

import "sort"

// Metric derives one scalar from a message
type Metric func(Message) int

// TopBy returns the n messages with the highest metric, descending. The
// sort is stable: equal metrics keep their original sequence order. Each
// result carries its metric value as Count
func TopBy(msgs []Message, n int, metric Metric) []MessageWithCount {
	scored := make([]MessageWithCount, len(msgs))
	for i, m := range msgs {
		scored[i] = WithCount(m, metric(m))
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Count > scored[j].Count
	})
	if n > 0 && len(scored) > n {
		scored = scored[:n]
	}
	return scored
}

// minBy returns the first message with the smallest metric
func minBy(msgs []Message, metric Metric) MessageWithCount {
	best := WithCount(msgs[0], metric(msgs[0]))
	for _, m := range msgs[1:] {
		if v := metric(m); v < best.Count {
			best = WithCount(m, v)
		}
	}
	return best
}

// maxBy returns the first message with the largest metric
func maxBy(msgs []Message, metric Metric) MessageWithCount {
	best := WithCount(msgs[0], metric(msgs[0]))
	for _, m := range msgs[1:] {
		if v := metric(m); v > best.Count {
			best = WithCount(m, v)
		}
	}
	return best
}
