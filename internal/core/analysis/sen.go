package analysis

import "strings"

// Trigger phrases for system-wide failure reconstruction. The start phrase
// is the channel's disconnection announcement; the end phrase appears in
// the "generation restored to 100 %" posts
const (
	startFailureTrigger = "desconexión del sistema electroenergético nacional"
	endFailureTrigger   = "100 %"
)

// senPatterns mark any mention of the national grid, independent of the
// failure state machine
var senPatterns = []string{
	"sen",
	"sistema electrico nacional",
	"sistema eléctrico nacional",
	"sistema electroenergetico nacional",
	"sistema electroenergético nacional",
}

// senState is the failure detector's explicit state
type senState int

const (
	// senIdle scans for a start trigger
	senIdle senState = iota
	// senOpen scans for an end trigger
	senOpen
)

// senDetector reconstructs failure intervals from the date-ordered message
// sequence. It must be driven strictly sequentially; state depends on order
type senDetector struct {
	state    senState
	current  FailureEvent
	events   []FailureEvent
	mentions int
}

// observe advances the machine by one message. Empty text is scanned like
// any other text and simply matches nothing
func (d *senDetector) observe(m Message) {
	t := strings.ToLower(m.Text)

	for _, p := range senPatterns {
		if strings.Contains(t, p) {
			d.mentions++
			break
		}
	}

	switch d.state {
	case senIdle:
		if strings.Contains(t, startFailureTrigger) {
			msg := m
			d.current = FailureEvent{
				StartDate:       m.DateCuba,
				StartDateParsed: m.DateCubaParsed,
				StartMessage:    &msg,
			}
			d.state = senOpen
		}
	case senOpen:
		// a second start trigger while open is ignored; events never nest
		if strings.Contains(t, endFailureTrigger) {
			msg := m
			d.current.EndDate = m.DateCuba
			d.current.EndDateParsed = m.DateCubaParsed
			d.current.EndMessage = &msg
			if d.current.StartDateParsed != nil && d.current.EndDateParsed != nil {
				duration := d.current.EndDateParsed.Sub(*d.current.StartDateParsed)
				d.current.EstimatedDurationSeconds = int(duration.Seconds())
			}
			d.events = append(d.events, d.current)
			d.current = FailureEvent{}
			d.state = senIdle
		}
	}
}

// finish closes the scan. An event still open when the sequence ends is
// dropped, not emitted as a partial event; the channel's own data ends
// mid-outage at year boundaries and a half interval would skew durations
func (d *senDetector) finish() SENAnalysis {
	if d.state == senOpen {
		d.current = FailureEvent{}
		d.state = senIdle
	}
	events := d.events
	if events == nil {
		events = []FailureEvent{}
	}
	return SENAnalysis{
		Mentions:           d.mentions,
		TotalFailureEvents: len(events),
		FailureEvents:      events,
	}
}

// AnalyzeSEN runs the failure detector over the date-sorted message list
func AnalyzeSEN(msgs []Message) SENAnalysis {
	var d senDetector
	for _, m := range msgs {
		d.observe(m)
	}
	return d.finish()
}
