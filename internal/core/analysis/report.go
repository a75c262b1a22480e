package analysis

import "time"

// MessageType classifies a post into the channel's fixed taxonomy.
// Values are stable; they are the serialized form
type MessageType int

const (
	// MessageTypeGeneral is the fallback bucket
	MessageTypeGeneral MessageType = iota + 1
	// MessageTypeFrequencyTrip marks automatic frequency trip notices (DAF)
	MessageTypeFrequencyTrip
	// MessageTypeCircuitFailure marks circuit or transformer failure notices
	MessageTypeCircuitFailure
	// MessageTypeDailySummary marks the day-after recap posts
	MessageTypeDailySummary
	// MessageTypeBlockInfo marks posts referencing a numbered load-shedding block
	MessageTypeBlockInfo
)

// messageTypeCount is the size of the fixed taxonomy
const messageTypeCount = 5

// blockCount is the number of load-shedding blocks the channel references
const blockCount = 6

// BlockAnalysis accumulates per-block counters inferred from post text
type BlockAnalysis struct {
	Number               int `json:"number"`
	Mentions             int `json:"mentions"`
	DeclaredRecoveries   int `json:"declared_recoveries"`
	DeclaredAffectations int `json:"declared_affectations"`
	DeclaredEmergencies  int `json:"declared_emergencies"`

	// EstimatedAffectedSeconds is reserved; no rule computes it yet
	EstimatedAffectedSeconds int `json:"estimated_affected_seconds"`
}

// FailureEvent is a reconstructed interval between a system-wide
// disconnection announcement and its full-restoration announcement
type FailureEvent struct {
	StartDate       string     `json:"start_date"`
	StartDateParsed *time.Time `json:"start_date_d"`
	StartMessage    *Message   `json:"start_message"`
	EndDate         string     `json:"end_date"`
	EndDateParsed   *time.Time `json:"end_date_d"`
	EndMessage      *Message   `json:"end_message"`

	// EstimatedDurationSeconds is 0 unless both boundary dates parsed
	EstimatedDurationSeconds int `json:"estimated_duration_seconds"`
}

// SENAnalysis summarizes national grid mentions and completed failure events
type SENAnalysis struct {
	Mentions           int            `json:"mentions"`
	TotalFailureEvents int            `json:"total_failure_events"`
	FailureEvents      []FailureEvent `json:"failure_events"`
}

// Report is the aggregate result of one year's analysis.
// It is created fresh per run and carries no identity beyond the year
type Report struct {
	SyncDate time.Time `json:"sync_date"`
	Year     int       `json:"year"`

	FirstMessage    *Message          `json:"first_message"`
	LastMessage     *Message          `json:"last_message"`
	ShortestMessage *MessageWithCount `json:"shortest_message"`
	LongestMessage  *MessageWithCount `json:"longest_message"`

	TotalViews             int `json:"total_views"`
	TotalMessages          int `json:"total_messages"`
	TotalErasedMessages    int `json:"total_erased_messages"`
	TotalReplies           int `json:"total_replies"`
	TotalReactions         int `json:"total_reactions"`
	TotalPositiveReactions int `json:"total_positive_reactions"`
	TotalNegativeReactions int `json:"total_negative_reactions"`

	AvgViews             int `json:"avg_views"`
	AvgReplies           int `json:"avg_replies"`
	AvgReactions         int `json:"avg_reactions"`
	AvgPositiveReactions int `json:"avg_positive_reactions"`
	AvgNegativeReactions int `json:"avg_negative_reactions"`
	AvgTextLength        int `json:"avg_text_length"`

	MonthlyViews     map[int]int `json:"monthly_views"`
	MonthlyReplies   map[int]int `json:"monthly_replies"`
	MonthlyReactions map[int]int `json:"monthly_reactions"`
	MonthlyMessages  map[int]int `json:"monthly_messages"`
	DailyMessages    map[int]int `json:"daily_messages"`
	WeeklyMessages   map[int]int `json:"weekly_messages"`

	DistributionMessage  map[MessageType]int `json:"distribution_message"`
	DistributionReaction OrderedCounts       `json:"distribution_reaction"`

	Top3MostViewedMessages           []MessageWithCount `json:"top3_most_viewed_messages"`
	Top3MostRepliedMessages          []MessageWithCount `json:"top3_most_replied_messages"`
	Top3MostPositiveReactionMessages []MessageWithCount `json:"top3_most_positive_reaction_messages"`
	Top3MostNegativeReactionMessages []MessageWithCount `json:"top3_most_negative_reaction_messages"`
	Top25MostRepeatedWords           OrderedCounts      `json:"top25_most_repeated_words"`

	BlocksAnalysis []BlockAnalysis `json:"blocks_analysis"`
	SENAnalysis    SENAnalysis     `json:"sen_analysis"`
}

// NewReport returns a Report with every bucket zero-initialized, never
// sparse: months 1..12, days 1..366, ISO weeks 1..53, the 5 message
// categories and the 6 blocks all start at zero so the sum invariants hold
// even on short record lists
func NewReport(year int) *Report {
	r := &Report{
		Year:                   year,
		MonthlyViews:           make(map[int]int, 12),
		MonthlyReplies:         make(map[int]int, 12),
		MonthlyReactions:       make(map[int]int, 12),
		MonthlyMessages:        make(map[int]int, 12),
		DailyMessages:          make(map[int]int, 366),
		WeeklyMessages:         make(map[int]int, 53),
		DistributionMessage:    make(map[MessageType]int, messageTypeCount),
		DistributionReaction:   OrderedCounts{},
		Top25MostRepeatedWords: OrderedCounts{},
		BlocksAnalysis:         make([]BlockAnalysis, blockCount),
		SENAnalysis:            SENAnalysis{FailureEvents: []FailureEvent{}},
	}
	for m := 1; m <= 12; m++ {
		r.MonthlyViews[m] = 0
		r.MonthlyReplies[m] = 0
		r.MonthlyReactions[m] = 0
		r.MonthlyMessages[m] = 0
	}
	for d := 1; d <= 366; d++ {
		r.DailyMessages[d] = 0
	}
	for w := 1; w <= 53; w++ {
		r.WeeklyMessages[w] = 0
	}
	for mt := MessageTypeGeneral; mt <= MessageTypeBlockInfo; mt++ {
		r.DistributionMessage[mt] = 0
	}
	for i := range r.BlocksAnalysis {
		r.BlocksAnalysis[i].Number = i + 1
	}
	return r
}
