package domain

import "context"

// ReaderPort reads archived messages back out, fully defaulted: strings
// never absent, reactions never nil, parsed dates and permalinks filled
type ReaderPort interface {
	ListByYear(ctx context.Context, year int) ([]Record, error)
	YearRange(ctx context.Context) (YearSpan, error)
}

// WriterPort stores channel posts, replacing on conflict
type WriterPort interface {
	Upsert(ctx context.Context, msg Record) error
}
