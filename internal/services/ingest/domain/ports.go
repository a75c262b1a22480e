package domain

import "context"

// Stats summarizes one ingest run
type Stats struct {
	Seen    int `json:"seen"`
	Stored  int `json:"stored"`
	Skipped int `json:"skipped"`
	Invalid int `json:"invalid"`
}

// RunnerPort ingests a channel export file into the archive
type RunnerPort interface {
	Run(ctx context.Context, path string) (Stats, error)
}
