// Package domain defines the report assembler ports
package domain

import (
	"context"

	"unwrapped/internal/core/analysis"
)

// RunnerPort drives yearly analyses over the archive
type RunnerPort interface {
	// RunYear analyzes one year and exports its report
	RunYear(ctx context.Context, year int) (*analysis.Report, error)
	// RunAll analyzes every year the archive spans, returning the years
	// that produced a report
	RunAll(ctx context.Context) ([]int, error)
}

// CataloguePort reads back previously exported reports
type CataloguePort interface {
	// Years lists the years with an exported report, ascending
	Years(ctx context.Context) ([]int, error)
	// Load returns the raw exported JSON for one year
	Load(ctx context.Context, year int) ([]byte, error)
}
