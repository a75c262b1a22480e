// Package service assembles yearly reports and manages their exports
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"unwrapped/internal/core/analysis"
	perr "unwrapped/internal/platform/errors"
	"unwrapped/internal/platform/logger"
	ptime "unwrapped/internal/platform/time"
	msgdom "unwrapped/internal/services/messages/domain"
	"unwrapped/internal/services/report/domain"
)

// Config for the report service
type Config struct {
	// ExportDir is where report JSON files land
	ExportDir string
	// Timezone is the IANA zone the sync date is stamped in;
	// defaults to America/Havana
	Timezone string
}

var (
	_ domain.RunnerPort    = (*Service)(nil)
	_ domain.CataloguePort = (*Service)(nil)
)

// Service implements domain.RunnerPort and domain.CataloguePort
type Service struct {
	Reader msgdom.ReaderPort
	Cfg    Config

	loc *time.Location
}

// New constructs the report service. It panics on a nil reader
func New(r msgdom.ReaderPort, cfg Config) *Service {
	if r == nil {
		panic("report.Service requires a non nil ReaderPort")
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = "."
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "America/Havana"
	}
	return &Service{Reader: r, Cfg: cfg, loc: ptime.Location(cfg.Timezone)}
}

// RunYear implements domain.RunnerPort
func (s *Service) RunYear(ctx context.Context, year int) (*analysis.Report, error) {
	run := uuid.NewString()
	log := logger.C(ctx).With().Str("run_id", run).Int("year", year).Logger()

	msgs, err := s.Reader.ListByYear(ctx, year)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDB, "list messages for %d", year)
	}
	log.Info().Int("messages", len(msgs)).Msg("starting analysis")

	rep, err := analysis.Analyze(year, msgs)
	if err != nil {
		return nil, err
	}
	rep.SyncDate = rep.SyncDate.In(s.loc)

	if err := s.export(rep); err != nil {
		return nil, err
	}
	log.Info().Str("file", s.exportPath(year)).Msg("report exported")
	return rep, nil
}

// RunAll implements domain.RunnerPort. Years that fail their analysis
// precondition (nothing to analyze) are skipped, not fatal
func (s *Service) RunAll(ctx context.Context) ([]int, error) {
	span, err := s.Reader.YearRange(ctx)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "archive year range")
	}

	var done []int
	for _, year := range span.Years() {
		if _, err := s.RunYear(ctx, year); err != nil {
			if perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
				logger.C(ctx).Warn().Int("year", year).Err(err).Msg("skipping year")
				continue
			}
			return done, err
		}
		done = append(done, year)
	}
	return done, nil
}

// Years implements domain.CataloguePort
func (s *Service) Years(ctx context.Context) ([]int, error) {
	entries, err := os.ReadDir(s.Cfg.ExportDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "read export dir")
	}

	var years []int
	for _, e := range entries {
		var year int
		if n, err := fmt.Sscanf(e.Name(), exportPattern, &year); n == 1 && err == nil {
			years = append(years, year)
		}
	}
	sort.Ints(years)
	return years, nil
}

// Load implements domain.CataloguePort
func (s *Service) Load(_ context.Context, year int) ([]byte, error) {
	b, err := os.ReadFile(s.exportPath(year))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, perr.Newf(perr.ErrorCodeNotFound, "no report for %d", year)
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "read report for %d", year)
	}
	return b, nil
}

const exportPattern = "analysis_data_%d.json"

func (s *Service) exportPath(year int) string {
	return filepath.Join(s.Cfg.ExportDir, fmt.Sprintf(exportPattern, year))
}

// export writes the report as indented UTF-8 JSON with emoji and
// accents kept literal
func (s *Service) export(rep *analysis.Report) error {
	if err := os.MkdirAll(s.Cfg.ExportDir, 0o755); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "create export dir")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(rep); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "encode report for %d", rep.Year)
	}

	if err := os.WriteFile(s.exportPath(rep.Year), buf.Bytes(), 0o644); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "write report for %d", rep.Year)
	}
	return nil
}
