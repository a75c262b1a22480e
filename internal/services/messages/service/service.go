// Package service provides the message archive service implementation
package service

import (
	"context"
	"fmt"
	"sort"

	"unwrapped/internal/core/analysis"
	"unwrapped/internal/modkit/repokit"
	"unwrapped/internal/services/messages/domain"
	"unwrapped/internal/services/messages/repo"
)

// DefaultChannel is the public username the archive follows
const DefaultChannel = "EmpresaElectricaDeLaHabana"

// Config for the message archive service
type Config struct {
	// Channel is the public channel username permalinks point at;
	// defaults to DefaultChannel when empty
	Channel string
}

// Service implements domain.ReaderPort and domain.WriterPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	Cfg    Config
}

// New constructs a new message archive service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage], cfg Config) *Service {
	if cfg.Channel == "" {
		cfg.Channel = DefaultChannel
	}
	return &Service{DB: db, Binder: b, Cfg: cfg}
}

// Upsert implements domain.WriterPort. The post and its reaction rows
// land in one transaction
func (s *Service) Upsert(ctx context.Context, msg domain.Record) error {
	return s.DB.Tx(ctx, func(q repokit.Queryer) error {
		return s.Binder.Bind(q).Upsert(ctx, msg)
	})
}

// ListByYear implements domain.ReaderPort. Returned records are fully
// defaulted, carry parsed dates where the stored string parses, and are
// sorted by local timestamp
func (s *Service) ListByYear(ctx context.Context, year int) ([]domain.Record, error) {
	var rows []domain.Record
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		rows, err = s.Binder.Bind(q).ListByYear(ctx, year)
		return err
	})
	if err != nil {
		return nil, err
	}

	for i := range rows {
		if rows[i].Reactions == nil {
			rows[i].Reactions = map[string]int{}
		}
		rows[i].DateUTCParsed = analysis.ParseStamp(rows[i].DateUTC)
		rows[i].DateCubaParsed = analysis.ParseStamp(rows[i].DateCuba)
		rows[i].Link = s.Link(rows[i].ID)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DateCuba < rows[j].DateCuba
	})
	return rows, nil
}

// YearRange implements domain.ReaderPort
func (s *Service) YearRange(ctx context.Context) (domain.YearSpan, error) {
	var span domain.YearSpan
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		span, err = s.Binder.Bind(q).YearRange(ctx)
		return err
	})
	return span, err
}

// Link builds the public permalink for a post id
func (s *Service) Link(id int) string {
	return fmt.Sprintf("https://t.me/%s/%d", s.Cfg.Channel, id)
}
