// Package store provides a unified seam over the archive's sqlite database
package store

import (
	"context"
	"errors"

	"unwrapped/internal/platform/logger"
)

// Store is the facade handed to service modules
// zero value is safe but does nothing
type Store struct {
	// Log is the logger used by the adapter for slow-query reporting
	Log logger.Logger

	// DB is the sqlite seam, nil when not opened
	DB TxRunner
}

// Row exposes the minimal scan contract a single row needs
type Row interface {
	Scan(dest ...any) error
}

// Rows exposes the minimal iteration and scan for a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// CommandTag is a tiny interface to inspect command results
type CommandTag interface {
	RowsAffected() int64
}

// RowQuerier is the read and write surface repos use for sql
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner wraps transaction execution around a function
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Config selects the database location
type Config struct {
	// Path is a file path or ":memory:" for tests
	Path string
	// LogSQL enables per-statement debug logging
	LogSQL bool
	// SlowMs marks statements at or above this threshold as slow, -1 disables
	SlowMs int
}

// Option mutates the Store during Open
type Option func(*Store) error

// WithLogger attaches a logger used for sql tracing
func WithLogger(l logger.Logger) Option {
	return func(s *Store) error {
		s.Log = l
		return nil
	}
}

// Open constructs a Store backed by sqlite at cfg.Path
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	if cfg.Path == "" {
		return nil, errors.New("store: empty sqlite path")
	}

	db, err := openSQLite(ctx, cfg, s)
	if err != nil {
		return nil, err
	}
	s.DB = db
	return s, nil
}

// Guard verifies the configured seam answers a ping
func (s *Store) Guard(ctx context.Context) error {
	if s == nil || s.DB == nil {
		return errors.New("nil store")
	}
	if p, ok := any(s.DB).(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// Close releases the underlying database
func (s *Store) Close(context.Context) error {
	if s == nil || s.DB == nil {
		return nil
	}
	if c, ok := any(s.DB).(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
