package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"
)

// sqliteAdapter wraps *sql.DB and implements RowQuerier + TxRunner
type sqliteAdapter struct {
	db     *sql.DB
	parent *Store
	logSQL bool
	slowMs int
}

// openSQLite opens (and pings) the database, enabling WAL for file paths.
// An in-memory path gets shared cache and a single connection so every
// handle in the pool sees the same database
func openSQLite(ctx context.Context, cfg Config, parent *Store) (*sqliteAdapter, error) {
	connStr := cfg.Path
	mem := cfg.Path == ":memory:"
	if mem {
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, err
	}
	if mem {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if !mem {
		if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, err
	}

	slow := cfg.SlowMs
	if slow == 0 {
		slow = 500
	}
	return &sqliteAdapter{db: db, parent: parent, logSQL: cfg.LogSQL, slowMs: slow}, nil
}

func (a *sqliteAdapter) Ping(ctx context.Context) error {
	if a == nil {
		return errors.New("sqlite: nil adapter")
	}
	return a.db.PingContext(ctx)
}

func (a *sqliteAdapter) Close() error { return a.db.Close() }

func (a *sqliteAdapter) Exec(ctx context.Context, query string, args ...any) (CommandTag, error) {
	start := time.Now()
	res, err := a.db.ExecContext(ctx, query, args...)
	a.emit(query, start, err)
	if err != nil {
		return nil, err
	}
	return tag{res}, nil
}

func (a *sqliteAdapter) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := a.db.QueryContext(ctx, query, args...)
	a.emit(query, start, err)
	if err != nil {
		return nil, err
	}
	return rows{r: rs}, nil
}

func (a *sqliteAdapter) QueryRow(ctx context.Context, query string, args ...any) Row {
	start := time.Now()
	r := a.db.QueryRowContext(ctx, query, args...)
	a.emit(query, start, nil)
	return r
}

func (a *sqliteAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	q := txQuerier{tx: tx, a: a}
	if err := fn(q); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// emit reports the statement to the store logger when tracing is on
func (a *sqliteAdapter) emit(query string, start time.Time, err error) {
	if a == nil || a.parent == nil {
		return
	}
	elapsed := time.Since(start)
	slow := a.slowMs >= 0 && elapsed >= time.Duration(a.slowMs)*time.Millisecond
	if !a.logSQL && !slow && err == nil {
		return
	}
	evt := a.parent.Log.Debug()
	if slow {
		evt = a.parent.Log.Warn().Bool("slow", true)
	}
	if err != nil {
		evt = a.parent.Log.Error().Err(err)
	}
	evt.Str("sql", query).Dur("elapsed", elapsed).Msg("sqlite query")
}

// adapters for database/sql to our tiny Rows/CommandTag

type rows struct{ r *sql.Rows }

func (x rows) Next() bool            { return x.r.Next() }
func (x rows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x rows) Err() error            { return x.r.Err() }
func (x rows) Close()                { _ = x.r.Close() }

type tag struct{ res sql.Result }

func (t tag) RowsAffected() int64 {
	n, err := t.res.RowsAffected()
	if err != nil {
		return 0
	}
	return n
}

// txQuerier satisfies RowQuerier inside a transaction
type txQuerier struct {
	tx *sql.Tx
	a  *sqliteAdapter
}

func (t txQuerier) Exec(ctx context.Context, query string, args ...any) (CommandTag, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.a.emit(query, start, err)
	if err != nil {
		return nil, err
	}
	return tag{res}, nil
}

func (t txQuerier) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := t.tx.QueryContext(ctx, query, args...)
	t.a.emit(query, start, err)
	if err != nil {
		return nil, err
	}
	return rows{r: rs}, nil
}

func (t txQuerier) QueryRow(ctx context.Context, query string, args ...any) Row {
	return t.tx.QueryRowContext(ctx, query, args...)
}
