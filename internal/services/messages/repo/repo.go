// Package repo provides the sqlite message archive repository
package repo

import (
	"context"
	"fmt"

	"unwrapped/internal/modkit/repokit"
	"unwrapped/internal/services/messages/domain"
)

type (
	lite   struct{ q repokit.Queryer }
	binder struct{}
)

// NewSQLite constructs a new repo binder for sqlite
func NewSQLite() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &lite{q: q} }

// Storage defines the message archive repository
type Storage interface {
	Upsert(ctx context.Context, msg domain.Record) error
	ListByYear(ctx context.Context, year int) ([]domain.Record, error)
	YearRange(ctx context.Context) (domain.YearSpan, error)
}

// schema mirrors the archive layout: one row per post plus a reaction
// row per emoji. Timestamps are stored as "YYYY-MM-DD HH:MM:SS" text so
// lexicographic order is chronological order
const schema = `
CREATE TABLE IF NOT EXISTS messages (
	id INTEGER PRIMARY KEY,
	date_utc TEXT,
	date_cuba TEXT,
	views INTEGER,
	replies INTEGER,
	text TEXT
);
CREATE TABLE IF NOT EXISTS message_reactions (
	message_id INTEGER,
	emoji TEXT,
	count INTEGER,
	PRIMARY KEY (message_id, emoji),
	FOREIGN KEY (message_id) REFERENCES messages (id)
);
`

// EnsureSchema creates the archive tables when missing
func EnsureSchema(ctx context.Context, q repokit.Queryer) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("messages schema: %w", err)
	}
	return nil
}

// Upsert implements Storage. The caller is expected to run it inside a
// transaction so the row and its reactions land together
func (s *lite) Upsert(ctx context.Context, msg domain.Record) error {
	_, err := s.q.Exec(ctx, `
		INSERT INTO messages (id, date_utc, date_cuba, views, replies, text)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			date_utc = excluded.date_utc,
			date_cuba = excluded.date_cuba,
			views = excluded.views,
			replies = excluded.replies,
			text = excluded.text`,
		msg.ID, msg.DateUTC, msg.DateCuba, msg.Views, msg.Replies, msg.Text,
	)
	if err != nil {
		return err
	}

	// replace the reaction set wholesale; counts only ever move forward
	// on the channel but emojis can disappear between scrapes
	if _, err := s.q.Exec(ctx,
		`DELETE FROM message_reactions WHERE message_id = ?`, msg.ID,
	); err != nil {
		return err
	}
	for emoji, count := range msg.Reactions {
		if _, err := s.q.Exec(ctx, `
			INSERT INTO message_reactions (message_id, emoji, count)
			VALUES (?, ?, ?)
			ON CONFLICT (message_id, emoji) DO UPDATE SET count = excluded.count`,
			msg.ID, emoji, count,
		); err != nil {
			return err
		}
	}
	return nil
}

// ListByYear implements Storage. Rows come back in id order; sorting by
// local date is the service's concern
func (s *lite) ListByYear(ctx context.Context, year int) ([]domain.Record, error) {
	pattern := fmt.Sprintf("%d%%", year)

	rows, err := s.q.Query(ctx, `
		SELECT id,
			COALESCE(date_utc, ''),
			COALESCE(date_cuba, ''),
			COALESCE(views, 0),
			COALESCE(replies, 0),
			COALESCE(text, '')
		FROM messages
		WHERE date_cuba LIKE ?
		ORDER BY id`, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Record
	index := map[int]int{}
	for rows.Next() {
		var m domain.Record
		if err := rows.Scan(&m.ID, &m.DateUTC, &m.DateCuba, &m.Views, &m.Replies, &m.Text); err != nil {
			return nil, err
		}
		m.Reactions = map[string]int{}
		index[m.ID] = len(out)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rrows, err := s.q.Query(ctx, `
		SELECT message_id, emoji, count
		FROM message_reactions
		WHERE message_id IN (SELECT id FROM messages WHERE date_cuba LIKE ?)`, pattern)
	if err != nil {
		return nil, err
	}
	defer rrows.Close()

	for rrows.Next() {
		var (
			id    int
			emoji string
			count int
		)
		if err := rrows.Scan(&id, &emoji, &count); err != nil {
			return nil, err
		}
		if i, ok := index[id]; ok {
			out[i].Reactions[emoji] = count
		}
	}
	return out, rrows.Err()
}

// YearRange implements Storage
func (s *lite) YearRange(ctx context.Context) (domain.YearSpan, error) {
	var span domain.YearSpan
	err := s.q.QueryRow(ctx, `
		SELECT
			COALESCE(MIN(CAST(substr(date_cuba, 1, 4) AS INTEGER)), 0),
			COALESCE(MAX(CAST(substr(date_cuba, 1, 4) AS INTEGER)), 0)
		FROM messages
		WHERE date_cuba IS NOT NULL AND date_cuba != ''`,
	).Scan(&span.Min, &span.Max)
	return span, err
}
