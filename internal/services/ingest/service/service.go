// Package service implements channel-export ingestion
package service

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"unwrapped/internal/core/analysis"
	perr "unwrapped/internal/platform/errors"
	"unwrapped/internal/platform/logger"
	ptime "unwrapped/internal/platform/time"
	"unwrapped/internal/services/ingest/domain"
	msgdom "unwrapped/internal/services/messages/domain"
)

// Config for the ingest service
type Config struct {
	// Timezone is the IANA zone local timestamps are rendered in;
	// defaults to America/Havana
	Timezone string
}

// Service implements domain.RunnerPort
type Service struct {
	Writer msgdom.WriterPort
	Cfg    Config

	loc      *time.Location
	validate *validator.Validate
}

// New constructs the ingest service. It panics on a nil writer and
// falls back to fixed UTC-5 when the zone database is unavailable
func New(w msgdom.WriterPort, cfg Config) *Service {
	if w == nil {
		panic("ingest.Service requires a non nil WriterPort")
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "America/Havana"
	}
	return &Service{
		Writer:   w,
		Cfg:      cfg,
		loc:      ptime.Location(cfg.Timezone),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Run implements domain.RunnerPort. It streams the export's messages
// array so year-scale archives never sit in memory whole
func (s *Service) Run(ctx context.Context, path string) (domain.Stats, error) {
	log := logger.C(ctx)

	f, err := os.Open(path)
	if err != nil {
		return domain.Stats{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "open export %q", path)
	}
	defer func() { _ = f.Close() }()

	dec := json.NewDecoder(f)
	if err := seekMessages(dec); err != nil {
		return domain.Stats{}, perr.Wrap(err, perr.ErrorCodeJSON, "export has no messages array")
	}

	var stats domain.Stats
	for dec.More() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		var em domain.ExportMessage
		if err := dec.Decode(&em); err != nil {
			return stats, perr.Wrap(err, perr.ErrorCodeJSON, "decode export message")
		}
		stats.Seen++

		if em.Type != "message" {
			stats.Skipped++
			continue
		}
		if err := s.validate.Struct(em); err != nil {
			stats.Invalid++
			log.Warn().Int("id", em.ID).Err(err).Msg("skipping invalid export record")
			continue
		}

		rec, err := s.record(em)
		if err != nil {
			stats.Invalid++
			log.Warn().Int("id", em.ID).Err(err).Msg("skipping unconvertible export record")
			continue
		}
		if err := s.Writer.Upsert(ctx, rec); err != nil {
			return stats, perr.Wrapf(err, perr.ErrorCodeDB, "upsert message %d", em.ID)
		}
		stats.Stored++
	}

	log.Info().
		Int("seen", stats.Seen).
		Int("stored", stats.Stored).
		Int("skipped", stats.Skipped).
		Int("invalid", stats.Invalid).
		Msg("ingest run finished")
	return stats, nil
}

// record converts a validated export entry into an archive record
func (s *Service) record(em domain.ExportMessage) (msgdom.Record, error) {
	unix, err := strconv.ParseInt(em.DateUnix, 10, 64)
	if err != nil {
		return msgdom.Record{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "date_unixtime %q", em.DateUnix)
	}
	at := time.Unix(unix, 0)

	reactions := map[string]int{}
	for _, r := range em.Reactions {
		// custom emoji packs have no unicode form to key on
		if r.Emoji == "" {
			continue
		}
		reactions[r.Emoji] += r.Count
	}

	return msgdom.Record{
		ID:        em.ID,
		DateUTC:   at.UTC().Format(analysis.TimeLayout),
		DateCuba:  at.In(s.loc).Format(analysis.TimeLayout),
		Views:     em.Views,
		Replies:   em.Replies,
		Text:      FlattenText(em),
		Reactions: reactions,
	}, nil
}

// seekMessages advances dec to just inside the top-level messages array
func seekMessages(dec *json.Decoder) error {
	if _, err := dec.Token(); err != nil { // opening brace
		return err
	}
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return io.ErrUnexpectedEOF
		}
		if key == "messages" {
			_, err := dec.Token() // opening bracket
			return err
		}
		// skip this field's value wholesale
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return err
		}
	}
}

// FlattenText joins a post's text runs into one plain string. Exports
// carry both a legacy text field (string, or an array mixing strings and
// entity objects) and a text_entities array; the entities win when present
func FlattenText(em domain.ExportMessage) string {
	if len(em.TextEntities) > 0 {
		out := ""
		for _, e := range em.TextEntities {
			out += e.Text
		}
		return out
	}
	if len(em.Text) == 0 {
		return ""
	}

	var plain string
	if err := json.Unmarshal(em.Text, &plain); err == nil {
		return plain
	}

	var runs []json.RawMessage
	if err := json.Unmarshal(em.Text, &runs); err != nil {
		return ""
	}
	out := ""
	for _, raw := range runs {
		var str string
		if err := json.Unmarshal(raw, &str); err == nil {
			out += str
			continue
		}
		var ent domain.TextEntity
		if err := json.Unmarshal(raw, &ent); err == nil {
			out += ent.Text
		}
	}
	return out
}
