package service

import (
	"context"
	"testing"

	"unwrapped/internal/core/analysis"
	"unwrapped/internal/platform/store"
	"unwrapped/internal/services/messages/domain"
	"unwrapped/internal/services/messages/repo"
)

func openSvc(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	s, err := store.Open(ctx, store.Config{Path: ":memory:", SlowMs: -1})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(ctx) })

	if err := repo.EnsureSchema(ctx, s.DB); err != nil {
		t.Fatalf("schema: %v", err)
	}
	// shared-cache memory db persists across tests in this package
	for _, stmt := range []string{`DELETE FROM message_reactions`, `DELETE FROM messages`} {
		if _, err := s.DB.Exec(ctx, stmt); err != nil {
			t.Fatalf("reset: %v", err)
		}
	}
	return New(s.DB, repo.NewSQLite(), Config{Channel: "TestChannel"})
}

func TestUpsertAndListByYear(t *testing.T) {
	ctx := context.Background()
	svc := openSvc(t)

	msgs := []domain.Record{
		{
			ID: 2, DateUTC: "2024-03-01 13:00:00", DateCuba: "2024-03-01 08:00:00",
			Views: 10, Replies: 1, Text: "Bloque 2 afectado",
			Reactions: map[string]int{"👍": 3, "😢": 1},
		},
		{
			ID: 1, DateUTC: "2024-01-01 13:00:00", DateCuba: "2024-01-01 08:00:00",
			Views: 5, Text: "Buenos días",
		},
		{
			ID: 3, DateUTC: "2023-12-31 23:30:00", DateCuba: "2023-12-31 18:30:00",
			Text: "mensaje del año anterior",
		},
	}
	for _, m := range msgs {
		if err := svc.Upsert(ctx, m); err != nil {
			t.Fatalf("upsert %d: %v", m.ID, err)
		}
	}

	got, err := svc.ListByYear(ctx, 2024)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// sorted by local timestamp, not id order or insert order
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("order = %d,%d, want 1,2", got[0].ID, got[1].ID)
	}

	m := got[1]
	if m.Link != "https://t.me/TestChannel/2" {
		t.Fatalf("link = %q", m.Link)
	}
	if m.DateCubaParsed == nil || m.DateCubaParsed.Format(analysis.TimeLayout) != m.DateCuba {
		t.Fatalf("parsed date = %v for %q", m.DateCubaParsed, m.DateCuba)
	}
	if m.Reactions["👍"] != 3 || m.Reactions["😢"] != 1 {
		t.Fatalf("reactions = %v", m.Reactions)
	}
	if got[0].Reactions == nil || len(got[0].Reactions) != 0 {
		t.Fatalf("reactions must default to empty map, got %v", got[0].Reactions)
	}
}

func TestUpsertReplacesRowAndReactions(t *testing.T) {
	ctx := context.Background()
	svc := openSvc(t)

	first := domain.Record{
		ID: 7, DateCuba: "2024-05-01 08:00:00", DateUTC: "2024-05-01 12:00:00",
		Views: 1, Text: "primera versión",
		Reactions: map[string]int{"👍": 1, "🔥": 2},
	}
	if err := svc.Upsert(ctx, first); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	second := first
	second.Views = 9
	second.Text = "editado"
	second.Reactions = map[string]int{"👍": 4}
	if err := svc.Upsert(ctx, second); err != nil {
		t.Fatalf("re-upsert: %v", err)
	}

	got, err := svc.ListByYear(ctx, 2024)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Views != 9 || got[0].Text != "editado" {
		t.Fatalf("row not replaced: %+v", got[0])
	}
	// 🔥 disappeared from the channel, so it must disappear here too
	if len(got[0].Reactions) != 1 || got[0].Reactions["👍"] != 4 {
		t.Fatalf("reactions not replaced: %v", got[0].Reactions)
	}
}

func TestUnparsableDateStaysNil(t *testing.T) {
	ctx := context.Background()
	svc := openSvc(t)

	if err := svc.Upsert(ctx, domain.Record{ID: 1, DateCuba: "2024-13-99 99:99:99", Text: "x"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, err := svc.ListByYear(ctx, 2024)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].DateCubaParsed != nil {
		t.Fatalf("parsed = %v, want nil", got[0].DateCubaParsed)
	}
}

func TestYearRange(t *testing.T) {
	ctx := context.Background()
	svc := openSvc(t)

	span, err := svc.YearRange(ctx)
	if err != nil {
		t.Fatalf("year range: %v", err)
	}
	if !span.Empty() {
		t.Fatalf("empty archive span = %+v", span)
	}
	if span.Years() != nil {
		t.Fatalf("empty span years = %v", span.Years())
	}

	for id, date := range map[int]string{
		1: "2022-06-01 08:00:00",
		2: "2024-01-15 08:00:00",
		3: "2023-03-10 08:00:00",
	} {
		if err := svc.Upsert(ctx, domain.Record{ID: id, DateCuba: date, Text: "x"}); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	span, err = svc.YearRange(ctx)
	if err != nil {
		t.Fatalf("year range: %v", err)
	}
	if span.Min != 2022 || span.Max != 2024 {
		t.Fatalf("span = %+v, want 2022..2024", span)
	}
	years := span.Years()
	if len(years) != 3 || years[0] != 2022 || years[2] != 2024 {
		t.Fatalf("years = %v", years)
	}
}

func TestDefaultChannel(t *testing.T) {
	svc := New(nil, repo.NewSQLite(), Config{})
	if got := svc.Link(12); got != "https://t.me/"+DefaultChannel+"/12" {
		t.Fatalf("link = %q", got)
	}
}
