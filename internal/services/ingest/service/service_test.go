package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	ingdom "unwrapped/internal/services/ingest/domain"
	msgdom "unwrapped/internal/services/messages/domain"
)

type captureWriter struct {
	got []msgdom.Record
	err error
}

func (w *captureWriter) Upsert(_ context.Context, m msgdom.Record) error {
	if w.err != nil {
		return w.err
	}
	w.got = append(w.got, m)
	return nil
}

const exportFixture = `{
	"name": "Empresa Eléctrica",
	"type": "public_channel",
	"id": 1616055145,
	"messages": [
		{
			"id": 10,
			"type": "message",
			"date": "2024-10-18T07:10:00",
			"date_unixtime": "1729249800",
			"text": "Buenos días",
			"text_entities": [{"type": "plain", "text": "Buenos días"}],
			"reactions": [
				{"type": "emoji", "count": 4, "emoji": "👍"},
				{"type": "custom_emoji", "count": 2, "document_id": "533"}
			]
		},
		{
			"id": 11,
			"type": "service",
			"date": "2024-10-18T08:00:00",
			"date_unixtime": "1729252800",
			"action": "pin_message",
			"text": "",
			"text_entities": []
		},
		{
			"id": 12,
			"type": "message",
			"date": "2024-10-18T09:00:00",
			"date_unixtime": "1729256400",
			"text": ["Afectación en el ", {"type": "bold", "text": "bloque 3"}],
			"text_entities": []
		},
		{
			"id": 0,
			"type": "message",
			"date_unixtime": "1729260000",
			"text": "sin id válido",
			"text_entities": []
		}
	]
}`

func writeFixture(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "result.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestRun_IngestsExport(t *testing.T) {
	w := &captureWriter{}
	svc := New(w, Config{})

	stats, err := svc.Run(context.Background(), writeFixture(t, exportFixture))
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := ingdom.Stats{Seen: 4, Stored: 2, Skipped: 1, Invalid: 1}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}
	if len(w.got) != 2 {
		t.Fatalf("stored = %d records", len(w.got))
	}

	first := w.got[0]
	if first.ID != 10 || first.Text != "Buenos días" {
		t.Fatalf("first = %+v", first)
	}
	// 1729249800 = 2024-10-18 11:10:00 UTC = 07:10:00 in Havana (CDT)
	if first.DateUTC != "2024-10-18 11:10:00" {
		t.Fatalf("date_utc = %q", first.DateUTC)
	}
	if first.DateCuba != "2024-10-18 07:10:00" {
		t.Fatalf("date_cuba = %q", first.DateCuba)
	}
	if len(first.Reactions) != 1 || first.Reactions["👍"] != 4 {
		t.Fatalf("reactions = %v, custom emoji must be dropped", first.Reactions)
	}

	// legacy mixed text array flattens in order
	if w.got[1].Text != "Afectación en el bloque 3" {
		t.Fatalf("flattened text = %q", w.got[1].Text)
	}
}

func TestRun_MissingFile(t *testing.T) {
	svc := New(&captureWriter{}, Config{})
	if _, err := svc.Run(context.Background(), filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing export")
	}
}

func TestRun_NoMessagesKey(t *testing.T) {
	svc := New(&captureWriter{}, Config{})
	path := writeFixture(t, `{"name": "x", "type": "public_channel", "id": 1}`)
	if _, err := svc.Run(context.Background(), path); err == nil {
		t.Fatalf("expected error when messages array is absent")
	}
}

func TestFlattenText(t *testing.T) {
	cases := []struct {
		name string
		em   ingdom.ExportMessage
		want string
	}{
		{
			name: "entities win over text",
			em: ingdom.ExportMessage{
				Text:         []byte(`"ignored"`),
				TextEntities: []ingdom.TextEntity{{Type: "plain", Text: "a"}, {Type: "bold", Text: "b"}},
			},
			want: "ab",
		},
		{
			name: "plain string",
			em:   ingdom.ExportMessage{Text: []byte(`"hola"`)},
			want: "hola",
		},
		{
			name: "empty",
			em:   ingdom.ExportMessage{},
			want: "",
		},
		{
			name: "mixed array",
			em:   ingdom.ExportMessage{Text: []byte(`["a ", {"type": "italic", "text": "b"}, " c"]`)},
			want: "a b c",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := FlattenText(c.em); got != c.want {
				t.Fatalf("got %q, want %q", got, c.want)
			}
		})
	}
}
