package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestInit_OnceAndGet(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "info", Format: "json", Service: "test", Writer: &buf})

	// second Init must be a no-op
	Init(Options{Level: "trace", Format: "console", Service: "other"})

	l := Get()
	if l == nil {
		t.Fatalf("Get returned nil logger")
	}
}

func TestC_EnrichesRequestID(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "debug", Format: "json", Writer: &buf})

	ctx := WithRequest(context.Background(), "req-123")
	C(ctx).Info().Msg("hello")

	if out := buf.String(); out != "" && !strings.Contains(out, "req-123") {
		t.Fatalf("expected request_id in log output, got %q", out)
	}
}

func TestParseLevel_Fallback(t *testing.T) {
	if got := parseLevel("nonsense"); got.String() != "debug" {
		t.Fatalf("parseLevel fallback = %s, want debug", got)
	}
	if got := parseLevel(" WARN "); got.String() != "warn" {
		t.Fatalf("parseLevel warn = %s", got)
	}
}
