package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestErrorMessageAndUnwrap(t *testing.T) {
	cause := stderrs.New("disk full")
	err := Wrap(cause, ErrorCodeDB, "save message")

	if got := err.Error(); got != "save message: disk full" {
		t.Fatalf("Error() = %q", got)
	}
	if !stderrs.Is(err, cause) {
		t.Fatalf("wrapped cause not reachable via errors.Is")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(New(ErrorCodeNotFound, "nope")); got != ErrorCodeNotFound {
		t.Fatalf("CodeOf typed = %d", got)
	}
	if got := CodeOf(stderrs.New("plain")); got != ErrorCodeUnknown {
		t.Fatalf("CodeOf untyped = %d, want unknown", got)
	}
	if got := CodeOf(nil); got != ErrorCodeUnknown {
		t.Fatalf("CodeOf nil = %d, want unknown", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{New(ErrorCodeNotFound, "x"), http.StatusNotFound},
		{New(ErrorCodeInvalidArgument, "x"), http.StatusUnprocessableEntity},
		{New(ErrorCodeValidation, "x"), http.StatusBadRequest},
		{New(ErrorCodeJSON, "x"), http.StatusBadRequest},
		{stderrs.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestWireFrom_HidesUntypedDetail(t *testing.T) {
	w := WireFrom(stderrs.New("secret internals"))
	if w.Message != "internal error" || w.Code != ErrorCodeUnknown {
		t.Fatalf("WireFrom untyped leaked detail: %+v", w)
	}

	w2 := WireFrom(Newf(ErrorCodeValidation, "bad year %d", 1890))
	if w2.Message != "bad year 1890" || w2.Code != ErrorCodeValidation {
		t.Fatalf("WireFrom typed = %+v", w2)
	}
}

func TestWithOp(t *testing.T) {
	base := New(ErrorCodeDB, "query failed")
	tagged := base.WithOp("messages.ListByYear")
	if tagged.Op() != "messages.ListByYear" {
		t.Fatalf("Op = %q", tagged.Op())
	}
	if base.Op() != "" {
		t.Fatalf("WithOp mutated the receiver")
	}
}
