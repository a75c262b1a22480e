package repokit

import (
	"context"
	"testing"

	"unwrapped/internal/platform/store"
	"unwrapped/internal/platform/testkit"
)

type fakeQ struct{}

func (f *fakeQ) Exec(ctx context.Context, sql string, args ...any) (store.CommandTag, error) {
	return nil, nil
}

func (f *fakeQ) Query(ctx context.Context, sql string, args ...any) (store.Rows, error) {
	return nil, nil
}

func (f *fakeQ) QueryRow(ctx context.Context, sql string, args ...any) store.Row { return nil }

var _ Queryer = (*fakeQ)(nil)

func TestBindFunc_BindCallsFunc(t *testing.T) {
	t.Parallel()

	b := BindFunc[string](func(_ Queryer) string { return "ok" })
	if got := b.Bind(&fakeQ{}); got != "ok" {
		t.Fatalf("BindFunc.Bind = %q, want ok", got)
	}
}

func TestRequireQueryer(t *testing.T) {
	t.Parallel()

	var nilQ Queryer
	testkit.MustPanic(t, "RequireQueryer(nil)", func() { _ = RequireQueryer(nilQ) })

	q := &fakeQ{}
	if got := RequireQueryer(q); got != Queryer(q) {
		t.Fatalf("RequireQueryer returned different instance")
	}
}

func TestMustBind_PanicsOnNilQueryer(t *testing.T) {
	t.Parallel()

	b := BindFunc[int](func(_ Queryer) int { return 42 })
	var nilQ Queryer
	testkit.MustPanic(t, "MustBind(nil)", func() { _ = MustBind(b, nilQ) })

	if got := MustBind(b, &fakeQ{}); got != 42 {
		t.Fatalf("MustBind = %d, want 42", got)
	}
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func TestMustPing(t *testing.T) {
	t.Parallel()

	MustPing(context.Background(), "db", fakePinger{})
	testkit.MustPanic(t, "MustPing(failing)", func() {
		MustPing(context.Background(), "db", fakePinger{err: context.DeadlineExceeded})
	})
}
