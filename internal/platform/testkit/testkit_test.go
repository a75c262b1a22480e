package testkit

import (
	"os"
	"testing"
)

func TestMustPanic(t *testing.T) {
	MustPanic(t, "panicking fn", func() { panic("boom") })
}

func TestTempFile(t *testing.T) {
	path := TempFile(t, "fixture.json", `{"ok":true}`)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read temp file: %v", err)
	}
	if string(b) != `{"ok":true}` {
		t.Fatalf("content = %q", b)
	}
}

func TestSwap_Restores(t *testing.T) {
	v := 1
	t.Run("inner", func(t *testing.T) {
		Swap(t, &v, 99)
		if v != 99 {
			t.Fatalf("swap did not apply, v=%d", v)
		}
	})
	if v != 1 {
		t.Fatalf("swap did not restore, v=%d", v)
	}
}
