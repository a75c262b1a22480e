package analysis

import (
	"encoding/json"
	"testing"
)

func TestOrderedCounts_MarshalPreservesOrder(t *testing.T) {
	oc := OrderedCounts{
		{Key: "👍", Count: 12},
		{Key: "❤", Count: 12},
		{Key: "👎", Count: 3},
	}
	b, err := json.Marshal(oc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"👍":12,"❤":12,"👎":3}`
	if string(b) != want {
		t.Fatalf("marshal = %s, want %s", b, want)
	}
}

func TestOrderedCounts_EmptyAndNil(t *testing.T) {
	b, err := json.Marshal(OrderedCounts{})
	if err != nil || string(b) != "{}" {
		t.Fatalf("empty marshal = %s, %v", b, err)
	}
	var nilOC OrderedCounts
	b, err = json.Marshal(nilOC)
	if err != nil || string(b) != "{}" {
		t.Fatalf("nil marshal = %s, %v", b, err)
	}
}

func TestOrderedCounts_RoundTrip(t *testing.T) {
	in := OrderedCounts{
		{Key: "apagón", Count: 40},
		{Key: "bloque", Count: 40},
		{Key: "mw", Count: 7},
	}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out OrderedCounts
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("entry %d = %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestOrderedCounts_UnmarshalRejectsNonObject(t *testing.T) {
	var oc OrderedCounts
	if err := json.Unmarshal([]byte(`[1,2]`), &oc); err == nil {
		t.Fatalf("expected error for array input")
	}
}

func TestCounter_TopTieBreak(t *testing.T) {
	c := newCounter()
	c.add("b", 2)
	c.add("a", 1)
	c.add("a", 1)
	c.add("z", 5)

	top := c.top(0)
	want := []string{"z", "b", "a"}
	for i, k := range want {
		if top[i].Key != k {
			t.Fatalf("top[%d] = %s, want %s", i, top[i].Key, k)
		}
	}

	if got := c.top(2); len(got) != 2 {
		t.Fatalf("top(2) len = %d", len(got))
	}
}
