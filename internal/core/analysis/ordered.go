package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// CountEntry is one key with its count
type CountEntry struct {
	Key   string
	Count int
}

// OrderedCounts is a count mapping with a significant order. It serializes
// as a JSON object whose keys appear in slice order, so count-descending
// rankings survive a round trip through the report file
type OrderedCounts []CountEntry

// Get returns the count for key and whether it is present
func (oc OrderedCounts) Get(key string) (int, bool) {
	for _, e := range oc {
		if e.Key == key {
			return e.Count, true
		}
	}
	return 0, false
}

// MarshalJSON writes the entries as an object preserving order
func (oc OrderedCounts) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, e := range oc {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(e.Count))
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// UnmarshalJSON reads an object keeping the key order it appears in
func (oc *OrderedCounts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*oc = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("ordered counts: expected object, got %v", tok)
	}
	out := OrderedCounts{}
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := kt.(string)
		if !ok {
			return fmt.Errorf("ordered counts: non-string key %v", kt)
		}
		var n int
		if err := dec.Decode(&n); err != nil {
			return err
		}
		out = append(out, CountEntry{Key: key, Count: n})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*oc = out
	return nil
}

// counter accumulates counts while remembering first-seen order, which is
// the tie-break for equal counts in every ranking the report exposes
type counter struct {
	counts map[string]int
	seen   map[string]int
	next   int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int), seen: make(map[string]int)}
}

func (c *counter) add(key string, delta int) {
	if _, ok := c.seen[key]; !ok {
		c.seen[key] = c.next
		c.next++
	}
	c.counts[key] += delta
}

// top returns up to n entries sorted count-descending, first-seen ascending
// on ties; n <= 0 returns all entries
func (c *counter) top(n int) OrderedCounts {
	out := make(OrderedCounts, 0, len(c.counts))
	for k, v := range c.counts {
		out = append(out, CountEntry{Key: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return c.seen[out[i].Key] < c.seen[out[j].Key]
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
