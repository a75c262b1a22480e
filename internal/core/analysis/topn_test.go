package analysis

import "testing"

func TestTopBy_DescendingWithCount(t *testing.T) {
	msgs := []Message{
		{ID: 1, Views: 10},
		{ID: 2, Views: 30},
		{ID: 3, Views: 20},
		{ID: 4, Views: 5},
	}
	top := TopBy(msgs, 3, func(m Message) int { return m.Views })

	if len(top) != 3 {
		t.Fatalf("len = %d, want 3", len(top))
	}
	wantIDs := []int{2, 3, 1}
	wantCounts := []int{30, 20, 10}
	for i := range top {
		if top[i].ID != wantIDs[i] || top[i].Count != wantCounts[i] {
			t.Fatalf("top[%d] = id %d count %d, want id %d count %d",
				i, top[i].ID, top[i].Count, wantIDs[i], wantCounts[i])
		}
	}
}

func TestTopBy_StableOnTies(t *testing.T) {
	msgs := []Message{
		{ID: 1, Replies: 7},
		{ID: 2, Replies: 7},
		{ID: 3, Replies: 7},
	}
	top := TopBy(msgs, 3, func(m Message) int { return m.Replies })
	for i, want := range []int{1, 2, 3} {
		if top[i].ID != want {
			t.Fatalf("tie order broken: top[%d].ID = %d, want %d", i, top[i].ID, want)
		}
	}
}

func TestTopBy_DoesNotMutateInput(t *testing.T) {
	msgs := []Message{{ID: 1, Views: 1}, {ID: 2, Views: 2}}
	_ = TopBy(msgs, 1, func(m Message) int { return m.Views })
	if msgs[0].ID != 1 || msgs[1].ID != 2 {
		t.Fatalf("input mutated: %+v", msgs)
	}
}

func TestMinMaxBy_FirstWins(t *testing.T) {
	msgs := []Message{
		{ID: 1, Text: "abc"},
		{ID: 2, Text: "ab"},
		{ID: 3, Text: "ab"},
		{ID: 4, Text: "abcdé"},
		{ID: 5, Text: "abcde"},
	}
	shortest := minBy(msgs, TextLength)
	if shortest.ID != 2 || shortest.Count != 2 {
		t.Fatalf("minBy = id %d count %d, want id 2 count 2", shortest.ID, shortest.Count)
	}
	longest := maxBy(msgs, TextLength)
	// both id 4 and id 5 have five characters; the first keeps the slot
	if longest.ID != 4 || longest.Count != 5 {
		t.Fatalf("maxBy = id %d count %d, want id 4 count 5", longest.ID, longest.Count)
	}
}
