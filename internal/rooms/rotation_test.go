package rooms

import (
	"testing"
)

func TestNextTurnAlternatesWithTwoPlayers(t *testing.T) {
	candidates := []string{"a", "b"}
	current := "a"
	var previous []string
	for i := 0; i < 6; i++ {
		next, prev := nextTurn(candidates, previous, current)
		if next == current {
			t.Fatalf("turn %d repeated %s", i, current)
		}
		current = next
		previous = prev
	}
}

func TestNextTurnVisitsEveryoneBeforeRepeating(t *testing.T) {
	candidates := []string{"a", "b", "c", "d"}
	current := "a"
	var previous []string

	seen := map[string]struct{}{current: {}}
	for i := 0; i < len(candidates)-1; i++ {
		next, prev := nextTurn(candidates, previous, current)
		if _, dup := seen[next]; dup {
			t.Fatalf("%s repeated before the cycle finished", next)
		}
		seen[next] = struct{}{}
		current = next
		previous = prev
	}
	if len(seen) != len(candidates) {
		t.Fatalf("cycle covered %d of %d players", len(seen), len(candidates))
	}

	// Cycle exhausted: the history resets and the next pick is anyone but
	// the player who just went.
	next, prev := nextTurn(candidates, previous, current)
	if next == current {
		t.Fatalf("immediate repeat of %s after cycle reset", current)
	}
	if prev != nil {
		t.Fatalf("expected history reset, got %v", prev)
	}
}

func TestNextTurnEmptyCandidates(t *testing.T) {
	next, prev := nextTurn(nil, []string{"x"}, "x")
	if next != "x" || len(prev) != 1 {
		t.Fatalf("expected no-op, got %q %v", next, prev)
	}
}

func TestNextQuestionExhaustsPoolBeforeRepeating(t *testing.T) {
	pool := []uint{1, 2, 3}
	var previous []uint
	var current *uint

	seen := map[uint]struct{}{}
	for i := 0; i < len(pool); i++ {
		next, prev := nextQuestion(pool, previous, current)
		if next == nil {
			t.Fatalf("draw %d returned nil", i)
		}
		if _, dup := seen[*next]; dup {
			t.Fatalf("question %d repeated before exhaustion", *next)
		}
		seen[*next] = struct{}{}
		current = next
		previous = prev
	}

	// Pool exhausted: history resets, any question may come back.
	next, prev := nextQuestion(pool, previous, current)
	if next == nil {
		t.Fatalf("expected a redraw after exhaustion")
	}
	if prev != nil {
		t.Fatalf("expected history reset, got %v", prev)
	}
}

func TestNextQuestionEmptyPool(t *testing.T) {
	current := uint(9)
	next, prev := nextQuestion(nil, []uint{1}, &current)
	if next != nil {
		t.Fatalf("expected nil on empty pool, got %d", *next)
	}
	if len(prev) != 1 {
		t.Fatalf("history must survive an empty pool")
	}
}

func TestNextPairCoversAllOrderings(t *testing.T) {
	all := allPairKeys([]string{"a", "b", "c"})
	if len(all) != 6 {
		t.Fatalf("expected 6 ordered pairs, got %d", len(all))
	}

	var previous []string
	seen := map[string]struct{}{}
	for i := 0; i < len(all); i++ {
		key, prev := nextPair(all, previous)
		if _, dup := seen[key]; dup {
			t.Fatalf("pair %s repeated before exhaustion", key)
		}
		seen[key] = struct{}{}
		previous = prev
	}

	key, prev := nextPair(all, previous)
	if len(prev) != 1 || prev[0] != key {
		t.Fatalf("expected history restart at the drawn pair, got %v", prev)
	}
}

func TestPairMembers(t *testing.T) {
	one, two, ok := pairMembers(pairKey("left", "right"))
	if !ok || one != "left" || two != "right" {
		t.Fatalf("got %q %q %v", one, two, ok)
	}
	if _, _, ok := pairMembers("no-separator"); ok {
		t.Fatalf("malformed key parsed")
	}
}

func TestPairKeysWith(t *testing.T) {
	keys := pairKeysWith([]string{"a", "b"}, "c")
	if len(keys) != 4 {
		t.Fatalf("expected 4 keys, got %v", keys)
	}
	for _, want := range []string{"a&c", "c&a", "b&c", "c&b"} {
		found := false
		for _, key := range keys {
			if key == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("missing key %s in %v", want, keys)
		}
	}
}

func TestDrawCardNeverRepeats(t *testing.T) {
	const deck = 10
	var previous []int
	for i := 0; i < deck; i++ {
		card := drawCard(previous, deck)
		if card == nil {
			t.Fatalf("deck ran out after %d draws", i)
		}
		if *card < 1 || *card > deck {
			t.Fatalf("card %d out of range", *card)
		}
		for _, prior := range previous {
			if prior == *card {
				t.Fatalf("card %d drawn twice", *card)
			}
		}
		previous = append(previous, *card)
	}
	if card := drawCard(previous, deck); card != nil {
		t.Fatalf("exhausted deck produced card %d", *card)
	}
}

func TestQuestionPoolEditionFilter(t *testing.T) {
	one, two := 1, 2
	refs := []questionRef{
		{ID: 10, Edition: &one},
		{ID: 11, Edition: &two},
		{ID: 12, Edition: &two},
		{ID: 13},
	}

	pool := questionPool(refs, 2)
	if len(pool) != 2 || pool[0] != 11 || pool[1] != 12 {
		t.Fatalf("edition filter returned %v", pool)
	}

	// Unknown editions fall back to the whole pool.
	pool = questionPool(refs, 7)
	if len(pool) != 4 {
		t.Fatalf("fallback returned %v", pool)
	}

	pool = questionPool(refs, 0)
	if len(pool) != 4 {
		t.Fatalf("no-edition pool returned %v", pool)
	}
}
