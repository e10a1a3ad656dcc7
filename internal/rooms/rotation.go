package rooms

import (
	"math/rand/v2"
	"strings"
)

// nextTurn picks who goes next. With exactly two candidates the turn
// strictly alternates. Otherwise every candidate goes once per cycle in
// creation order; when the cycle is exhausted the history resets and the
// next candidate is drawn at random, excluding whoever just went.
func nextTurn(candidates []string, previous []string, current string) (string, []string) {
	if len(candidates) == 0 {
		return current, previous
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}
	if len(candidates) == 2 {
		next := candidates[0]
		if next == current {
			next = candidates[1]
		}
		return next, []string{current}
	}

	seen := make(map[string]struct{}, len(previous)+1)
	for _, id := range previous {
		seen[id] = struct{}{}
	}
	seen[current] = struct{}{}

	for _, id := range candidates {
		if _, ok := seen[id]; !ok {
			return id, append(previous, current)
		}
	}

	// Cycle exhausted: fresh cycle, random start, no immediate repeat.
	others := make([]string, 0, len(candidates)-1)
	for _, id := range candidates {
		if id != current {
			others = append(others, id)
		}
	}
	return others[rand.IntN(len(others))], nil
}

// nextQuestion draws from the not-yet-played part of the pool; once the
// pool is exhausted the history resets and the draw covers the entire pool
// again. Returns nil when the pool itself is empty.
func nextQuestion(pool []uint, previous []uint, current *uint) (*uint, []uint) {
	if len(pool) == 0 {
		return nil, previous
	}

	seen := make(map[uint]struct{}, len(previous)+1)
	for _, id := range previous {
		seen[id] = struct{}{}
	}
	if current != nil {
		seen[*current] = struct{}{}
	}

	unplayed := make([]uint, 0, len(pool))
	for _, id := range pool {
		if _, ok := seen[id]; !ok {
			unplayed = append(unplayed, id)
		}
	}

	if len(unplayed) > 0 {
		pick := unplayed[rand.IntN(len(unplayed))]
		if current != nil {
			previous = append(previous, *current)
		}
		return &pick, previous
	}

	pick := pool[rand.IntN(len(pool))]
	return &pick, nil
}

// nextPair draws an unseen pair key; when every pair has gone, the draw
// covers all pairs again and the history restarts at the drawn pair.
func nextPair(all []string, previous []string) (string, []string) {
	if len(all) == 0 {
		return "", previous
	}

	seen := make(map[string]struct{}, len(previous))
	for _, key := range previous {
		seen[key] = struct{}{}
	}

	unseen := make([]string, 0, len(all))
	for _, key := range all {
		if _, ok := seen[key]; !ok {
			unseen = append(unseen, key)
		}
	}

	if len(unseen) > 0 {
		pick := unseen[rand.IntN(len(unseen))]
		return pick, append(previous, pick)
	}

	pick := all[rand.IntN(len(all))]
	return pick, []string{pick}
}

func pairKey(a, b string) string {
	return a + "&" + b
}

func pairMembers(key string) (string, string, bool) {
	a, b, ok := strings.Cut(key, "&")
	if !ok || a == "" || b == "" {
		return "", "", false
	}
	return a, b, true
}

// allPairKeys lists both orderings of every player combination so each
// participant gets a chance at either role in a pairing.
func allPairKeys(ids []string) []string {
	keys := make([]string, 0, len(ids)*(len(ids)-1))
	for i, a := range ids {
		for j, b := range ids {
			if i == j {
				continue
			}
			keys = append(keys, pairKey(a, b))
		}
	}
	return keys
}

// pairKeysWith returns both orderings of newID against every existing id.
func pairKeysWith(existing []string, newID string) []string {
	keys := make([]string, 0, len(existing)*2)
	for _, id := range existing {
		if id == newID {
			continue
		}
		keys = append(keys, pairKey(id, newID), pairKey(newID, id))
	}
	return keys
}

// drawCard picks a card in [1, deckSize] not drawn before, or nil once the
// deck is exhausted. Random probing first; a dense deck falls back to a
// scan over the remaining cards so the draw stays uniform.
func drawCard(previous []int, deckSize int) *int {
	if deckSize <= 0 || len(previous) >= deckSize {
		return nil
	}
	seen := make(map[int]struct{}, len(previous))
	for _, card := range previous {
		seen[card] = struct{}{}
	}
	for attempt := 0; attempt < deckSize; attempt++ {
		card := rand.IntN(deckSize) + 1
		if _, ok := seen[card]; !ok {
			return &card
		}
	}
	remaining := make([]int, 0, deckSize-len(seen))
	for card := 1; card <= deckSize; card++ {
		if _, ok := seen[card]; !ok {
			remaining = append(remaining, card)
		}
	}
	if len(remaining) == 0 {
		return nil
	}
	pick := remaining[rand.IntN(len(remaining))]
	return &pick
}

// questionPool returns the ids of an edition's questions. An empty filter
// result falls back to the full pool; the fallback is deterministic and
// applies everywhere editions are consulted.
func questionPool(questions []questionRef, edition int) []uint {
	ids := make([]uint, 0, len(questions))
	if edition > 0 {
		for _, q := range questions {
			if q.Edition != nil && *q.Edition == edition {
				ids = append(ids, q.ID)
			}
		}
		if len(ids) > 0 {
			return ids
		}
		ids = ids[:0]
	}
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	return ids
}

type questionRef struct {
	ID      uint
	Edition *int
}
