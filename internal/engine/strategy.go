package engine

import (
	"sort"

	"github.com/posykit/posy/pkg/domain"
)

// Pick returns the pool indices selected by the node's mode, in output
// order. poolLen is the size of the node's pool (candidates for a leaf,
// children for a group). An empty pool selects nothing and consumes no
// randomness, whatever the mode.
//
// Every random decision draws from the session's single source, so a seeded
// session replays the exact same picks.
func Pick(node domain.Node, poolLen int, s *domain.Session) []int {
	if poolLen == 0 {
		return nil
	}
	rng := s.Rand()

	switch node.Mode {
	case domain.SelectionSingleRandom:
		return []int{rng.Intn(poolLen)}

	case domain.SelectionSingleSequential:
		idx := s.Cursor(node.ID) % poolLen
		s.Advance(node.ID)
		return []int{idx}

	case domain.SelectionSingleProbability:
		if rng.Float64() < clamp01(node.Probability) {
			return []int{rng.Intn(poolLen)}
		}
		return nil

	case domain.SelectionMultipleCount:
		k := node.Count
		if k < 0 {
			k = 0
		}
		if k > poolLen {
			k = poolLen
		}
		if k == 0 {
			return nil
		}
		// Distinct indices without replacement, emitted in ascending pool
		// order. This mode has no shuffle toggle.
		picked := rng.Perm(poolLen)[:k]
		sort.Ints(picked)
		return picked

	case domain.SelectionMultipleProbability:
		p := clamp01(node.Probability)
		var picked []int
		// One Bernoulli trial per entry, not a fixed count.
		for i := 0; i < poolLen; i++ {
			if rng.Float64() < p {
				picked = append(picked, i)
			}
		}
		return maybeShuffle(picked, node, s)

	case domain.SelectionAll:
		picked := make([]int, poolLen)
		for i := range picked {
			picked[i] = i
		}
		return maybeShuffle(picked, node, s)
	}

	// Unknown mode degrades to an empty selection; validation flags it
	// before a preset is ever saved.
	return nil
}

func maybeShuffle(picked []int, node domain.Node, s *domain.Session) []int {
	if !node.Shuffle || len(picked) < 2 {
		return picked
	}
	s.Rand().Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	return picked
}

func clamp01(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
