package engine_test

import (
	"sort"
	"testing"

	"github.com/posykit/posy/internal/engine"
	"github.com/posykit/posy/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPick_EmptyPoolSelectsNothing(t *testing.T) {
	modes := []string{
		domain.SelectionSingleRandom,
		domain.SelectionSingleSequential,
		domain.SelectionSingleProbability,
		domain.SelectionMultipleCount,
		domain.SelectionMultipleProbability,
		domain.SelectionAll,
	}

	for _, mode := range modes {
		t.Run(mode, func(t *testing.T) {
			s := domain.NewSession(domain.WithSeed(7))
			node := domain.Node{ID: "n", Mode: mode, Probability: 1, Count: 3}
			assert.Empty(t, engine.Pick(node, 0, s))
		})
	}
}

func TestPick_SingleRandom(t *testing.T) {
	s := domain.NewSession(domain.WithSeed(11))
	node := domain.Node{ID: "n", Mode: domain.SelectionSingleRandom}

	for i := 0; i < 50; i++ {
		picked := engine.Pick(node, 4, s)
		require.Len(t, picked, 1)
		assert.GreaterOrEqual(t, picked[0], 0)
		assert.Less(t, picked[0], 4)
	}
}

func TestPick_SingleSequential_Rotates(t *testing.T) {
	s := domain.NewSession(domain.WithSeed(1))
	node := domain.Node{ID: "seq", Mode: domain.SelectionSingleSequential}

	var got []int
	for i := 0; i < 4; i++ {
		picked := engine.Pick(node, 3, s)
		require.Len(t, picked, 1)
		got = append(got, picked[0])
	}
	// Wraps back to the first entry on the fourth call.
	assert.Equal(t, []int{0, 1, 2, 0}, got)
}

func TestPick_SingleSequential_CursorsAreIndependent(t *testing.T) {
	s := domain.NewSession(domain.WithSeed(1))
	a := domain.Node{ID: "a", Mode: domain.SelectionSingleSequential}
	b := domain.Node{ID: "b", Mode: domain.SelectionSingleSequential}

	engine.Pick(a, 3, s)
	engine.Pick(a, 3, s)

	assert.Equal(t, []int{0}, engine.Pick(b, 3, s), "node b has its own cursor")
	assert.Equal(t, []int{2}, engine.Pick(a, 3, s))
}

func TestPick_SingleProbability_Extremes(t *testing.T) {
	s := domain.NewSession(domain.WithSeed(3))

	never := domain.Node{ID: "n", Mode: domain.SelectionSingleProbability, Probability: 0}
	always := domain.Node{ID: "n", Mode: domain.SelectionSingleProbability, Probability: 1}

	for i := 0; i < 50; i++ {
		assert.Empty(t, engine.Pick(never, 5, s))
		assert.Len(t, engine.Pick(always, 5, s), 1)
	}
}

func TestPick_MultipleCount_ClampsAndStaysDistinct(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		poolLen int
		wantLen int
	}{
		{"count within pool", 2, 5, 2},
		{"count beyond pool clamps", 9, 4, 4},
		{"zero count selects none", 0, 4, 0},
		{"negative count selects none", -3, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.NewSession(domain.WithSeed(5))
			node := domain.Node{ID: "n", Mode: domain.SelectionMultipleCount, Count: tt.count}

			picked := engine.Pick(node, tt.poolLen, s)
			require.Len(t, picked, tt.wantLen)

			// Ascending pool order, no duplicates.
			assert.True(t, sort.IntsAreSorted(picked))
			seen := make(map[int]bool)
			for _, idx := range picked {
				assert.False(t, seen[idx], "index %d picked twice", idx)
				seen[idx] = true
			}
		})
	}
}

func TestPick_MultipleProbability_Extremes(t *testing.T) {
	s := domain.NewSession(domain.WithSeed(9))

	never := domain.Node{ID: "n", Mode: domain.SelectionMultipleProbability, Probability: 0}
	always := domain.Node{ID: "n", Mode: domain.SelectionMultipleProbability, Probability: 1}

	for i := 0; i < 20; i++ {
		assert.Empty(t, engine.Pick(never, 6, s))
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, engine.Pick(always, 6, s), "p=1 selects all in pool order")
	}
}

func TestPick_All(t *testing.T) {
	s := domain.NewSession(domain.WithSeed(2))
	node := domain.Node{ID: "n", Mode: domain.SelectionAll}

	assert.Equal(t, []int{0, 1, 2}, engine.Pick(node, 3, s))
}

func TestPick_ShuffleKeepsMembership(t *testing.T) {
	s := domain.NewSession(domain.WithSeed(13))
	node := domain.Node{ID: "n", Mode: domain.SelectionAll, Shuffle: true}

	picked := engine.Pick(node, 8, s)
	require.Len(t, picked, 8)

	sorted := append([]int(nil), picked...)
	sort.Ints(sorted)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, sorted)
}

func TestPick_UnknownModeSelectsNothing(t *testing.T) {
	s := domain.NewSession(domain.WithSeed(1))
	node := domain.Node{ID: "n", Mode: "sometimes"}
	assert.Empty(t, engine.Pick(node, 3, s))
}

func TestPick_ProbabilityClampedAtResolution(t *testing.T) {
	s := domain.NewSession(domain.WithSeed(4))
	node := domain.Node{ID: "n", Mode: domain.SelectionMultipleProbability, Probability: 3.0}

	// Clamped to 1: every entry selected.
	assert.Equal(t, []int{0, 1, 2}, engine.Pick(node, 3, s))
}
