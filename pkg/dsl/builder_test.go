package dsl_test

import (
	"testing"

	"github.com/posykit/posy/pkg/domain"
	"github.com/posykit/posy/pkg/dsl"
	"github.com/posykit/posy/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_AssignsIDs(t *testing.T) {
	preset := dsl.NewPreset("portrait").
		Add(
			dsl.Leaf("base", "1girl", "smile").Build(),
			dsl.Group("style",
				dsl.Leaf("medium", "watercolor", "oil").SingleRandom().Build(),
			).Build(),
		).
		Build()

	assert.NotEmpty(t, preset.ID)
	require.Len(t, preset.Nodes, 2)
	assert.NotEmpty(t, preset.Nodes[0].ID)
	assert.NotEmpty(t, preset.Nodes[1].Children[0].ID)

	assert.NoError(t, schema.ValidatePreset(preset))
}

func TestBuilder_ExplicitIDsAndModes(t *testing.T) {
	node := dsl.Leaf("pool", "a", "b", "c").
		ID("pool-1").
		PickCount(2).
		Brackets(1, 3).
		Build()

	assert.Equal(t, "pool-1", node.ID)
	assert.Equal(t, domain.SelectionMultipleCount, node.Mode)
	assert.Equal(t, 2, node.Count)
	assert.Equal(t, domain.BracketRange{Min: 1, Max: 3}, node.Brackets)
	assert.True(t, node.Enabled, "nodes start enabled")
}

func TestBuilder_NormalizesParameters(t *testing.T) {
	node := dsl.Leaf("pool", "a").Chance(1.8).Build()
	assert.Equal(t, 1.0, node.Probability, "probability clamped at construction")

	node = dsl.Leaf("pool", "a").PickCount(-2).Build()
	assert.Equal(t, 0, node.Count)
}

func TestBuilder_DisabledAndShuffle(t *testing.T) {
	node := dsl.Leaf("pool", "a", "b").EachChance(0.5).Shuffle().Disabled().Build()

	assert.False(t, node.Enabled)
	assert.True(t, node.Shuffle)
	assert.Equal(t, domain.SelectionMultipleProbability, node.Mode)
}

func TestBuilder_GeneratedTreeIsUsable(t *testing.T) {
	preset := dsl.NewPreset("scene").
		Add(
			dsl.Leaf("base", "1girl", "smile").All().Build(),
			dsl.Leaf("time", "morning", "dusk", "night").Sequential().ID("time").Build(),
		).
		Build()

	s := domain.NewSession(domain.WithSeed(5))

	// Engine round trip lives in the root package tests; here we only make
	// sure the built tree validates and the sequential node carries its ID.
	require.NoError(t, schema.ValidatePreset(preset))
	assert.Equal(t, "time", preset.Nodes[1].ID)
	assert.Equal(t, 0, s.Cursor("time"))
}
