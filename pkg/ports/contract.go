package ports

import (
	"context"
	"testing"
	"time"

	"github.com/posykit/posy/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunPresetStoreContract runs a suite of tests verifying that a PresetStore
// implementation adheres to the interface contract. Every adapter's test
// file calls this against a freshly constructed store.
func RunPresetStoreContract(t *testing.T, store PresetStore) {
	ctx := context.Background()
	id := "contract-preset-" + time.Now().Format("20060102150405")

	preset := domain.Preset{
		ID:   id,
		Name: "Contract Preset",
		Nodes: []domain.Node{
			{
				ID: id + "-base", Type: domain.NodeTypeLeaf, Enabled: true,
				Mode:       domain.SelectionAll,
				Candidates: []string{"1girl", "smile"},
				Brackets:   domain.BracketRange{Min: 0, Max: 2},
			},
			{
				ID: id + "-style", Type: domain.NodeTypeGroup, Enabled: true,
				Mode: domain.SelectionSingleRandom,
				Children: []domain.Node{
					{
						ID: id + "-medium", Type: domain.NodeTypeLeaf, Enabled: true,
						Mode: domain.SelectionSingleSequential, Candidates: []string{"oil", "ink"},
					},
				},
			},
		},
	}

	t.Run("Save and Get", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, preset), "Save should not return error")

		loaded, err := store.Get(ctx, id)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, preset.Name, loaded.Name)
		require.Len(t, loaded.Nodes, 2)
		assert.Equal(t, preset.Nodes[0].Candidates, loaded.Nodes[0].Candidates)
		assert.Equal(t, preset.Nodes[1].Children[0].Mode, loaded.Nodes[1].Children[0].Mode)
		assert.Equal(t, preset.Nodes[0].Brackets, loaded.Nodes[0].Brackets)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := store.Get(ctx, "non-existent-"+id)
		assert.ErrorIs(t, err, domain.ErrPresetNotFound)
	})

	t.Run("List", func(t *testing.T) {
		other := preset.Clone()
		other.ID = id + "-second"
		require.NoError(t, store.Save(ctx, other))
		defer func() { _ = store.Delete(ctx, other.ID) }()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id)
		assert.Contains(t, ids, other.ID)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, id))

		_, err := store.Get(ctx, id)
		assert.ErrorIs(t, err, domain.ErrPresetNotFound, "Get after Delete should return ErrPresetNotFound")

		assert.NoError(t, store.Delete(ctx, id), "deleting a missing preset is not an error")
	})
}
