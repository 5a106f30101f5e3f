package ports

import (
	"context"

	"github.com/posykit/posy/pkg/domain"
)

// PresetStore defines the interface for persisting presets. The engine
// itself never touches storage; stores exist for the surrounding tooling
// (CLI, HTTP server, MCP adapter) that needs presets to live somewhere.
type PresetStore interface {
	// Save persists the preset, keyed by preset.ID.
	Save(ctx context.Context, preset domain.Preset) error

	// Get retrieves a preset by ID.
	// Returns domain.ErrPresetNotFound if it does not exist.
	Get(ctx context.Context, id string) (domain.Preset, error)

	// List returns the IDs of all stored presets, sorted.
	List(ctx context.Context) ([]string, error)

	// Delete removes a preset by ID. Deleting a missing preset is not an
	// error.
	Delete(ctx context.Context, id string) error
}
