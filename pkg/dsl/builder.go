package dsl

import (
	"github.com/google/uuid"

	"github.com/posykit/posy/pkg/domain"
)

// PresetBuilder assembles a preset from top-level nodes in order.
type PresetBuilder struct {
	preset domain.Preset
}

// NewPreset starts a preset with the given display name.
func NewPreset(name string) *PresetBuilder {
	return &PresetBuilder{
		preset: domain.Preset{Name: name},
	}
}

// ID sets an explicit preset ID. Without it, Build assigns a fresh UUID.
func (b *PresetBuilder) ID(id string) *PresetBuilder {
	b.preset.ID = id
	return b
}

// Add appends top-level nodes in generation order.
func (b *PresetBuilder) Add(nodes ...domain.Node) *PresetBuilder {
	b.preset.Nodes = append(b.preset.Nodes, nodes...)
	return b
}

// Build returns the assembled preset.
func (b *PresetBuilder) Build() domain.Preset {
	out := b.preset.Clone()
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	return out
}
