// Package file implements ports.PresetStore on the local filesystem, one
// YAML document per preset. This is the format external preset editors
// read and write.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/posykit/posy/pkg/domain"
)

// Store persists presets as <id>.yaml files in a directory.
type Store struct {
	BasePath string
}

// NewStore creates a file store rooted at basePath. If basePath is empty,
// it defaults to ".posy/presets".
func NewStore(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".posy", "presets")
	}
	return &Store{BasePath: basePath}
}

// Save writes the preset to <BasePath>/<id>.yaml. The write goes through a
// temp file and rename so a crash never leaves a half-written preset.
func (f *Store) Save(ctx context.Context, preset domain.Preset) error {
	if preset.ID == "" {
		return fmt.Errorf("preset ID cannot be empty")
	}

	if err := os.MkdirAll(f.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure preset directory: %w", err)
	}

	data, err := yaml.Marshal(preset)
	if err != nil {
		return fmt.Errorf("failed to marshal preset: %w", err)
	}

	final := f.path(preset.ID)
	tmp, err := os.CreateTemp(f.BasePath, ".preset-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write preset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), final); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to commit preset file: %w", err)
	}
	return nil
}

// Get reads and decodes <BasePath>/<id>.yaml.
func (f *Store) Get(ctx context.Context, id string) (domain.Preset, error) {
	if id == "" {
		return domain.Preset{}, fmt.Errorf("preset ID cannot be empty")
	}

	data, err := os.ReadFile(f.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Preset{}, domain.ErrPresetNotFound
		}
		return domain.Preset{}, fmt.Errorf("failed to read preset file: %w", err)
	}

	var preset domain.Preset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return domain.Preset{}, fmt.Errorf("failed to decode preset %q: %w", id, err)
	}
	return preset, nil
}

// List returns the IDs of every .yaml file in the store directory, sorted.
func (f *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(f.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read preset directory: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".yaml"))
	}
	sort.Strings(ids)
	return ids, nil
}

// Delete removes the preset file. A missing file is not an error.
func (f *Store) Delete(ctx context.Context, id string) error {
	if err := os.Remove(f.path(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete preset file: %w", err)
	}
	return nil
}

func (f *Store) path(id string) string {
	return filepath.Join(f.BasePath, id+".yaml")
}
