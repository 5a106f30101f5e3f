// Package cli holds shared helpers for the posy command-line tool.
package cli

import (
	"fmt"

	"github.com/posykit/posy/internal/adapters/file"
	"github.com/posykit/posy/internal/adapters/memory"
	"github.com/posykit/posy/internal/adapters/redis"
	"github.com/posykit/posy/internal/config"
	"github.com/posykit/posy/pkg/ports"
)

// NewStore builds the preset store selected by the configuration.
func NewStore(cfg config.StoreConfig) (ports.PresetStore, error) {
	switch cfg.Backend {
	case "", "file":
		return file.NewStore(cfg.Path), nil
	case "redis":
		if cfg.Addr == "" {
			return nil, fmt.Errorf("redis backend requires store.addr")
		}
		return redis.New(cfg.Addr, cfg.Password, cfg.DB), nil
	case "memory":
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
