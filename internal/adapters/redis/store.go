// Package redis implements ports.PresetStore on Redis, for deployments
// where several preview servers share one preset library.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/posykit/posy/pkg/domain"
)

// Store implements ports.PresetStore using Redis. Presets are stored as
// JSON values under <prefix><id>.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithTTL sets an expiration for stored presets. Zero means no expiration.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Redis store with its own client.
func New(address, password string, db int, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "posy:preset:",
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Save persists the preset as JSON.
func (s *Store) Save(ctx context.Context, preset domain.Preset) error {
	if preset.ID == "" {
		return fmt.Errorf("preset ID cannot be empty")
	}

	data, err := json.Marshal(preset)
	if err != nil {
		return fmt.Errorf("failed to marshal preset: %w", err)
	}

	if err := s.client.Set(ctx, s.key(preset.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save preset to redis: %w", err)
	}
	return nil
}

// Get retrieves and decodes a preset.
func (s *Store) Get(ctx context.Context, id string) (domain.Preset, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if err == backend.Nil {
			return domain.Preset{}, domain.ErrPresetNotFound
		}
		return domain.Preset{}, fmt.Errorf("failed to load preset from redis: %w", err)
	}

	var preset domain.Preset
	if err := json.Unmarshal(data, &preset); err != nil {
		return domain.Preset{}, fmt.Errorf("failed to decode preset %q: %w", id, err)
	}
	return preset, nil
}

// List scans for all preset keys under the prefix and returns their IDs,
// sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	var (
		ids    []string
		cursor uint64
	)
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.prefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan presets: %w", err)
		}
		for _, key := range keys {
			ids = append(ids, strings.TrimPrefix(key, s.prefix))
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	// Scan order is unspecified; keep the contract's sorted guarantee.
	sort.Strings(ids)
	return ids, nil
}

// Delete removes a preset. Missing keys are ignored.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete preset from redis: %w", err)
	}
	return nil
}

func (s *Store) key(id string) string {
	return s.prefix + id
}
