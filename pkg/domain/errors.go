package domain

import "errors"

// ErrPresetNotFound is returned when a preset ID cannot be found in a store.
var ErrPresetNotFound = errors.New("preset not found")
