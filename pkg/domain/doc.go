// Package domain holds the value types of the prompt configuration model:
// the node tree, presets, and per-session generation state.
//
// Nodes and presets are plain immutable values; everything mutable about a
// generation (the random source and the sequential-rotation cursors) lives
// in Session and is threaded through explicitly, so the same tree can be
// resolved from independent sessions without coordination.
package domain
