package posy

import (
	"io"
	"log/slog"

	"github.com/posykit/posy/internal/engine"
	"github.com/posykit/posy/pkg/domain"
	"github.com/posykit/posy/pkg/schema"
)

// Version is the library version reported by the CLI and the MCP server.
var Version = "0.3.0"

// Engine is the high-level entry point for the posy library. It wraps the
// internal evaluator and carries the ambient pieces (logging) that the pure
// generation core deliberately has no opinion about.
type Engine struct {
	logger *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a structured logger. Generation logs per-node results at
// Debug only; the default logger discards everything, so generation has no
// side channel unless the caller asks for one.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a posy Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return eng
}

// Generate expands the preset into a single prompt string, drawing every
// random decision from the session. An empty string is a valid result (an
// empty preset, or one whose nodes are all disabled or selected nothing).
//
// Generate is defined only for presets that pass Validate; ambiguous node
// IDs make sequential rotation undefined (but never crash).
func (e *Engine) Generate(preset domain.Preset, s *domain.Session) string {
	prompt := engine.Generate(preset, s)
	e.logger.Debug("generated prompt", "preset", preset.ID, "len", len(prompt))
	return prompt
}

// Validate checks the preset for configuration issues: per-node bounds plus
// tree-wide node-ID uniqueness. Returns a *schema.ConfigurationError when
// anything is wrong.
func (e *Engine) Validate(preset domain.Preset) error {
	return schema.ValidatePreset(preset)
}

// ValidateNode checks a single node subtree without the tree-wide ID check.
// Editors use it for per-node feedback before saving.
func (e *Engine) ValidateNode(node domain.Node) []schema.Issue {
	return schema.ValidateNode(node)
}

// NewSession creates a generation session. Pass domain.WithSeed for
// reproducible output; sessions are retained across Generate calls when the
// caller wants sequential nodes to keep rotating, and discarded to start
// fresh.
func NewSession(opts ...domain.SessionOption) *domain.Session {
	return domain.NewSession(opts...)
}

// Generate is a convenience for one-off generation without constructing an
// Engine.
func Generate(preset domain.Preset, s *domain.Session) string {
	return engine.Generate(preset, s)
}
