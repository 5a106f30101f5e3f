// Package http exposes the generation engine and a preset store as a JSON
// API for preview UIs.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/posykit/posy"
	"github.com/posykit/posy/internal/metrics"
	"github.com/posykit/posy/pkg/domain"
	"github.com/posykit/posy/pkg/schema"
	"github.com/posykit/posy/pkg/ports"
)

// Server wires the engine, a preset store and the metrics collectors into
// one HTTP handler.
type Server struct {
	engine  *posy.Engine
	store   ports.PresetStore
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// GenerateRequest is the body of the generate endpoints. Seed makes the
// response reproducible; Samples asks for several prompts from one session,
// so sequential nodes rotate across them.
type GenerateRequest struct {
	Seed    *int64         `json:"seed,omitempty"`
	Samples int            `json:"samples,omitempty"`
	Preset  *domain.Preset `json:"preset,omitempty"` // inline generation only
}

// GenerateResponse carries the assembled prompts.
type GenerateResponse struct {
	Prompts []string `json:"prompts"`
}

// NewHandler builds the chi router for the preview API.
func NewHandler(engine *posy.Engine, store ports.PresetStore, logger *slog.Logger) http.Handler {
	reg := prometheus.NewRegistry()
	s := &Server{
		engine:  engine,
		store:   store,
		metrics: metrics.New(reg),
		logger:  logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/presets", s.listPresets)
	r.Get("/presets/{id}", s.getPreset)
	r.Put("/presets/{id}", s.putPreset)
	r.Delete("/presets/{id}", s.deletePreset)
	r.Post("/presets/{id}/generate", s.generateStored)
	r.Post("/generate", s.generateInline)

	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": posy.Version})
}

func (s *Server) listPresets(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("list presets failed", "err", err)
		http.Error(w, "failed to list presets", http.StatusInternalServerError)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"presets": ids})
}

func (s *Server) getPreset(w http.ResponseWriter, r *http.Request) {
	preset, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrPresetNotFound) {
			http.Error(w, "preset not found", http.StatusNotFound)
			return
		}
		s.logger.Error("get preset failed", "err", err)
		http.Error(w, "failed to load preset", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, preset)
}

func (s *Server) putPreset(w http.ResponseWriter, r *http.Request) {
	var preset domain.Preset
	if err := json.NewDecoder(r.Body).Decode(&preset); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	preset.ID = chi.URLParam(r, "id")

	if err := s.engine.Validate(preset); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "invalid preset",
			"issues": schema.ConfigurationIssues(err),
		})
		return
	}

	if err := s.store.Save(r.Context(), preset); err != nil {
		s.logger.Error("save preset failed", "preset", preset.ID, "err", err)
		http.Error(w, "failed to save preset", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, preset)
}

func (s *Server) deletePreset(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.logger.Error("delete preset failed", "err", err)
		http.Error(w, "failed to delete preset", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) generateStored(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	preset, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrPresetNotFound) {
			http.Error(w, "preset not found", http.StatusNotFound)
			return
		}
		s.logger.Error("get preset failed", "err", err)
		http.Error(w, "failed to load preset", http.StatusInternalServerError)
		return
	}

	s.respondGenerated(w, preset, req)
}

func (s *Server) generateInline(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Preset == nil {
		http.Error(w, "missing preset", http.StatusBadRequest)
		return
	}

	if err := s.engine.Validate(*req.Preset); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "invalid preset",
			"issues": schema.ConfigurationIssues(err),
		})
		return
	}

	s.respondGenerated(w, *req.Preset, req)
}

func (s *Server) respondGenerated(w http.ResponseWriter, preset domain.Preset, req GenerateRequest) {
	samples := req.Samples
	if samples < 1 {
		samples = 1
	}
	// Cap preview batches; a UI asking for more is a bug.
	if samples > 100 {
		samples = 100
	}

	var opts []domain.SessionOption
	if req.Seed != nil {
		opts = append(opts, domain.WithSeed(*req.Seed))
	}
	// One session for the whole batch: sequential nodes rotate across
	// samples, matching repeated preview clicks in a UI session.
	session := domain.NewSession(opts...)

	start := time.Now()
	prompts := make([]string, samples)
	for i := range prompts {
		prompts[i] = s.engine.Generate(preset, session)
	}
	s.metrics.Generations.WithLabelValues(preset.ID).Add(float64(samples))
	s.metrics.GenerationDuration.Observe(time.Since(start).Seconds())

	writeJSON(w, http.StatusOK, GenerateResponse{Prompts: prompts})
}

// decodeOptionalBody decodes JSON when a body is present; an empty body is
// fine (all request fields are optional on the stored-preset endpoint).
func decodeOptionalBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
