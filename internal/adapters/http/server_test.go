package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posykit/posy"
	httpadapter "github.com/posykit/posy/internal/adapters/http"
	"github.com/posykit/posy/internal/adapters/memory"
	"github.com/posykit/posy/internal/logging"
	"github.com/posykit/posy/pkg/domain"
)

func newTestServer(t *testing.T) (*httptest.Server, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	handler := httpadapter.NewHandler(posy.New(), store, logging.NewNop())
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, store
}

func seedPreset(t *testing.T, store *memory.Store) domain.Preset {
	t.Helper()

	preset := domain.Preset{
		ID:   "portrait",
		Name: "Portrait",
		Nodes: []domain.Node{
			{
				ID: "base", Type: domain.NodeTypeLeaf, Enabled: true,
				Mode:       domain.SelectionAll,
				Candidates: []string{"1girl", "smile"},
			},
		},
	}
	require.NoError(t, store.Save(t.Context(), preset))
	return preset
}

func TestServer_Health(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_ListAndGetPresets(t *testing.T) {
	srv, store := newTestServer(t)
	seedPreset(t, store)

	resp, err := http.Get(srv.URL + "/presets")
	require.NoError(t, err)
	defer resp.Body.Close()

	var list map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Equal(t, []string{"portrait"}, list["presets"])

	resp2, err := http.Get(srv.URL + "/presets/portrait")
	require.NoError(t, err)
	defer resp2.Body.Close()

	var preset domain.Preset
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&preset))
	assert.Equal(t, "Portrait", preset.Name)
}

func TestServer_GetMissingPreset(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/presets/nope")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_PutPreset_ValidatesBeforeSaving(t *testing.T) {
	srv, store := newTestServer(t)

	bad := domain.Preset{
		Nodes: []domain.Node{
			{ID: "x", Type: domain.NodeTypeLeaf, Mode: "sometimes"},
		},
	}
	body, _ := json.Marshal(bad)

	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/presets/bad", bytes.NewReader(body))
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	_, err = store.Get(t.Context(), "bad")
	assert.ErrorIs(t, err, domain.ErrPresetNotFound, "invalid preset must not be saved")
}

func TestServer_PutThenDeletePreset(t *testing.T) {
	srv, store := newTestServer(t)

	good := domain.Preset{
		Nodes: []domain.Node{
			{ID: "a", Type: domain.NodeTypeLeaf, Enabled: true, Mode: domain.SelectionAll},
		},
	}
	body, _ := json.Marshal(good)

	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/presets/fresh", bytes.NewReader(body))
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	saved, err := store.Get(t.Context(), "fresh")
	require.NoError(t, err)
	assert.Equal(t, "fresh", saved.ID, "ID comes from the URL, not the body")

	del, _ := http.NewRequest(http.MethodDelete, srv.URL+"/presets/fresh", nil)
	resp2, err := http.DefaultClient.Do(del)
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp2.StatusCode)
}

func TestServer_GenerateStored(t *testing.T) {
	srv, store := newTestServer(t)
	seedPreset(t, store)

	body := []byte(`{"seed": 42, "samples": 3}`)
	resp, err := http.Post(srv.URL+"/presets/portrait/generate", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out httpadapter.GenerateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Prompts, 3)
	for _, p := range out.Prompts {
		assert.Equal(t, "1girl, smile", p)
	}
}

func TestServer_GenerateStored_EmptyBody(t *testing.T) {
	srv, store := newTestServer(t)
	seedPreset(t, store)

	resp, err := http.Post(srv.URL+"/presets/portrait/generate", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out httpadapter.GenerateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Prompts, 1)
}

func TestServer_GenerateInline_SeededIsReproducible(t *testing.T) {
	srv, _ := newTestServer(t)

	reqBody := httpadapter.GenerateRequest{
		Seed:    ptr(int64(7)),
		Samples: 2,
		Preset: &domain.Preset{
			ID: "inline",
			Nodes: []domain.Node{
				{
					ID: "pick", Type: domain.NodeTypeLeaf, Enabled: true,
					Mode:       domain.SelectionSingleRandom,
					Candidates: []string{"red", "green", "blue"},
				},
			},
		},
	}
	body, _ := json.Marshal(reqBody)

	first := postGenerate(t, srv.URL, body)
	second := postGenerate(t, srv.URL, body)
	assert.Equal(t, first, second, "same seed must replay the same prompts")
}

func TestServer_GenerateInline_MissingPreset(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/generate", "application/json", bytes.NewReader([]byte(`{}`)))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_MetricsEndpoint(t *testing.T) {
	srv, store := newTestServer(t)
	seedPreset(t, store)

	_ = postGenerate(t, srv.URL+"/presets/portrait", []byte(`{}`))

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func postGenerate(t *testing.T, baseURL string, body []byte) []string {
	t.Helper()

	resp, err := http.Post(baseURL+"/generate", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out httpadapter.GenerateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out.Prompts
}

func ptr[T any](v T) *T {
	return &v
}
