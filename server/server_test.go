// SPDX-License-Identifier: MIT
package server_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/katalvlaran/decenttree/internal/config"
	"github.com/katalvlaran/decenttree/logger"
	"github.com/katalvlaran/decenttree/newick"
	"github.com/katalvlaran/decenttree/server"
	"github.com/katalvlaran/decenttree/starttree"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupServer returns a server over a private Prometheus registry.
func setupServer(t *testing.T, mutate func(*config.Config)) *server.Server {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	return server.New(cfg, server.WithLogger(logger.Discard()), server.WithPrometheusRegistry(prometheus.NewRegistry()))
}

func do(t *testing.T, s *server.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	return w
}

// TestHandleTrees_FlatDistances builds the NJ scenario from a flat array.
func TestHandleTrees_FlatDistances(t *testing.T) {
	s := setupServer(t, nil)
	w := do(t, s, http.MethodPost, "/v1/trees", `{
		"algorithm": "NJ",
		"sequences": ["A", "B", "C"],
		"distances": [0, 1, 2, 1, 0, 3, 2, 3, 0]
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp server.TreeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "(A:0,B:1,C:2);", resp.Tree)
	assert.Equal(t, "NJ", resp.Algorithm)
	assert.Equal(t, 3, resp.Taxa)
	_, err := uuid.Parse(resp.RequestID)
	assert.NoError(t, err)
	assert.Equal(t, resp.RequestID, w.Header().Get(server.RequestIDHeader))

	assert.Contains(t, metricsBody(t, s), `decenttree_constructions_total{algorithm="NJ",outcome="ok"} 1`)
}

// TestHandleTrees_NestedDistances takes the typed-array path for a 2-D body.
func TestHandleTrees_NestedDistances(t *testing.T) {
	s := setupServer(t, nil)
	w := do(t, s, http.MethodPost, "/v1/trees", `{
		"algorithm": "UPGMA",
		"sequences": ["A", "B", "C"],
		"distances": [[0, 1, 2], [1, 0, 3], [2, 3, 0]],
		"precision": 3
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp server.TreeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	root, err := newick.Parse(resp.Tree)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, root.Leaves())
}

// TestHandleTrees_Errors maps each failure to status and code.
func TestHandleTrees_Errors(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"invalid json", `{"algorithm":`, http.StatusBadRequest, server.CodeInvalidJSON},
		{"unknown keyword", `{"algorithm":"NJ","threads":2}`, http.StatusBadRequest, "INVALID_ARGUMENTS"},
		{"missing algorithm", `{}`, http.StatusBadRequest, "MISSING_ALGORITHM_NAME"},
		{"null body", `null`, http.StatusBadRequest, "MISSING_ALGORITHM_NAME"},
		{"unknown algorithm", `{"algorithm":"FOO","sequences":["A","B","C"],"distances":[0]}`,
			http.StatusBadRequest, "UNKNOWN_ALGORITHM"},
		{"too few", `{"algorithm":"NJ","sequences":["A","B"],"distances":[0,1,1,0]}`,
			http.StatusBadRequest, "TOO_FEW_SEQUENCES"},
		{"ragged rows", `{"algorithm":"NJ","sequences":["A","B","C"],"distances":[[0,1,2],[1,0],[2,3,0]]}`,
			http.StatusBadRequest, "ELEMENT_NOT_NUMERIC"},
		{"size mismatch", `{"algorithm":"NJ","sequences":["A","B","C"],"distances":[[0,1],[1,0]]}`,
			http.StatusBadRequest, "DISTANCE_MATRIX_SIZE_MISMATCH"},
		{"too many taxa", `{"algorithm":"NJ","sequences":["A","B","C","D"],"distances":[]}`,
			http.StatusBadRequest, server.CodeTooManySequences},
	}
	s := setupServer(t, func(c *config.Config) { c.Server.MaxTaxa = 3 })
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/v1/trees", tc.body)
			assert.Equal(t, tc.status, w.Code, w.Body.String())

			var resp server.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.code, resp.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

// failingBuilder always refuses to build.
type failingBuilder struct{}

func (failingBuilder) Name() string            { return "BROKEN" }
func (failingBuilder) SetPrecision(int)        {}
func (failingBuilder) SetLogger(logger.Logger) {}
func (failingBuilder) BeSilent()               {}
func (failingBuilder) ConstructTreeString([]string, []float64) (string, error) {
	return "", errors.New("broken: out of memory")
}

// TestHandleTrees_ConstructionFailed answers 422 when the builder fails.
func TestHandleTrees_ConstructionFailed(t *testing.T) {
	r := starttree.NewRegistry()
	require.NoError(t, r.Register("BROKEN", "always fails", func() starttree.Builder { return failingBuilder{} }))
	reg := prometheus.NewRegistry()
	s := server.New(config.Default(),
		server.WithRegistry(r),
		server.WithLogger(logger.Discard()),
		server.WithPrometheusRegistry(reg),
	)

	w := do(t, s, http.MethodPost, "/v1/trees",
		`{"algorithm":"BROKEN","sequences":["A","B","C"],"distances":[0,1,2,1,0,3,2,3,0]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CONSTRUCTION_FAILED", resp.Code)
	assert.Contains(t, resp.Error, "out of memory")
	assert.Contains(t, metricsBody(t, s), `decenttree_constructions_total{algorithm="BROKEN",outcome="construction_failed"} 1`)
}

// TestHandleTrees_BodyTooLarge enforces MaxBodyBytes.
func TestHandleTrees_BodyTooLarge(t *testing.T) {
	s := setupServer(t, func(c *config.Config) { c.Server.MaxBodyBytes = 16 })
	w := do(t, s, http.MethodPost, "/v1/trees", `{"algorithm":"NJ","sequences":["A","B","C"]}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), server.CodeBodyTooLarge)
}

// TestRequestID_ReusesClientID keeps a well-formed client id.
func TestRequestID_ReusesClientID(t *testing.T) {
	s := setupServer(t, nil)
	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(server.RequestIDHeader, id)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, id, w.Header().Get(server.RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(server.RequestIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(server.RequestIDHeader))
}

// TestHandleAlgorithms lists the default registry.
func TestHandleAlgorithms(t *testing.T) {
	s := setupServer(t, nil)
	w := do(t, s, http.MethodGet, "/v1/algorithms", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp server.AlgorithmsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Algorithms, 2)
	assert.Equal(t, "NJ", resp.Algorithms[0].Name)
	assert.Equal(t, "UPGMA", resp.Algorithms[1].Name)
	assert.NotEmpty(t, resp.Algorithms[0].Description)
}

// TestHealthAndMetrics checks the operational endpoints.
func TestHealthAndMetrics(t *testing.T) {
	s := setupServer(t, nil)
	w := do(t, s, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	do(t, s, http.MethodPost, "/v1/trees", `{"algorithm":"nope"}`)
	w = do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `decenttree_constructions_total{algorithm="unknown",outcome="unknown_algorithm"} 1`)
	assert.True(t, bytes.Contains(w.Body.Bytes(), []byte("decenttree_construction_duration_seconds")))
}

// metricsBody scrapes /metrics.
func metricsBody(t *testing.T, s *server.Server) string {
	t.Helper()
	w := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)

	return w.Body.String()
}

// TestHandleTrees_Cache serves a repeated body from the result cache.
func TestHandleTrees_Cache(t *testing.T) {
	body := `{"algorithm":"NJ","sequences":["A","B","C"],"distances":[0,1,2,1,0,3,2,3,0]}`

	s := setupServer(t, nil)
	var first, second server.TreeResponse
	require.NoError(t, json.Unmarshal(do(t, s, http.MethodPost, "/v1/trees", body).Body.Bytes(), &first))
	require.NoError(t, json.Unmarshal(do(t, s, http.MethodPost, "/v1/trees", body).Body.Bytes(), &second))
	assert.False(t, first.Cached)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Tree, second.Tree)
	assert.NotEqual(t, first.RequestID, second.RequestID)
	assert.Contains(t, metricsBody(t, s), `decenttree_constructions_total{algorithm="NJ",outcome="ok"} 2`)

	s = setupServer(t, func(c *config.Config) { c.Server.CacheSize = 0 })
	require.NoError(t, json.Unmarshal(do(t, s, http.MethodPost, "/v1/trees", body).Body.Bytes(), &first))
	require.NoError(t, json.Unmarshal(do(t, s, http.MethodPost, "/v1/trees", body).Body.Bytes(), &second))
	assert.False(t, second.Cached)
}
