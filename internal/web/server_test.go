package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmaia/critic/internal/ai"
	"github.com/rmaia/critic/internal/analyzer"
	"github.com/rmaia/critic/internal/metrics"
	"github.com/rmaia/critic/internal/scan/security"
	"github.com/rmaia/critic/internal/scan/style"
	"github.com/rmaia/critic/pkg/types"
)

func setupServer() *Server {
	reg := analyzer.NewRegistry()
	reg.Register(security.New())
	reg.Register(style.New())

	a := analyzer.New(reg, metrics.NewCollector(metrics.DefaultParams()), analyzer.DefaultOptions(), zerolog.Nop())
	return NewServer(":0", a, &ai.Reviewer{}, 30*time.Second, zerolog.Nop())
}

func TestServerReviewEndpoint(t *testing.T) {
	s := setupServer()

	body := `{"code": "import os\nos.system(cmd)\n", "language": "python"}`
	req := httptest.NewRequest(http.MethodPost, "/api/review", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result types.ReviewResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, types.LanguagePython, result.Language)

	found := false
	for _, issue := range result.Issues {
		if issue.Severity == types.SeverityHigh && issue.Category == types.CategorySecurity {
			found = true
		}
	}
	assert.True(t, found, "expected an os.system finding")
}

func TestServerHealthEndpoint(t *testing.T) {
	s := setupServer()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()

	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, []interface{}{"security", "style"}, resp["agents"])
}

func TestServerUnknownRoute(t *testing.T) {
	s := setupServer()

	req := httptest.NewRequest(http.MethodGet, "/api/missing", nil)
	w := httptest.NewRecorder()

	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
