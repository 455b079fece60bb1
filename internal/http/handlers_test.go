package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/Scratchpad/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/Scratchpad/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/Scratchpad/backend/internal/providers/scratchpad"
	"github.com/GriffinCanCode/Scratchpad/backend/internal/sandbox"
	"github.com/GriffinCanCode/Scratchpad/backend/internal/service"
	"github.com/GriffinCanCode/Scratchpad/backend/internal/types"
)

var testMetrics = monitoring.NewMetrics()

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	resolver, err := sandbox.New(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	registry := service.NewRegistry()
	require.NoError(t, registry.Register(scratchpad.NewProvider(resolver, zap.NewNop())))

	logger := &logging.Logger{Logger: zap.NewNop()}
	handlers := NewHandlers(registry, resolver, testMetrics, logger)

	router := gin.New()
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRootEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "online")
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestListServicesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/services", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Services []types.Service `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Services, 1)
	assert.Equal(t, "scratchpad", resp.Services[0].ID)
}

func TestDiscoverServicesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/services/discover", map[string]interface{}{
		"intent": "create a file in the scratchpad",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "scratchpad")
}

func TestDiscoverServicesRequiresIntent(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/services/discover", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecuteServiceEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/services/execute", map[string]interface{}{
		"tool_id": "scratchpad.create_file",
		"params": map[string]interface{}{
			"path":    "notes.txt",
			"content": "hello",
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var result types.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "Created notes.txt", result.Message())
}

func TestExecuteServiceUnknownService(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/services/execute", map[string]interface{}{
		"tool_id": "ghost.tool",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestExecuteServiceRequiresToolID(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/services/execute", map[string]interface{}{
		"params": map[string]interface{}{},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
