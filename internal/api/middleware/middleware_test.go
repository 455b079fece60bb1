package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func get(router *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	router := newRouter(CORS([]string{"https://app.example.com"}))

	w := get(router, map[string]string{"Origin": "https://app.example.com"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	router := newRouter(CORS([]string{"https://app.example.com"}))

	w := get(router, map[string]string{"Origin": "https://evil.example.com"})

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSEmptyAllowsAll(t *testing.T) {
	router := newRouter(CORS(nil))

	w := get(router, map[string]string{"Origin": "https://anywhere.example.com"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitEnforcesBurst(t *testing.T) {
	router := newRouter(RateLimit(RateLimitConfig{RequestsPerSecond: 1, Burst: 2}))

	assert.Equal(t, http.StatusOK, get(router, nil).Code)
	assert.Equal(t, http.StatusOK, get(router, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(router, nil).Code)
}

func TestRequestIDGenerated(t *testing.T) {
	router := newRouter(RequestID())

	w := get(router, nil)

	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestIDEchoed(t *testing.T) {
	router := newRouter(RequestID())

	w := get(router, map[string]string{RequestIDHeader: "client-supplied"})

	assert.Equal(t, "client-supplied", w.Header().Get(RequestIDHeader))
}
