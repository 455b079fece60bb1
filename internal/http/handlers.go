package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/Scratchpad/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/Scratchpad/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/Scratchpad/backend/internal/sandbox"
	"github.com/GriffinCanCode/Scratchpad/backend/internal/service"
	"github.com/GriffinCanCode/Scratchpad/backend/internal/types"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	resolver *sandbox.Resolver
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, resolver *sandbox.Resolver, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	return &Handlers{
		registry: registry,
		resolver: resolver,
		metrics:  metrics,
		logger:   logger,
	}
}

// Root handles basic liveness check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Scratchpad Service (Go)",
		"version": "0.2.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
		"scratch_dir":      h.resolver.Root(),
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	services := h.registry.List(category)
	stats := h.registry.Stats()

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    stats,
	})
}

// DiscoverServices discovers relevant services for an intent
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 5
	}

	services := h.registry.Discover(req.Intent, limit)

	c.JSON(http.StatusOK, gin.H{
		"query":    req.Intent,
		"services": services,
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var appCtx *types.Context
	if req.SessionID != nil {
		appCtx = &types.Context{SessionID: req.SessionID}
	}

	timer := monitoring.NewTimer(h.metrics, serviceOf(req.ToolID), req.ToolID)

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		timer.Stop("error")
		h.metrics.RecordToolError(serviceOf(req.ToolID), req.ToolID, "dispatch")
		h.logger.Error("tool execution failed",
			zap.String("tool_id", req.ToolID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.Success {
		timer.Stop("success")
	} else {
		timer.Stop("failure")
	}

	c.JSON(http.StatusOK, result)
}

// serviceOf extracts the service prefix from a tool ID.
func serviceOf(toolID string) string {
	if i := strings.Index(toolID, "."); i > 0 {
		return toolID[:i]
	}
	return toolID
}
