package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"cafes-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store        store.Store
	queryTimeout time.Duration
}

// NewHandler creates a new API handler. A zero queryTimeout leaves request
// contexts without a deadline.
func NewHandler(s store.Store, queryTimeout time.Duration) *Handler {
	return &Handler{
		store:        s,
		queryTimeout: queryTimeout,
	}
}

// Welcome handles GET /.
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Cafes Marloy API. Use /api/<resource>"})
}

// Health handles GET /healthz by pinging the database.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := withDBTimeout(c, h.queryTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		respondError(c, "database", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func withDBTimeout(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}

// pathID parses the :id path parameter, answering 400 when it is not a
// positive integer.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return false
	}
	return true
}
