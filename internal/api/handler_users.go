package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafes-backend/internal/model"
)

// Register handles POST /api/users/register.
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx, cancel := withDBTimeout(c, h.queryTimeout)
	defer cancel()

	user, err := h.store.Users().Register(ctx, req)
	if err != nil {
		respondError(c, "user", err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login handles POST /api/users/login. No session is issued; the caller
// gets the user record back on success.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx, cancel := withDBTimeout(c, h.queryTimeout)
	defer cancel()

	user, err := h.store.Users().Authenticate(ctx, req.Name, req.Password)
	if err != nil {
		respondError(c, "user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}
