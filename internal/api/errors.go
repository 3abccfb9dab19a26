package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cafes-backend/internal/logger"
	"cafes-backend/internal/store"
)

// respondError writes the status and message for err. label names the
// entity in messages, e.g. "client not found".
func respondError(c *gin.Context, label string, err error) {
	var status int
	var msg string

	switch {
	case errors.Is(err, store.ErrNotFound):
		status, msg = http.StatusNotFound, label+" not found"
	case errors.Is(err, store.ErrConflict):
		status, msg = http.StatusConflict, label+" already exists"
	case errors.Is(err, store.ErrInvalidInput):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, store.ErrUnknownUser):
		status, msg = http.StatusUnauthorized, "user not found"
	case errors.Is(err, store.ErrWrongPassword):
		status, msg = http.StatusUnauthorized, "incorrect password"
	case errors.Is(err, store.ErrUnauthorized):
		status, msg = http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, store.ErrConnection):
		status, msg = http.StatusInternalServerError, "database unavailable"
	default:
		status, msg = http.StatusInternalServerError, "failed to process "+label
	}

	rlog := logger.FromContext(c.Request.Context()).WithField("entity", label)
	if status >= http.StatusInternalServerError {
		rlog.WithError(err).Error("request failed")
	} else {
		rlog.WithError(err).Debug("request rejected")
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
