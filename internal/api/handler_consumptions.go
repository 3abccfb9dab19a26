package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafes-backend/internal/model"
)

// PatchConsumption handles PUT and PATCH /api/consumptions/:id. Only the
// fields present in the body are written and the stored row is returned.
func (h *Handler) PatchConsumption(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var patch model.ConsumptionPatch
	if !bindJSON(c, &patch) {
		return
	}
	ctx, cancel := withDBTimeout(c, h.queryTimeout)
	defer cancel()

	item, err := h.store.Consumptions().Patch(ctx, id, patch.Assignments())
	if err != nil {
		respondError(c, "consumption", err)
		return
	}
	c.JSON(http.StatusOK, item)
}
