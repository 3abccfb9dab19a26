package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"cafes-backend/internal/model"
	"cafes-backend/internal/store"
)

// resourceHandlers serves the CRUD endpoints of one entity. T is the stored
// record and I its create/full-update profile.
type resourceHandlers[T any, I model.Input[T]] struct {
	res     *store.Resource[T]
	label   string
	timeout time.Duration
}

func newResourceHandlers[T any, I model.Input[T]](res *store.Resource[T], label string, timeout time.Duration) *resourceHandlers[T, I] {
	return &resourceHandlers[T, I]{res: res, label: label, timeout: timeout}
}

// list handles GET /.
func (h *resourceHandlers[T, I]) list(c *gin.Context) {
	ctx, cancel := withDBTimeout(c, h.timeout)
	defer cancel()

	items, err := h.res.List(ctx)
	if err != nil {
		respondError(c, h.label, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// listBy handles GET /<foreign>/:id for the given foreign-key column.
func (h *resourceHandlers[T, I]) listBy(column model.Column) gin.HandlerFunc {
	return func(c *gin.Context) {
		fk, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
			return
		}

		ctx, cancel := withDBTimeout(c, h.timeout)
		defer cancel()

		items, err := h.res.List(ctx, store.By(column, fk))
		if err != nil {
			respondError(c, h.label, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// get handles GET /:id.
func (h *resourceHandlers[T, I]) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx, cancel := withDBTimeout(c, h.timeout)
	defer cancel()

	item, err := h.res.Get(ctx, id)
	if err != nil {
		respondError(c, h.label, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// create handles POST /.
func (h *resourceHandlers[T, I]) create(c *gin.Context) {
	var in I
	if !bindJSON(c, &in) {
		return
	}
	ctx, cancel := withDBTimeout(c, h.timeout)
	defer cancel()

	item := in.Record(0)
	if err := h.res.Create(ctx, &item); err != nil {
		respondError(c, h.label, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// replace handles PUT /:id. The response echoes the request rather than
// re-reading the row.
func (h *resourceHandlers[T, I]) replace(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in I
	if !bindJSON(c, &in) {
		return
	}
	ctx, cancel := withDBTimeout(c, h.timeout)
	defer cancel()

	if err := h.res.Replace(ctx, id, in.Columns()); err != nil {
		respondError(c, h.label, err)
		return
	}
	c.JSON(http.StatusOK, in.Record(id))
}

// remove handles DELETE /:id.
func (h *resourceHandlers[T, I]) remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx, cancel := withDBTimeout(c, h.timeout)
	defer cancel()

	if err := h.res.Delete(ctx, id); err != nil {
		respondError(c, h.label, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": h.label + " deleted"})
}
