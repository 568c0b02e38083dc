package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sftwrlab/hwlab-backend/internal/resources/domain"
)

type quantityReq struct {
	// Quantity is optional in the body; absent means one unit. An explicit
	// zero or negative value is rejected.
	Quantity *int `json:"quantity"`
}

func (q quantityReq) value() int {
	if q.Quantity == nil {
		return 1
	}
	return *q.Quantity
}

func (h *Handler) list(c *gin.Context) {
	projectID := c.Param("projectId")

	items, err := h.store.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) checkout(c *gin.Context) {
	h.adjust(c, "Checked out", h.store.Checkout)
}

func (h *Handler) checkin(c *gin.Context) {
	h.adjust(c, "Checked in", h.store.Checkin)
}

type adjustFn func(ctx context.Context, projectID, hwsetID string, qty int) (*domain.Resource, error)

func (h *Handler) adjust(c *gin.Context, verb string, fn adjustFn) {
	projectID := c.Param("projectId")
	hwsetID := c.Param("hwsetId")

	// An empty body means the default quantity of one.
	var req quantityReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	qty := req.value()
	if qty <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "quantity must be a positive integer"})
		return
	}

	res, err := fn(c.Request.Context(), projectID, hwsetID, qty)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "hardware set not found"})
		case errors.Is(err, domain.ErrInsufficientStock), errors.Is(err, domain.ErrExceedsAllocation):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"message":   fmt.Sprintf("%s %d units of %s", verb, qty, hwsetID),
		"available": res.Available,
		"allocated": res.Allocated,
	})
}
