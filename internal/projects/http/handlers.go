package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sftwrlab/hwlab-backend/internal/projects/domain"
	resdomain "github.com/sftwrlab/hwlab-backend/internal/resources/domain"
)

type createReq struct {
	ProjectID   string `json:"projectId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	HWSet1Total int    `json:"default_hwset1_total"`
	HWSet2Total int    `json:"default_hwset2_total"`
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	projectID := c.Param("projectId")

	p, err := h.store.GetByID(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	req.ProjectID = strings.TrimSpace(req.ProjectID)
	req.Name = strings.TrimSpace(req.Name)
	if req.ProjectID == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "projectId and name are required"})
		return
	}

	p, err := h.store.Create(c.Request.Context(), domain.Project{
		ProjectID:   req.ProjectID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateID) {
			c.JSON(http.StatusConflict, gin.H{"ok": false, "error": "projectId already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	// The project exists at this point; a seeding failure should not turn the
	// create into an error response.
	seeded, err := h.seeder.SeedDefaults(c.Request.Context(), p.ProjectID, req.HWSet1Total, req.HWSet2Total)
	if err != nil {
		log.Printf("seed default resources for %s: %v", p.ProjectID, err)
		seeded = []resdomain.Resource{}
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok":        true,
		"projectId": p.ProjectID,
		"project":   p,
		"resources": seeded,
	})
}
