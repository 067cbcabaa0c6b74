package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nathanserezit/centros-comerciales/internal/model"
	"github.com/nathanserezit/centros-comerciales/internal/store"
)

// SelectCenterRequest petición de cambio de centro activo
type SelectCenterRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListCenters lista los centros de la sesión
// GET /api/centers
func (h *Handler) ListCenters(c *gin.Context) {
	activeName := ""
	if active, ok := h.registry.Active(); ok {
		activeName = active.Name
	}

	profiles := h.registry.List()
	centers := make([]model.CenterSummary, 0, len(profiles))
	for _, p := range profiles {
		centers = append(centers, p.Summarize(p.Name == activeName))
	}

	c.JSON(http.StatusOK, gin.H{"centers": centers})
}

// SelectCenter cambia el centro activo
// POST /api/centers/select
func (h *Handler) SelectCenter(c *gin.Context) {
	var req SelectCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "formato de petición no válido"})
		return
	}

	if err := h.registry.SetActive(req.Name); err != nil {
		if errors.Is(err, store.ErrCenterNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "centro no encontrado: " + req.Name})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "centro activo actualizado"})
}

// DeleteCenter elimina un centro de la sesión
// DELETE /api/centers/:name
func (h *Handler) DeleteCenter(c *gin.Context) {
	name := c.Param("name")

	if err := h.registry.Remove(name); err != nil {
		if errors.Is(err, store.ErrCenterNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "centro no encontrado: " + name})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "centro eliminado"})
}
