package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse estado del sistema
type StatusResponse struct {
	Initialized  bool   `json:"initialized"`  // hay al menos un centro cargado
	ActiveCenter string `json:"activeCenter"` // nombre del centro activo
	CenterCount  int    `json:"centerCount"`  // centros en la sesión
	MarketSource string `json:"marketSource"` // dataset o fallback
	LastUpload   string `json:"lastUpload"`   // marca temporal de la última subida
}

// GetStatus estado de la sesión
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{
		CenterCount:  h.registry.Count(),
		MarketSource: string(h.market().Load().Source),
	}

	if active, ok := h.registry.Active(); ok {
		resp.Initialized = true
		resp.ActiveCenter = active.Name
		resp.LastUpload = active.UploadedAt.Format("2006-01-02 15:04:05")
	}

	c.JSON(http.StatusOK, resp)
}
