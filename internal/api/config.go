package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nathanserezit/centros-comerciales/internal/config"
)

// ConfigResponse configuración visible de la aplicación
type ConfigResponse struct {
	Port        int    `json:"port"`
	DevMode     bool   `json:"devMode"`
	DataDir     string `json:"dataDir"`
	MarketFile  string `json:"marketFile"`
	CentersFile string `json:"centersFile"`
	DefaultType string `json:"defaultType"`
}

// UpdateConfigRequest petición de actualización parcial de configuración
type UpdateConfigRequest struct {
	Updates map[string]interface{} `json:"updates"`
}

// GetConfig devuelve la configuración actual
// GET /api/config
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, ConfigResponse{
		Port:        h.cfg.Server.Port,
		DevMode:     h.cfg.Server.DevMode,
		DataDir:     h.cfg.Data.DataDir,
		MarketFile:  h.cfg.Data.MarketFile,
		CentersFile: h.cfg.Data.CentersFile,
		DefaultType: h.cfg.Center.DefaultType,
	})
}

// UpdateConfig actualiza la configuración y la persiste en config.toml
// PATCH /api/config
// El puerto no se puede cambiar en caliente; requiere reinicio.
func (h *Handler) UpdateConfig(c *gin.Context) {
	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "formato de petición no válido"})
		return
	}

	for key, value := range req.Updates {
		switch key {
		case "dataDir":
			if v, ok := value.(string); ok {
				h.cfg.Data.DataDir = v
			}
		case "marketFile":
			if v, ok := value.(string); ok {
				h.cfg.Data.MarketFile = v
			}
		case "centersFile":
			if v, ok := value.(string); ok {
				h.cfg.Data.CentersFile = v
			}
		case "defaultType":
			if v, ok := value.(string); ok {
				h.cfg.Center.DefaultType = v
			}
		case "devMode":
			if v, ok := value.(bool); ok {
				h.cfg.Server.DevMode = v
			}
		default:
			// Claves desconocidas se ignoran sin romper la actualización
			continue
		}
	}

	if err := config.SaveConfig(h.cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo guardar la configuración"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "configuración actualizada"})
}
