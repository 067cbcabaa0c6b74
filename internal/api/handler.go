package api

import (
	"github.com/gin-gonic/gin"

	"github.com/nathanserezit/centros-comerciales/internal/config"
	"github.com/nathanserezit/centros-comerciales/internal/importer"
	"github.com/nathanserezit/centros-comerciales/internal/market"
	"github.com/nathanserezit/centros-comerciales/internal/store"
)

// Handler procesador de la API
type Handler struct {
	registry  *store.Registry
	processor *importer.Processor
	cfg       *config.AppConfig
}

// NewHandler crea el procesador de la API
func NewHandler(registry *store.Registry, processor *importer.Processor, cfg *config.AppConfig) *Handler {
	return &Handler{
		registry:  registry,
		processor: processor,
		cfg:       cfg,
	}
}

// market cargador de referencia construido con las rutas vigentes.
// Se construye por petición para que los cambios de configuración
// surtan efecto sin reiniciar.
func (h *Handler) market() *market.Loader {
	return market.NewLoader(config.MarketDataPath(h.cfg), config.CentersDataPath(h.cfg))
}

// RegisterRoutes registra las rutas de la API
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// Estado del sistema
	router.GET("/status", h.GetStatus)

	// Subida de datos de centro
	router.POST("/upload", h.Upload)

	// Gestión de centros de la sesión
	router.GET("/centers", h.ListCenters)
	router.POST("/centers/select", h.SelectCenter)
	router.DELETE("/centers/:name", h.DeleteCenter)

	// Dashboard del centro activo
	router.GET("/dashboard", h.GetDashboard)

	// Datos del mercado
	router.GET("/market", h.GetMarket)
	router.GET("/market/rankings", h.GetMarketRankings)
	router.GET("/market/centers", h.GetMarketCenters)

	// Comparativa centro vs sector
	router.GET("/comparison", h.GetComparison)

	// Configuración
	router.GET("/config", h.GetConfig)
	router.PATCH("/config", h.UpdateConfig)
}
