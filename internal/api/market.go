package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nathanserezit/centros-comerciales/internal/compare"
	"github.com/nathanserezit/centros-comerciales/internal/model"
)

// rankableMetrics métricas admitidas en el ranking de grupos del mercado.
var rankableMetrics = map[string]bool{
	model.ColTraficoPeatonal: true,
	model.ColIngresosTotales: true,
	model.ColTamanoM2:        true,
	model.ColEmpleados:       true,
	model.ColTasaOcupacion:   true,
}

// RankingsResponse grupos del mercado ordenados por una métrica
type RankingsResponse struct {
	Metric        string                 `json:"metrica"`
	Order         string                 `json:"orden"`
	Zones         []model.GroupAggregate `json:"zonas"`
	BusinessTypes []model.GroupAggregate `json:"tipos_negocio"`
}

// GetMarket datos agregados del mercado
// GET /api/market
func (h *Handler) GetMarket(c *gin.Context) {
	c.JSON(http.StatusOK, h.market().Load())
}

// GetMarketRankings grupos del mercado ordenados por una métrica
// GET /api/market/rankings?metric=ingresos_totales&order=desc
func (h *Handler) GetMarketRankings(c *gin.Context) {
	metric := c.DefaultQuery("metric", model.ColIngresosTotales)
	if !rankableMetrics[metric] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "métrica no reconocida: " + metric})
		return
	}

	order := compare.ParseOrder(c.Query("order"))
	data := h.market().Load()

	c.JSON(http.StatusOK, RankingsResponse{
		Metric:        metric,
		Order:         string(order),
		Zones:         compare.RankGroups(data.Zones, metric, order),
		BusinessTypes: compare.RankGroups(data.BusinessTypes, metric, order),
	})
}

// GetMarketCenters rendimiento anónimo de los centros del dataset individual
// GET /api/market/centers
func (h *Handler) GetMarketCenters(c *gin.Context) {
	centers, err := h.market().CenterPerformance()
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"centers": []model.CenterPerformance{},
			"error":   "el dataset de centros individuales no está disponible",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"centers": centers})
}
