package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nathanserezit/centros-comerciales/internal/aggregate"
	"github.com/nathanserezit/centros-comerciales/internal/compare"
	"github.com/nathanserezit/centros-comerciales/internal/model"
	"github.com/nathanserezit/centros-comerciales/internal/util"
)

// MetricTrend variación porcentual de una métrica entre el primer y el
// último periodo de la serie
type MetricTrend struct {
	Metric    string  `json:"metrica"`
	Change    float64 `json:"variacion"`
	Undefined bool    `json:"indefinido,omitempty"`
}

// MarketInsight grupo destacado del mercado por ingresos
type MarketInsight struct {
	Group string  `json:"grupo"`
	Delta float64 `json:"delta"` // ingresos frente a la media de los grupos, en %
	Label string  `json:"etiqueta"`
}

// DashboardResponse datos del panel del centro activo
type DashboardResponse struct {
	Center          model.CenterSummary  `json:"center"`
	Period          string               `json:"period"`
	Series          []model.MetricRecord `json:"series"`
	Trends          []MetricTrend        `json:"trends"`
	SectorAverages  model.SectorAverages `json:"sectorAverages"`
	MarketSource    string               `json:"marketSource"`
	TopZone         *MarketInsight       `json:"topZone,omitempty"`
	TopBusinessType *MarketInsight       `json:"topBusinessType,omitempty"`
	Diversification int                  `json:"diversification"` // zonas x tipos de negocio
}

// GetDashboard datos del panel para el centro activo
// GET /api/dashboard?period=monthly|quarterly|annual
func (h *Handler) GetDashboard(c *gin.Context) {
	active, ok := h.registry.Active()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no hay ningún centro cargado"})
		return
	}

	granularity := aggregate.ParseGranularity(c.Query("period"))

	ds := &model.Dataset{Records: active.Raw, Columns: trackedColumns()}
	series, err := aggregate.Rollup(ds, granularity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	marketData := h.market().Load()

	resp := DashboardResponse{
		Center:          active.Summarize(true),
		Period:          string(granularity),
		Series:          series,
		Trends:          seriesTrends(series),
		SectorAverages:  marketData.Averages,
		MarketSource:    string(marketData.Source),
		Diversification: len(marketData.Zones) * len(marketData.BusinessTypes),
	}

	if top, delta, ok := compare.TopGroup(marketData.Zones, model.ColIngresosTotales); ok {
		resp.TopZone = newInsight(top.Key, delta)
	}
	if top, delta, ok := compare.TopGroup(marketData.BusinessTypes, model.ColIngresosTotales); ok {
		resp.TopBusinessType = newInsight(top.Key, delta)
	}

	c.JSON(http.StatusOK, resp)
}

// newInsight grupo destacado con la etiqueta de presentación del panel.
func newInsight(group string, delta float64) *MarketInsight {
	return &MarketInsight{
		Group: group,
		Delta: round2(delta),
		Label: util.FormatPercent(delta) + " vs promedio",
	}
}

// trackedColumns mapa de presencia para un dataset ya normalizado en la
// subida: las seis métricas seguidas están garantizadas por la validación.
func trackedColumns() map[string]bool {
	cols := make(map[string]bool, len(model.TrackedMetrics))
	for _, col := range model.TrackedMetrics {
		cols[col] = true
	}
	return cols
}

// seriesTrends variación primer periodo a último por métrica seguida.
func seriesTrends(series []model.MetricRecord) []MetricTrend {
	trends := make([]MetricTrend, 0, len(model.TrackedMetrics))
	if len(series) == 0 {
		return trends
	}

	first := series[0]
	last := series[len(series)-1]

	for _, col := range model.TrackedMetrics {
		trend := MetricTrend{Metric: col}
		base := first.Metric(col)
		if base == 0 {
			trend.Undefined = true
		} else {
			trend.Change = round2((last.Metric(col)/base - 1) * 100)
		}
		trends = append(trends, trend)
	}
	return trends
}
