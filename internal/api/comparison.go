package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nathanserezit/centros-comerciales/internal/compare"
	"github.com/nathanserezit/centros-comerciales/internal/model"
)

// ComparisonResponse comparativa del centro activo frente al sector
type ComparisonResponse struct {
	Center        model.CenterSummary        `json:"center"`
	Period        string                     `json:"period"` // periodo mensual comparado
	MarketSource  string                     `json:"marketSource"`
	Comparisons   []compare.MetricComparison `json:"comparisons"`
	Radar         []compare.RadarAxis        `json:"radar"`
	MarketScore   float64                    `json:"marketScore"`
	ScoreLabel    string                     `json:"scoreLabel"`
	BestMetric    *compare.MetricComparison  `json:"bestMetric,omitempty"`
	AverageDelta  float64                    `json:"averageDelta"`
	SuperiorCount int                        `json:"superiorCount"` // métricas por encima del sector, de seis
}

// GetComparison comparativa del último mes del centro activo contra el sector
// GET /api/comparison
func (h *Handler) GetComparison(c *gin.Context) {
	active, ok := h.registry.Active()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no hay ningún centro cargado"})
		return
	}

	latest, ok := active.Latest()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "el centro no tiene datos mensuales"})
		return
	}

	marketData := h.market().Load()
	comparisons := compare.Compare(latest, marketData.Averages)
	score := compare.MarketScore(comparisons)

	resp := ComparisonResponse{
		Center:        active.Summarize(true),
		Period:        latest.Period,
		MarketSource:  string(marketData.Source),
		Comparisons:   comparisons,
		Radar:         compare.RadarProfile(latest, marketData.Averages),
		MarketScore:   round2(score),
		ScoreLabel:    compare.ScoreLabel(score),
		AverageDelta:  round2(compare.AverageDelta(comparisons)),
		SuperiorCount: compare.SuperiorCount(comparisons),
	}

	if best, ok := compare.BestMetric(comparisons); ok {
		resp.BestMetric = &best
	}

	c.JSON(http.StatusOK, resp)
}
