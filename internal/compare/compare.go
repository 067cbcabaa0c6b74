package compare

import (
	"github.com/nathanserezit/centros-comerciales/internal/model"
)

// Band clasificación de una métrica del centro frente al sector.
type Band string

const (
	BandSuperior Band = "superior"
	BandPromedio Band = "promedio"
	BandInferior Band = "inferior"
)

// NearAverageThreshold umbral presentacional: |delta| <= 5 se agrupa aparte
// como "rendimiento promedio" en el frontend, por encima de la banda binaria.
const NearAverageThreshold = 5.0

// MetricComparison comparación de una métrica frente al promedio del sector.
// Se recalcula en cada petición; no se persiste.
type MetricComparison struct {
	Metric       string  `json:"metrica"`
	Label        string  `json:"nombre"`
	Unit         string  `json:"unidad"`
	CenterValue  float64 `json:"valor_centro"`
	SectorValue  float64 `json:"valor_sector"`
	PercentDelta float64 `json:"rendimiento"`
	Band         Band    `json:"banda"`
	Undefined    bool    `json:"indefinido,omitempty"`
	NearAverage  bool    `json:"cerca_promedio"`
}

// metricInfo etiqueta y unidad de presentación por métrica seguida.
var metricInfo = []struct {
	col   string
	label string
	unit  string
}{
	{model.ColTraficoPeatonal, "Tráfico Peatonal", "visitantes/día"},
	{model.ColVentasPorM2, "Ventas por m²", "€/m²/mes"},
	{model.ColTasaOcupacion, "Tasa de Ocupación", "%"},
	{model.ColTiempoPermanencia, "Tiempo Permanencia", "minutos"},
	{model.ColTasaConversion, "Tasa de Conversión", "%"},
	{model.ColIngresosTotales, "Ingresos Totales", "€/mes"},
}

// Compare calcula el delta porcentual y la banda de cada métrica seguida.
// Guardia de cero uniforme: con promedio sectorial cero el delta queda en 0
// y la métrica se marca como indefinida en lugar de dividir por cero.
func Compare(latest model.MetricRecord, avg model.SectorAverages) []MetricComparison {
	out := make([]MetricComparison, 0, len(metricInfo))

	for _, info := range metricInfo {
		centerVal := latest.Metric(info.col)
		sectorVal := avg.Metric(info.col)

		cmp := MetricComparison{
			Metric:      info.col,
			Label:       info.label,
			Unit:        info.unit,
			CenterValue: centerVal,
			SectorValue: sectorVal,
		}

		if sectorVal == 0 {
			cmp.Undefined = true
		} else {
			cmp.PercentDelta = (centerVal/sectorVal - 1) * 100
		}

		switch {
		case cmp.PercentDelta > 0:
			cmp.Band = BandSuperior
		case cmp.PercentDelta < 0:
			cmp.Band = BandInferior
		default:
			cmp.Band = BandPromedio
		}

		if cmp.PercentDelta >= -NearAverageThreshold && cmp.PercentDelta <= NearAverageThreshold {
			cmp.NearAverage = true
		}

		out = append(out, cmp)
	}

	return out
}

// MarketScore media de los deltas estrictamente positivos. Las métricas con
// rendimiento igual o inferior al sector quedan fuera del cálculo: el score
// solo promedia lo que el centro gana al mercado, tal como lo muestra el
// cuadro de posicionamiento.
func MarketScore(comparisons []MetricComparison) float64 {
	var total float64
	var count int
	for _, c := range comparisons {
		if c.PercentDelta > 0 {
			total += c.PercentDelta
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// ScoreLabel etiqueta de posicionamiento del score frente al mercado.
func ScoreLabel(score float64) string {
	switch {
	case score > 10:
		return "Superior"
	case score > 0:
		return "Promedio"
	default:
		return "Inferior"
	}
}

// BestMetric la métrica con mayor delta porcentual.
func BestMetric(comparisons []MetricComparison) (MetricComparison, bool) {
	if len(comparisons) == 0 {
		return MetricComparison{}, false
	}
	best := comparisons[0]
	for _, c := range comparisons[1:] {
		if c.PercentDelta > best.PercentDelta {
			best = c
		}
	}
	return best, true
}

// AverageDelta media del delta sobre todas las métricas comparadas.
func AverageDelta(comparisons []MetricComparison) float64 {
	if len(comparisons) == 0 {
		return 0
	}
	var total float64
	for _, c := range comparisons {
		total += c.PercentDelta
	}
	return total / float64(len(comparisons))
}

// SuperiorCount número de métricas por encima del sector.
func SuperiorCount(comparisons []MetricComparison) int {
	count := 0
	for _, c := range comparisons {
		if c.PercentDelta > 0 {
			count++
		}
	}
	return count
}
