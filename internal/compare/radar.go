package compare

import (
	"github.com/nathanserezit/centros-comerciales/internal/model"
)

// RadarAxis un eje del perfil multi-métrica normalizado a 0-100.
type RadarAxis struct {
	Label       string  `json:"eje"`
	CenterValue float64 `json:"valor_centro"`
	SectorValue float64 `json:"valor_sector"`
}

// radarAxes etiquetas cortas de los seis ejes y si la métrica es
// porcentual-nativa (se usa tal cual como su propio valor 0-100).
var radarAxes = []struct {
	col        string
	label      string
	percentage bool
}{
	{model.ColTraficoPeatonal, "Tráfico", false},
	{model.ColVentasPorM2, "Ventas/m²", false},
	{model.ColTasaOcupacion, "Ocupación", true},
	{model.ColTiempoPermanencia, "Tiempo", false},
	{model.ColTasaConversion, "Conversión", true},
	{model.ColIngresosTotales, "Ingresos", false},
}

// RadarProfile normaliza las métricas a una escala común 0-100 para el
// gráfico de radar. Los ejes escalados se centran en 50: igualar el promedio
// del sector da 50 exacto y el doble satura en 100. Las métricas porcentuales
// pasan directas, con el promedio sectorial como contorno de referencia.
func RadarProfile(latest model.MetricRecord, avg model.SectorAverages) []RadarAxis {
	out := make([]RadarAxis, 0, len(radarAxes))

	for _, axis := range radarAxes {
		centerVal := latest.Metric(axis.col)
		sectorVal := avg.Metric(axis.col)

		a := RadarAxis{Label: axis.label}
		if axis.percentage {
			a.CenterValue = centerVal
			a.SectorValue = sectorVal
		} else {
			a.SectorValue = 50
			if sectorVal != 0 {
				a.CenterValue = min100(centerVal / sectorVal * 50)
			}
		}
		out = append(out, a)
	}

	return out
}

func min100(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}
