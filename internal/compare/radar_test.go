package compare

import (
	"testing"

	"github.com/nathanserezit/centros-comerciales/internal/model"
)

func byAxis(axes []RadarAxis, label string) RadarAxis {
	for _, a := range axes {
		if a.Label == label {
			return a
		}
	}
	return RadarAxis{}
}

func TestRadarEscalado(t *testing.T) {
	latest := model.MetricRecord{
		FootTraffic:  100, // igual al sector: 50 exacto
		SalesPerM2:   150, // 1.5x: 75
		DwellTime:    300, // 3x: satura en 100
		TotalRevenue: 50,  // 0.5x: 25
	}
	avg := flatSector(100)

	axes := RadarProfile(latest, avg)
	if len(axes) != 6 {
		t.Fatalf("ejes = %d, se esperaban 6", len(axes))
	}

	cases := []struct {
		label string
		want  float64
	}{
		{"Tráfico", 50},
		{"Ventas/m²", 75},
		{"Tiempo", 100},
		{"Ingresos", 25},
	}
	for _, tc := range cases {
		axis := byAxis(axes, tc.label)
		if !approx(axis.CenterValue, tc.want) {
			t.Errorf("%s: valor centro = %v, se esperaba %v", tc.label, axis.CenterValue, tc.want)
		}
		if !approx(axis.SectorValue, 50) {
			t.Errorf("%s: el contorno del sector en ejes escalados es 50, llegó %v", tc.label, axis.SectorValue)
		}
	}
}

func TestRadarMetricasPorcentuales(t *testing.T) {
	latest := model.MetricRecord{
		OccupancyRate:  82.5,
		ConversionRate: 27,
	}
	avg := model.SectorAverages{TasaOcupacion: 75.5, TasaConversion: 26.4}

	axes := RadarProfile(latest, avg)

	ocupacion := byAxis(axes, "Ocupación")
	if !approx(ocupacion.CenterValue, 82.5) || !approx(ocupacion.SectorValue, 75.5) {
		t.Errorf("ocupación = %v/%v, las métricas porcentuales pasan directas", ocupacion.CenterValue, ocupacion.SectorValue)
	}

	conversion := byAxis(axes, "Conversión")
	if !approx(conversion.CenterValue, 27) || !approx(conversion.SectorValue, 26.4) {
		t.Errorf("conversión = %v/%v", conversion.CenterValue, conversion.SectorValue)
	}
}

func TestRadarSectorCero(t *testing.T) {
	latest := model.MetricRecord{FootTraffic: 500}
	axes := RadarProfile(latest, model.SectorAverages{})

	trafico := byAxis(axes, "Tráfico")
	if trafico.CenterValue != 0 {
		t.Errorf("con sector cero el eje escalado queda en 0, llegó %v", trafico.CenterValue)
	}
}
