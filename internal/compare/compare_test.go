package compare

import (
	"math"
	"testing"

	"github.com/nathanserezit/centros-comerciales/internal/model"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// sector de referencia uniforme para leer los deltas directamente
func flatSector(v float64) model.SectorAverages {
	return model.SectorAverages{
		TraficoPeatonal:   v,
		VentasPorM2:       v,
		TasaOcupacion:     v,
		TiempoPermanencia: v,
		TasaConversion:    v,
		IngresosTotales:   v,
	}
}

func byMetric(comparisons []MetricComparison, col string) MetricComparison {
	for _, c := range comparisons {
		if c.Metric == col {
			return c
		}
	}
	return MetricComparison{}
}

func TestCompareDeltasYBandas(t *testing.T) {
	latest := model.MetricRecord{
		FootTraffic:    150, // +50%
		SalesPerM2:     50,  // -50%
		OccupancyRate:  90,  // -10%
		DwellTime:      100, // 0%
		ConversionRate: 104, // +4%
		TotalRevenue:   97,  // -3%
	}

	comparisons := Compare(latest, flatSector(100))
	if len(comparisons) != 6 {
		t.Fatalf("comparaciones = %d, se esperaban 6", len(comparisons))
	}

	trafico := byMetric(comparisons, model.ColTraficoPeatonal)
	if !approx(trafico.PercentDelta, 50) || trafico.Band != BandSuperior {
		t.Errorf("tráfico: delta %v banda %s", trafico.PercentDelta, trafico.Band)
	}
	if trafico.NearAverage {
		t.Error("un delta de +50 no está cerca del promedio")
	}

	ventas := byMetric(comparisons, model.ColVentasPorM2)
	if !approx(ventas.PercentDelta, -50) || ventas.Band != BandInferior {
		t.Errorf("ventas/m²: delta %v banda %s", ventas.PercentDelta, ventas.Band)
	}

	ocupacion := byMetric(comparisons, model.ColTasaOcupacion)
	if !approx(ocupacion.PercentDelta, -10) || ocupacion.Band != BandInferior {
		t.Errorf("ocupación: delta %v banda %s", ocupacion.PercentDelta, ocupacion.Band)
	}

	tiempo := byMetric(comparisons, model.ColTiempoPermanencia)
	if tiempo.Band != BandPromedio {
		t.Errorf("delta cero debe dar banda promedio, llegó %s", tiempo.Band)
	}
	if !tiempo.NearAverage {
		t.Error("delta cero está cerca del promedio")
	}

	// |delta| <= 5: cubo presentacional de rendimiento promedio
	conversion := byMetric(comparisons, model.ColTasaConversion)
	if conversion.Band != BandSuperior || !conversion.NearAverage {
		t.Errorf("conversión: banda %s cerca=%v", conversion.Band, conversion.NearAverage)
	}
	ingresos := byMetric(comparisons, model.ColIngresosTotales)
	if ingresos.Band != BandInferior || !ingresos.NearAverage {
		t.Errorf("ingresos: banda %s cerca=%v", ingresos.Band, ingresos.NearAverage)
	}
}

func TestCompareSectorCero(t *testing.T) {
	latest := model.MetricRecord{FootTraffic: 100}
	comparisons := Compare(latest, model.SectorAverages{})

	for _, c := range comparisons {
		if !c.Undefined {
			t.Errorf("%s: con sector cero la comparación debe marcarse indefinida", c.Metric)
		}
		if c.PercentDelta != 0 {
			t.Errorf("%s: delta = %v, con sector cero debe quedar en 0", c.Metric, c.PercentDelta)
		}
	}
}

func TestMarketScoreSoloPositivos(t *testing.T) {
	// Deltas: +10, -5, +20, -2, 0, +8. Solo entran los positivos estrictos.
	latest := model.MetricRecord{
		FootTraffic:    110,
		SalesPerM2:     95,
		OccupancyRate:  120,
		DwellTime:      98,
		ConversionRate: 100,
		TotalRevenue:   108,
	}

	comparisons := Compare(latest, flatSector(100))
	score := MarketScore(comparisons)

	want := (10.0 + 20.0 + 8.0) / 3.0 // 12.67
	if !approx(score, want) {
		t.Errorf("score = %v, se esperaba %v", score, want)
	}
	if ScoreLabel(score) != "Superior" {
		t.Errorf("etiqueta = %q, un score de %.2f es Superior", ScoreLabel(score), score)
	}
}

func TestMarketScoreSinPositivos(t *testing.T) {
	latest := model.MetricRecord{
		FootTraffic: 50, SalesPerM2: 50, OccupancyRate: 50,
		DwellTime: 50, ConversionRate: 50, TotalRevenue: 50,
	}
	score := MarketScore(Compare(latest, flatSector(100)))
	if score != 0 {
		t.Errorf("sin deltas positivos el score es 0, llegó %v", score)
	}
	if ScoreLabel(score) != "Inferior" {
		t.Errorf("etiqueta = %q, se esperaba Inferior", ScoreLabel(score))
	}
}

func TestScoreLabel(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{15, "Superior"},
		{10.01, "Superior"},
		{10, "Promedio"},
		{0.5, "Promedio"},
		{0, "Inferior"},
		{-5, "Inferior"},
	}
	for _, tc := range cases {
		if got := ScoreLabel(tc.score); got != tc.want {
			t.Errorf("ScoreLabel(%v) = %q, se esperaba %q", tc.score, got, tc.want)
		}
	}
}

func TestBestMetric(t *testing.T) {
	latest := model.MetricRecord{
		FootTraffic: 150, SalesPerM2: 120, OccupancyRate: 90,
		DwellTime: 100, ConversionRate: 100, TotalRevenue: 100,
	}
	comparisons := Compare(latest, flatSector(100))

	best, ok := BestMetric(comparisons)
	if !ok {
		t.Fatal("debe haber mejor métrica")
	}
	if best.Metric != model.ColTraficoPeatonal {
		t.Errorf("mejor métrica = %s, se esperaba trafico_peatonal", best.Metric)
	}

	if _, ok := BestMetric(nil); ok {
		t.Error("sin comparaciones no hay mejor métrica")
	}
}

func TestAverageDeltaYSuperiorCount(t *testing.T) {
	latest := model.MetricRecord{
		FootTraffic: 120, SalesPerM2: 80, OccupancyRate: 100,
		DwellTime: 100, ConversionRate: 100, TotalRevenue: 100,
	}
	comparisons := Compare(latest, flatSector(100))

	if avg := AverageDelta(comparisons); !approx(avg, 0) {
		t.Errorf("delta medio = %v, +20 y -20 se anulan", avg)
	}
	if n := SuperiorCount(comparisons); n != 1 {
		t.Errorf("métricas superiores = %d, se esperaba 1", n)
	}
}
