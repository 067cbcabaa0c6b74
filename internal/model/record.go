package model

import (
	"fmt"
	"time"
)

// Columnas del contrato de ficheros (cabeceras en español, como los CSV del sector).
const (
	ColFecha             = "fecha"
	ColTraficoPeatonal   = "trafico_peatonal"
	ColVentasPorM2       = "ventas_por_m2"
	ColTasaOcupacion     = "tasa_ocupacion"
	ColTiempoPermanencia = "tiempo_permanencia"
	ColTasaConversion    = "tasa_conversion"
	ColIngresosTotales   = "ingresos_totales"

	// Dimensiones presentes solo en los ficheros de referencia del sector.
	ColZonaGeografica = "zona_geografica"
	ColTipoNegocio    = "tipo_negocio"
	ColTamanoM2       = "tamaño_m2"
	ColEmpleados      = "empleados"
	ColCentroID       = "centro_id"
)

// RequiredColumns columnas obligatorias de cualquier subida de datos.
// El orden se conserva en los mensajes de error de esquema.
var RequiredColumns = []string{
	ColFecha,
	ColTraficoPeatonal,
	ColVentasPorM2,
	ColTasaOcupacion,
	ColTiempoPermanencia,
	ColTasaConversion,
	ColIngresosTotales,
}

// TrackedMetrics las seis métricas numéricas que se agregan y comparan.
var TrackedMetrics = []string{
	ColTraficoPeatonal,
	ColVentasPorM2,
	ColTasaOcupacion,
	ColTiempoPermanencia,
	ColTasaConversion,
	ColIngresosTotales,
}

// MetricRecord una observación: fecha de periodo más las métricas numéricas.
// Las dimensiones (zona, tipo de negocio, centro) solo vienen informadas en
// los datos de referencia del sector.
type MetricRecord struct {
	Date   time.Time `json:"-"`
	Period string    `json:"fecha"`

	FootTraffic    float64 `json:"trafico_peatonal"`
	SalesPerM2     float64 `json:"ventas_por_m2"`
	OccupancyRate  float64 `json:"tasa_ocupacion"`
	DwellTime      float64 `json:"tiempo_permanencia"`
	ConversionRate float64 `json:"tasa_conversion"`
	TotalRevenue   float64 `json:"ingresos_totales"`

	Zone         string  `json:"zona_geografica,omitempty"`
	BusinessType string  `json:"tipo_negocio,omitempty"`
	CenterID     string  `json:"-"`
	AreaM2       float64 `json:"tamaño_m2,omitempty"`
	Employees    float64 `json:"empleados,omitempty"`
}

// Metric devuelve el valor de la métrica indicada por nombre de columna.
func (r *MetricRecord) Metric(col string) float64 {
	switch col {
	case ColTraficoPeatonal:
		return r.FootTraffic
	case ColVentasPorM2:
		return r.SalesPerM2
	case ColTasaOcupacion:
		return r.OccupancyRate
	case ColTiempoPermanencia:
		return r.DwellTime
	case ColTasaConversion:
		return r.ConversionRate
	case ColIngresosTotales:
		return r.TotalRevenue
	case ColTamanoM2:
		return r.AreaM2
	case ColEmpleados:
		return r.Employees
	}
	return 0
}

// SetMetric fija el valor de la métrica indicada por nombre de columna.
func (r *MetricRecord) SetMetric(col string, v float64) {
	switch col {
	case ColTraficoPeatonal:
		r.FootTraffic = v
	case ColVentasPorM2:
		r.SalesPerM2 = v
	case ColTasaOcupacion:
		r.OccupancyRate = v
	case ColTiempoPermanencia:
		r.DwellTime = v
	case ColTasaConversion:
		r.ConversionRate = v
	case ColIngresosTotales:
		r.TotalRevenue = v
	case ColTamanoM2:
		r.AreaM2 = v
	case ColEmpleados:
		r.Employees = v
	}
}

// Dataset conjunto de registros normalizados con el inventario de columnas
// de métrica presentes en el fichero de origen.
type Dataset struct {
	Records []MetricRecord
	Columns map[string]bool
}

// HasColumn indica si la columna de métrica estaba presente en el origen.
func (d *Dataset) HasColumn(col string) bool {
	return d.Columns[col]
}

// MonthKey clave de periodo mensual, p.ej. "2024-03".
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// QuarterKey clave de periodo trimestral, p.ej. "2024-Q1".
func QuarterKey(t time.Time) string {
	q := (int(t.Month())-1)/3 + 1
	return fmt.Sprintf("%04d-Q%d", t.Year(), q)
}

// YearKey clave de periodo anual, p.ej. "2024".
func YearKey(t time.Time) string {
	return fmt.Sprintf("%04d", t.Year())
}
