package model

// SectorAverages cifras de referencia del sector completo.
// ventas_totales y n_visitantes son SUMAS sobre todo el dataset (totales del
// sector); el resto son medias por registro. ocupacion_por_m2 es literalmente
// la media de tasa_ocupacion: el nombre viene así del dataset histórico y se
// conserva por compatibilidad con el frontend.
type SectorAverages struct {
	VentasTotales     float64 `json:"ventas_totales"`
	NVisitantes       float64 `json:"n_visitantes"`
	OcupacionPorM2    float64 `json:"ocupacion_por_m2"`
	IngresosTotales   float64 `json:"ingresos_totales"`
	TraficoPeatonal   float64 `json:"trafico_peatonal"`
	VentasPorM2       float64 `json:"ventas_por_m2"`
	TasaOcupacion     float64 `json:"tasa_ocupacion"`
	TiempoPermanencia float64 `json:"tiempo_permanencia"`
	TasaConversion    float64 `json:"tasa_conversion"`
}

// Metric devuelve el valor de referencia por centro para una métrica seguida.
func (s *SectorAverages) Metric(col string) float64 {
	switch col {
	case ColTraficoPeatonal:
		return s.TraficoPeatonal
	case ColVentasPorM2:
		return s.VentasPorM2
	case ColTasaOcupacion:
		return s.TasaOcupacion
	case ColTiempoPermanencia:
		return s.TiempoPermanencia
	case ColTasaConversion:
		return s.TasaConversion
	case ColIngresosTotales:
		return s.IngresosTotales
	}
	return 0
}

// GroupAggregate agregado del sector para un valor de agrupación (zona
// geográfica o tipo de negocio): sumas de volumen y media de ocupación.
type GroupAggregate struct {
	Key           string  `json:"grupo"`
	FootTraffic   float64 `json:"afluencia"`
	Revenue       float64 `json:"ingresos"`
	AreaM2        float64 `json:"tamaño_m2"`
	Employees     float64 `json:"empleados"`
	OccupancyRate float64 `json:"ocupacion_por_m2"`
}

// Metric devuelve el valor de una métrica del agregado por nombre de columna.
func (g *GroupAggregate) Metric(col string) float64 {
	switch col {
	case ColTraficoPeatonal:
		return g.FootTraffic
	case ColIngresosTotales:
		return g.Revenue
	case ColTamanoM2:
		return g.AreaM2
	case ColEmpleados:
		return g.Employees
	case ColTasaOcupacion:
		return g.OccupancyRate
	}
	return 0
}

// CenterPerformance rendimiento agregado de un centro del dataset individual.
// El centro_id se elimina antes de exponer estos datos: solo salen cifras
// anónimas. Las métricas derivadas quedan a nil cuando el denominador es cero.
type CenterPerformance struct {
	FootTraffic        float64  `json:"trafico_peatonal"`
	Revenue            float64  `json:"ingresos_totales"`
	AreaM2             float64  `json:"tamaño_m2"`
	Employees          float64  `json:"empleados"`
	SalesPerM2         *float64 `json:"ventas_por_m2"`
	RevenuePerEmployee *float64 `json:"productividad_empleado"`
}
