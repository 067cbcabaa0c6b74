package aggregate

import (
	"github.com/nathanserezit/centros-comerciales/internal/model"
)

// Reduction regla de reducción de una métrica dentro de un grupo.
type Reduction int

const (
	Mean Reduction = iota
	Sum
	First
)

// Rules mapa de columna de métrica a regla de reducción.
type Rules map[string]Reduction

// StandardRules reducciones de las seis métricas seguidas: media para las
// tasas y promedios, suma para los ingresos.
func StandardRules() Rules {
	return Rules{
		model.ColTraficoPeatonal:   Mean,
		model.ColVentasPorM2:       Mean,
		model.ColTasaOcupacion:     Mean,
		model.ColTiempoPermanencia: Mean,
		model.ColTasaConversion:    Mean,
		model.ColIngresosTotales:   Sum,
	}
}

// SectorGroupRules reducciones de los agregados por zona y tipo de negocio:
// sumas de volumen más media de ocupación.
func SectorGroupRules() Rules {
	return Rules{
		model.ColTraficoPeatonal: Sum,
		model.ColIngresosTotales: Sum,
		model.ColTamanoM2:        Sum,
		model.ColEmpleados:       Sum,
		model.ColTasaOcupacion:   Mean,
	}
}

// CenterRules reducciones del rollup por centro individual: tráfico medio,
// ingresos acumulados y primer valor de superficie y plantilla.
func CenterRules() Rules {
	return Rules{
		model.ColTraficoPeatonal: Mean,
		model.ColIngresosTotales: Sum,
		model.ColTamanoM2:        First,
		model.ColEmpleados:       First,
	}
}

// Group resumen de un valor de agrupación.
type Group struct {
	Key     string
	Summary model.MetricRecord
	Count   int
}

// GroupBy reduce el dataset a un resumen por valor distinto de clave,
// aplicando las reglas dadas. Los grupos salen en orden de primera aparición
// y ninguno se descarta aunque tenga una sola fila. Pedir una métrica que no
// venía en el origen es un error de contrato.
func GroupBy(ds *model.Dataset, keyFn func(*model.MetricRecord) string, rules Rules) ([]Group, error) {
	for col := range rules {
		if !ds.HasColumn(col) {
			return nil, &model.MissingMetricError{Metric: col}
		}
	}

	type accumulator struct {
		sums  map[string]float64
		first map[string]float64
		count int
	}

	order := make([]string, 0)
	byKey := make(map[string]*accumulator)

	for i := range ds.Records {
		rec := &ds.Records[i]
		key := keyFn(rec)

		acc, ok := byKey[key]
		if !ok {
			acc = &accumulator{
				sums:  make(map[string]float64, len(rules)),
				first: make(map[string]float64, len(rules)),
			}
			byKey[key] = acc
			order = append(order, key)
		}

		for col, rule := range rules {
			v := rec.Metric(col)
			switch rule {
			case Mean, Sum:
				acc.sums[col] += v
			case First:
				if acc.count == 0 {
					acc.first[col] = v
				}
			}
		}
		acc.count++
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		acc := byKey[key]
		summary := model.MetricRecord{Period: key}

		for col, rule := range rules {
			switch rule {
			case Mean:
				summary.SetMetric(col, acc.sums[col]/float64(acc.count))
			case Sum:
				summary.SetMetric(col, acc.sums[col])
			case First:
				summary.SetMetric(col, acc.first[col])
			}
		}

		groups = append(groups, Group{
			Key:     key,
			Summary: summary,
			Count:   acc.count,
		})
	}

	return groups, nil
}
