package compare

import (
	"sort"

	"github.com/nathanserezit/centros-comerciales/internal/model"
)

// Order sentido de ordenación de un ranking.
type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

// ParseOrder interpreta el parámetro de orden de la API; ascendente por defecto.
func ParseOrder(s string) Order {
	if Order(s) == Descending {
		return Descending
	}
	return Ascending
}

// RankGroups ordena una tabla de agregados por la métrica dada. Ordenación
// estable: los empates conservan el orden de grupo original. Devuelve una
// copia; la tabla de entrada no se toca.
func RankGroups(groups []model.GroupAggregate, metric string, order Order) []model.GroupAggregate {
	ranked := make([]model.GroupAggregate, len(groups))
	copy(ranked, groups)

	sort.SliceStable(ranked, func(a, b int) bool {
		if order == Descending {
			return ranked[a].Metric(metric) > ranked[b].Metric(metric)
		}
		return ranked[a].Metric(metric) < ranked[b].Metric(metric)
	})

	return ranked
}

// TopGroup el grupo con mayor valor de la métrica y su delta porcentual
// frente a la media de la métrica en la tabla. En caso de empate gana el
// primer grupo en orden original.
func TopGroup(groups []model.GroupAggregate, metric string) (model.GroupAggregate, float64, bool) {
	if len(groups) == 0 {
		return model.GroupAggregate{}, 0, false
	}

	best := groups[0]
	var total float64
	for _, g := range groups {
		total += g.Metric(metric)
		if g.Metric(metric) > best.Metric(metric) {
			best = g
		}
	}

	mean := total / float64(len(groups))
	delta := 0.0
	if mean != 0 {
		delta = (best.Metric(metric)/mean - 1) * 100
	}
	return best, delta, true
}
