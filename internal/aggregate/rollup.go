package aggregate

import (
	"github.com/nathanserezit/centros-comerciales/internal/model"
)

// Granularity granularidad del rollup temporal.
type Granularity string

const (
	Monthly   Granularity = "monthly"
	Quarterly Granularity = "quarterly"
	Annual    Granularity = "annual"
)

// ParseGranularity interpreta el parámetro de periodo de la API.
// Cualquier valor no reconocido cae a mensual.
func ParseGranularity(s string) Granularity {
	switch Granularity(s) {
	case Quarterly:
		return Quarterly
	case Annual:
		return Annual
	default:
		return Monthly
	}
}

// Rollup agrega un dataset cronológicamente ordenado en resúmenes por
// periodo. Como la entrada viene ordenada, el orden de primera aparición de
// los grupos ya es el cronológico.
func Rollup(ds *model.Dataset, g Granularity) ([]model.MetricRecord, error) {
	keyFn := func(r *model.MetricRecord) string {
		switch g {
		case Quarterly:
			return model.QuarterKey(r.Date)
		case Annual:
			return model.YearKey(r.Date)
		default:
			return r.Period
		}
	}

	groups, err := GroupBy(ds, keyFn, StandardRules())
	if err != nil {
		return nil, err
	}

	out := make([]model.MetricRecord, 0, len(groups))
	for _, grp := range groups {
		out = append(out, grp.Summary)
	}
	return out, nil
}
