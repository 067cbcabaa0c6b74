package market

import (
	"fmt"
	"os"

	"github.com/nathanserezit/centros-comerciales/internal/aggregate"
	"github.com/nathanserezit/centros-comerciales/internal/model"
	"github.com/nathanserezit/centros-comerciales/internal/parser"
)

// Source origen de los datos de mercado devueltos.
type Source string

const (
	SourceDataset  Source = "dataset"
	SourceFallback Source = "fallback"
)

// Data datos de referencia del sector ya agregados. Source permite al
// llamante distinguir datos reales de las constantes de respaldo.
type Data struct {
	Averages       model.SectorAverages   `json:"promedios"`
	Zones          []model.GroupAggregate `json:"zonas"`
	BusinessTypes  []model.GroupAggregate `json:"tipos_negocio"`
	Source         Source                 `json:"fuente"`
	FallbackReason string                 `json:"motivo_fallback,omitempty"`
}

// Loader cargador del dataset de referencia del sector. El dataset es una
// dependencia externa: se relee del disco en cada consulta y sus fallos se
// absorben con valores de respaldo para que el resto del sistema siga usable.
type Loader struct {
	marketPath  string
	centersPath string
}

// NewLoader crea el cargador con las rutas de los dos ficheros de referencia.
func NewLoader(marketPath, centersPath string) *Loader {
	return &Loader{
		marketPath:  marketPath,
		centersPath: centersPath,
	}
}

// Load carga y agrega el dataset de mercado. Nunca falla: si el fichero no se
// puede leer o interpretar devuelve las constantes de respaldo con el motivo.
func (l *Loader) Load() *Data {
	data, err := l.load()
	if err != nil {
		return Fallback(err.Error())
	}
	return data
}

func (l *Loader) load() (*Data, error) {
	ds, err := l.readDataset(l.marketPath)
	if err != nil {
		return nil, err
	}
	if len(ds.Records) == 0 {
		return nil, fmt.Errorf("el dataset de mercado está vacío: %s", l.marketPath)
	}

	averages := sectorAverages(ds)

	zones, err := groupAggregates(ds, func(r *model.MetricRecord) string { return r.Zone })
	if err != nil {
		return nil, err
	}

	businessTypes, err := groupAggregates(ds, func(r *model.MetricRecord) string { return r.BusinessType })
	if err != nil {
		return nil, err
	}

	return &Data{
		Averages:      averages,
		Zones:         zones,
		BusinessTypes: businessTypes,
		Source:        SourceDataset,
	}, nil
}

// CenterPerformance agrega el dataset de centros individuales por centro y
// elimina los identificadores antes de devolverlo: las cifras salen anónimas.
func (l *Loader) CenterPerformance() ([]model.CenterPerformance, error) {
	ds, err := l.readDataset(l.centersPath)
	if err != nil {
		return nil, err
	}

	groups, err := aggregate.GroupBy(ds, func(r *model.MetricRecord) string { return r.CenterID }, aggregate.CenterRules())
	if err != nil {
		return nil, err
	}

	out := make([]model.CenterPerformance, 0, len(groups))
	for _, g := range groups {
		perf := model.CenterPerformance{
			FootTraffic: g.Summary.FootTraffic,
			Revenue:     g.Summary.TotalRevenue,
			AreaM2:      g.Summary.AreaM2,
			Employees:   g.Summary.Employees,
		}
		if v, err := aggregate.SalesPerM2(perf.Revenue, perf.AreaM2); err == nil {
			perf.SalesPerM2 = &v
		}
		if v, err := aggregate.RevenuePerEmployee(perf.Revenue, perf.Employees); err == nil {
			perf.RevenuePerEmployee = &v
		}
		out = append(out, perf)
	}

	return out, nil
}

func (l *Loader) readDataset(path string) (*model.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	table, err := parser.ReadTable(file, path)
	if err != nil {
		return nil, err
	}
	if err := parser.Validate(table); err != nil {
		return nil, err
	}
	return parser.Normalize(table)
}

// sectorAverages reducción del dataset completo. Ingresos y tráfico se
// reportan además como totales del sector (sumas); el resto, medias.
func sectorAverages(ds *model.Dataset) model.SectorAverages {
	n := float64(len(ds.Records))

	var sums model.MetricRecord
	for i := range ds.Records {
		for _, col := range model.TrackedMetrics {
			sums.SetMetric(col, sums.Metric(col)+ds.Records[i].Metric(col))
		}
	}

	return model.SectorAverages{
		VentasTotales:     sums.TotalRevenue,
		NVisitantes:       sums.FootTraffic,
		OcupacionPorM2:    sums.OccupancyRate / n,
		IngresosTotales:   sums.TotalRevenue / n,
		TraficoPeatonal:   sums.FootTraffic / n,
		VentasPorM2:       sums.SalesPerM2 / n,
		TasaOcupacion:     sums.OccupancyRate / n,
		TiempoPermanencia: sums.DwellTime / n,
		TasaConversion:    sums.ConversionRate / n,
	}
}

func groupAggregates(ds *model.Dataset, keyFn func(*model.MetricRecord) string) ([]model.GroupAggregate, error) {
	groups, err := aggregate.GroupBy(ds, keyFn, aggregate.SectorGroupRules())
	if err != nil {
		return nil, err
	}

	out := make([]model.GroupAggregate, 0, len(groups))
	for _, g := range groups {
		out = append(out, model.GroupAggregate{
			Key:           g.Key,
			FootTraffic:   g.Summary.FootTraffic,
			Revenue:       g.Summary.TotalRevenue,
			AreaM2:        g.Summary.AreaM2,
			Employees:     g.Summary.Employees,
			OccupancyRate: g.Summary.OccupancyRate,
		})
	}
	return out, nil
}

// Fallback constantes de respaldo documentadas cuando el dataset de
// referencia no está disponible. Sin agregados por grupo.
func Fallback(reason string) *Data {
	return &Data{
		Averages: model.SectorAverages{
			VentasTotales:     240000,
			NVisitantes:       11000,
			OcupacionPorM2:    75.5,
			IngresosTotales:   10000,
			TraficoPeatonal:   460,
			VentasPorM2:       48.2,
			TasaOcupacion:     75.5,
			TiempoPermanencia: 89.1,
			TasaConversion:    26.4,
		},
		Source:         SourceFallback,
		FallbackReason: reason,
	}
}
