package parser

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nathanserezit/centros-comerciales/internal/model"
)

// dateLayouts formatos de fecha aceptados en la columna fecha.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
	time.RFC3339,
}

// Normalize interpreta fechas, ordena cronológicamente y asigna claves de
// periodo mensual. La ordenación es estable: filas con la misma fecha
// conservan su orden relativo original.
func Normalize(t *Table) (*model.Dataset, error) {
	colIndex := t.ColumnIndex()

	metricCols := append([]string{}, model.TrackedMetrics...)
	metricCols = append(metricCols, model.ColTamanoM2, model.ColEmpleados)

	columns := make(map[string]bool)
	for _, col := range metricCols {
		if _, ok := colIndex[col]; ok {
			columns[col] = true
		}
	}

	dateIdx, hasDate := colIndex[model.ColFecha]
	zoneIdx, hasZone := colIndex[model.ColZonaGeografica]
	businessIdx, hasBusiness := colIndex[model.ColTipoNegocio]
	centerIdx, hasCenter := colIndex[model.ColCentroID]

	records := make([]model.MetricRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		if isBlankRow(row) {
			continue
		}

		rowNum := i + 2 // la fila 1 es la cabecera

		var rec model.MetricRecord
		if hasDate {
			raw := getCell(row, dateIdx)
			date, err := parseDate(raw)
			if err != nil {
				return nil, &model.DateParseError{Value: raw, Row: rowNum}
			}
			rec.Date = date
			rec.Period = model.MonthKey(date)
		}

		for _, col := range metricCols {
			if !columns[col] {
				continue
			}
			rec.SetMetric(col, parseFloat(getCell(row, colIndex[col])))
		}

		if hasZone {
			rec.Zone = getCell(row, zoneIdx)
		}
		if hasBusiness {
			rec.BusinessType = getCell(row, businessIdx)
		}
		if hasCenter {
			rec.CenterID = getCell(row, centerIdx)
		}

		records = append(records, rec)
	}

	sort.SliceStable(records, func(a, b int) bool {
		return records[a].Date.Before(records[b].Date)
	})

	return &model.Dataset{
		Records: records,
		Columns: columns,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	// Separador de miles que cuela Excel en celdas numéricas exportadas como texto.
	s = strings.ReplaceAll(s, ",", "")
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
