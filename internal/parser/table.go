package parser

import (
	"encoding/csv"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/nathanserezit/centros-comerciales/internal/model"
)

// Format formato tabular soportado.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// DetectFormat deduce el formato por la extensión del nombre de fichero.
func DetectFormat(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", &model.UnsupportedFormatError{Ext: ext}
	}
}

// Table dataset tabular en crudo: cabecera más filas de celdas de texto.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ColumnIndex mapa de nombre de columna a índice, con cabeceras recortadas.
func (t *Table) ColumnIndex() map[string]int {
	idx := make(map[string]int, len(t.Headers))
	for i, h := range t.Headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

// ReadTable carga una tabla desde un reader según el formato del fichero.
func ReadTable(r io.Reader, filename string) (*Table, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatXLSX:
		return readXLSX(r)
	case FormatCSV:
		return readCSV(r)
	}
	return nil, &model.UnsupportedFormatError{Ext: filepath.Ext(filename)}
}

// readXLSX lee la primera hoja del libro.
func readXLSX(r io.Reader) (*Table, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("el libro no contiene hojas")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("la hoja está vacía")
	}

	return &Table{
		Headers: trimHeader(rows[0]),
		Rows:    rows[1:],
	}, nil
}

func readCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("el fichero está vacío")
	}

	return &Table{
		Headers: trimHeader(records[0]),
		Rows:    records[1:],
	}, nil
}

func trimHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		// El BOM de UTF-8 llega pegado a la primera cabecera en CSV exportados de Excel.
		h = strings.TrimPrefix(h, "\uFEFF")
		out[i] = strings.TrimSpace(h)
	}
	return out
}
