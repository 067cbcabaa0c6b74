package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDivisionByZero denominador cero en una métrica derivada. Se comunica al
// llamante, que debe mostrar "N/A" u omitir la cifra; nunca se propaga NaN/Inf.
var ErrDivisionByZero = errors.New("división por cero")

// UnsupportedFormatError extensión de fichero no reconocida.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("formato de archivo no soportado: %s", e.Ext)
}

// SchemaError faltan columnas obligatorias en la subida.
// Missing conserva exactamente el conjunto ausente, en el orden del contrato.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("faltan las siguientes columnas: %s", strings.Join(e.Missing, ", "))
}

// DateParseError valor de fecha no interpretable; conserva el valor ofensivo.
type DateParseError struct {
	Value string
	Row   int
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("fecha no válida en la fila %d: %q", e.Row, e.Value)
}

// MissingMetricError se pidió agregar una columna de métrica ausente del
// dataset. Con datos validados no debería ocurrir: es un error de contrato.
type MissingMetricError struct {
	Metric string
}

func (e *MissingMetricError) Error() string {
	return fmt.Sprintf("columna de métrica ausente en el dataset: %s", e.Metric)
}
