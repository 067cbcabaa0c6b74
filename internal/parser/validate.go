package parser

import (
	"github.com/nathanserezit/centros-comerciales/internal/model"
)

// Validate comprueba que la tabla trae todas las columnas obligatorias.
// Comprobación pura: no coacciona tipos ni toca las filas; los fallos de
// interpretación de valores se difieren a Normalize. Se admiten columnas
// extra y cualquier orden de columnas.
func Validate(t *Table) error {
	present := make(map[string]bool, len(t.Headers))
	for _, h := range t.Headers {
		present[h] = true
	}

	var missing []string
	for _, col := range model.RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return &model.SchemaError{Missing: missing}
	}
	return nil
}
