package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/nathanserezit/centros-comerciales/internal/model"
)

func TestValidateCompleto(t *testing.T) {
	table := &Table{
		Headers: []string{
			"fecha", "trafico_peatonal", "ventas_por_m2", "tasa_ocupacion",
			"tiempo_permanencia", "tasa_conversion", "ingresos_totales",
		},
	}

	if err := Validate(table); err != nil {
		t.Fatalf("no se esperaba error con todas las columnas: %v", err)
	}
}

func TestValidateOrdenIndiferente(t *testing.T) {
	table := &Table{
		Headers: []string{
			"ingresos_totales", "fecha", "tasa_conversion", "trafico_peatonal",
			"tiempo_permanencia", "tasa_ocupacion", "ventas_por_m2",
		},
	}

	if err := Validate(table); err != nil {
		t.Fatalf("el orden de columnas no debe importar: %v", err)
	}
}

func TestValidateColumnasExtra(t *testing.T) {
	headers := append([]string{}, model.RequiredColumns...)
	headers = append(headers, "zona_geografica", "columna_desconocida")
	table := &Table{Headers: headers}

	if err := Validate(table); err != nil {
		t.Fatalf("columnas extra deben ignorarse: %v", err)
	}
}

func TestValidateColumnasFaltantes(t *testing.T) {
	table := &Table{
		Headers: []string{"fecha", "ventas_por_m2", "tasa_conversion"},
	}

	err := Validate(table)
	if err == nil {
		t.Fatal("se esperaba error de esquema")
	}

	var schemaErr *model.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("se esperaba SchemaError, llegó %T", err)
	}

	want := []string{"trafico_peatonal", "tasa_ocupacion", "tiempo_permanencia", "ingresos_totales"}
	if len(schemaErr.Missing) != len(want) {
		t.Fatalf("faltantes = %v, se esperaba %v", schemaErr.Missing, want)
	}
	for i, col := range want {
		if schemaErr.Missing[i] != col {
			t.Errorf("faltante[%d] = %q, se esperaba %q (el orden del contrato debe conservarse)", i, schemaErr.Missing[i], col)
		}
	}

	if !strings.Contains(err.Error(), "trafico_peatonal") {
		t.Errorf("el mensaje debe nombrar las columnas: %v", err)
	}
}

func TestValidateTodoAusente(t *testing.T) {
	err := Validate(&Table{Headers: []string{"otra"}})

	var schemaErr *model.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("se esperaba SchemaError, llegó %T", err)
	}
	if len(schemaErr.Missing) != len(model.RequiredColumns) {
		t.Errorf("deben faltar las %d columnas, faltan %d", len(model.RequiredColumns), len(schemaErr.Missing))
	}
}
