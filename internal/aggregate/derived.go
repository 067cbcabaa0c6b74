package aggregate

import (
	"github.com/nathanserezit/centros-comerciales/internal/model"
)

// Métricas derivadas sobre bases ya agregadas. Funciones puras: el guardia de
// denominador cero devuelve ErrDivisionByZero en vez de propagar NaN/Inf.

// SalesPerM2 ventas por metro cuadrado a partir de ingresos y superficie.
func SalesPerM2(revenue, areaM2 float64) (float64, error) {
	if areaM2 == 0 {
		return 0, model.ErrDivisionByZero
	}
	return revenue / areaM2, nil
}

// RevenuePerEmployee productividad por empleado.
func RevenuePerEmployee(revenue, employees float64) (float64, error) {
	if employees == 0 {
		return 0, model.ErrDivisionByZero
	}
	return revenue / employees, nil
}

// Efficiency ingresos por visitante.
func Efficiency(revenue, footTraffic float64) (float64, error) {
	if footTraffic == 0 {
		return 0, model.ErrDivisionByZero
	}
	return revenue / footTraffic, nil
}
