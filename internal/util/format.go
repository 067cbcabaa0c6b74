package util

import (
	"fmt"
	"strings"
)

// FormatPercent formatea un delta porcentual con signo explícito
func FormatPercent(value float64) string {
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, value)
}

// FormatEuros formatea un importe en euros con separador de miles
func FormatEuros(value float64) string {
	whole := int64(value)
	cents := int64((value-float64(whole))*100 + 0.5)
	if cents < 0 {
		cents = -cents
	}

	digits := fmt.Sprintf("%d", whole)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)

	out := strings.Join(parts, ".")
	if negative {
		out = "-" + out
	}
	return fmt.Sprintf("%s,%02d €", out, cents)
}
