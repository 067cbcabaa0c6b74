package util

import "testing"

func TestFormatPercent(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{12.5, "+12.50%"},
		{-3.25, "-3.25%"},
		{0, "0.00%"},
	}
	for _, tc := range cases {
		if got := FormatPercent(tc.value); got != tc.want {
			t.Errorf("FormatPercent(%v) = %q, se esperaba %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatEuros(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{1234567.89, "1.234.567,89 €"},
		{240000, "240.000,00 €"},
		{999.5, "999,50 €"},
		{0, "0,00 €"},
	}
	for _, tc := range cases {
		if got := FormatEuros(tc.value); got != tc.want {
			t.Errorf("FormatEuros(%v) = %q, se esperaba %q", tc.value, got, tc.want)
		}
	}
}
