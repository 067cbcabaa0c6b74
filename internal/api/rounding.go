package api

import "math"

// round2 redondeo a dos decimales para cifras de presentación.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
