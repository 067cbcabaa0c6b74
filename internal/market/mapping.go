package market

// Tablas de mapeo del dataset histórico: centros conocidos a su zona
// geográfica y categorías de tienda a tipo de negocio.

var zoneByCenter = map[string]string{
	"Gran Plaza Norte": "Madrid",
	"Centro Solverde":  "Cataluña",
	"Parque Sur Este":  "Sur",
	"Centro Norte":     "Norte",
	"Centro Castilla":  "Castilla-La Mancha",
	"Centro León":      "León",
}

var businessByCategory = map[string]string{
	"Moda":         "Moda",
	"Restauración": "Restauración",
	"Electrónica":  "Ocio",
	"Perfumería":   "Moda",
	"Servicios":    "Ocio",
	"Supermercado": "Restauración",
	"Deportes":     "Ocio",
}

// GeographicZone zona geográfica de un centro por nombre; Madrid por defecto.
func GeographicZone(centerName string) string {
	if zone, ok := zoneByCenter[centerName]; ok {
		return zone
	}
	return "Madrid"
}

// BusinessType tipo de negocio de una categoría de tienda; Otra por defecto.
func BusinessType(category string) string {
	if business, ok := businessByCategory[category]; ok {
		return business
	}
	return "Otra"
}
