package model

import "time"

// CenterProfile un centro comercial cargado por el usuario.
// Vive solo en memoria: se construye completo en la subida y sustituye de
// golpe cualquier entrada anterior del registro con el mismo nombre.
type CenterProfile struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	UploadedAt time.Time      `json:"uploadedAt"`
	Raw        []MetricRecord `json:"-"`
	Monthly    []MetricRecord `json:"monthly"`
}

// Latest devuelve el resumen mensual más reciente.
func (p *CenterProfile) Latest() (MetricRecord, bool) {
	if len(p.Monthly) == 0 {
		return MetricRecord{}, false
	}
	return p.Monthly[len(p.Monthly)-1], true
}

// CenterSummary vista ligera de un centro para listados.
type CenterSummary struct {
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	UploadedAt time.Time `json:"uploadedAt"`
	RawRows    int       `json:"rawRows"`
	Months     int       `json:"months"`
	Active     bool      `json:"active"`
}

// Summarize construye la vista de listado de un perfil.
func (p *CenterProfile) Summarize(active bool) CenterSummary {
	return CenterSummary{
		Name:       p.Name,
		Type:       p.Type,
		UploadedAt: p.UploadedAt,
		RawRows:    len(p.Raw),
		Months:     len(p.Monthly),
		Active:     active,
	}
}
