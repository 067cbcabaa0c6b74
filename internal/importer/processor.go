package importer

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nathanserezit/centros-comerciales/internal/aggregate"
	"github.com/nathanserezit/centros-comerciales/internal/model"
	"github.com/nathanserezit/centros-comerciales/internal/parser"
)

// Options parámetros de una subida de datos.
type Options struct {
	Filename   string
	CenterName string
	CenterType string
}

// Processor pipeline de importación: lectura, validación, normalización y
// resumen mensual. Un fichero entra y un perfil completo sale, o nada.
type Processor struct {
	defaultType string
}

// NewProcessor crea un processor con el tipo de centro por defecto.
func NewProcessor(defaultType string) *Processor {
	return &Processor{defaultType: defaultType}
}

// Process construye el perfil de un centro a partir de los datos subidos.
// Si cualquier paso falla no se devuelve perfil parcial.
func (p *Processor) Process(r io.Reader, opts Options) (*model.CenterProfile, error) {
	table, err := parser.ReadTable(r, opts.Filename)
	if err != nil {
		return nil, err
	}

	if err := parser.Validate(table); err != nil {
		return nil, err
	}

	ds, err := parser.Normalize(table)
	if err != nil {
		return nil, err
	}

	monthly, err := aggregate.Rollup(ds, aggregate.Monthly)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(opts.CenterName)
	if name == "" {
		name = baseName(opts.Filename)
	}
	centerType := strings.TrimSpace(opts.CenterType)
	if centerType == "" {
		centerType = p.defaultType
	}

	return &model.CenterProfile{
		ID:         uuid.New().String(),
		Name:       name,
		Type:       centerType,
		UploadedAt: time.Now(),
		Raw:        ds.Records,
		Monthly:    monthly,
	}, nil
}

// baseName nombre de fichero sin ruta ni extensión.
func baseName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
