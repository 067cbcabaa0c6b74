package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nathanserezit/centros-comerciales/internal/importer"
	"github.com/nathanserezit/centros-comerciales/internal/model"
)

// UploadResponse resultado de una subida correcta
type UploadResponse struct {
	Center model.CenterSummary  `json:"center"`
	Months []model.MetricRecord `json:"months"`
}

// Upload sube el fichero de datos de un centro
// POST /api/upload
// El perfil se registra solo si el pipeline completo tiene éxito: una subida
// fallida deja el registro exactamente como estaba.
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no se encontró el archivo subido"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo abrir el archivo subido"})
		return
	}
	defer file.Close()

	centerType := c.PostForm("type")
	if centerType == "" {
		centerType = h.cfg.Center.DefaultType
	}

	profile, err := h.processor.Process(file, importer.Options{
		Filename:   fileHeader.Filename,
		CenterName: c.PostForm("name"),
		CenterType: centerType,
	})
	if err != nil {
		status, message := uploadError(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	h.registry.Put(profile)

	c.JSON(http.StatusOK, UploadResponse{
		Center: profile.Summarize(true),
		Months: profile.Monthly,
	})
}

// uploadError traduce un error del pipeline a estado HTTP y mensaje de usuario.
// Los errores de datos del usuario son 400 con el detalle; el resto, 500.
func uploadError(err error) (int, string) {
	var formatErr *model.UnsupportedFormatError
	var schemaErr *model.SchemaError
	var dateErr *model.DateParseError
	var metricErr *model.MissingMetricError

	switch {
	case errors.As(err, &formatErr):
		return http.StatusBadRequest, formatErr.Error()
	case errors.As(err, &schemaErr):
		return http.StatusBadRequest, schemaErr.Error()
	case errors.As(err, &dateErr):
		return http.StatusBadRequest, dateErr.Error()
	case errors.As(err, &metricErr):
		// Con el esquema validado esto es un fallo del programa, no del usuario.
		return http.StatusInternalServerError, metricErr.Error()
	default:
		return http.StatusBadRequest, "no se pudo leer el archivo: " + err.Error()
	}
}
