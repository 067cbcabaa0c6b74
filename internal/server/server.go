package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nathanserezit/centros-comerciales/internal/api"
	"github.com/nathanserezit/centros-comerciales/internal/config"
	"github.com/nathanserezit/centros-comerciales/internal/importer"
	"github.com/nathanserezit/centros-comerciales/internal/store"
)

// Server servidor HTTP
type Server struct {
	router   *gin.Engine
	registry *store.Registry
	handler  *api.Handler
}

// NewServer crea el servidor
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	registry := store.NewRegistry()
	processor := importer.NewProcessor(cfg.Center.DefaultType)
	handler := api.NewHandler(registry, processor, cfg)

	s := &Server{
		router:   gin.Default(),
		registry: registry,
		handler:  handler,
	}

	s.setupRoutes(devMode)

	return s
}

// setupRoutes configura las rutas
func (s *Server) setupRoutes(devMode bool) {
	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	s.router.Use(cors.New(corsConfig))

	// Rutas de la API
	apiGroup := s.router.Group("/api")
	{
		s.handler.RegisterRoutes(apiGroup)
	}

	if devMode {
		// Modo desarrollo: redirige al servidor de desarrollo del frontend
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
	}
}

// Run arranca el servidor
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router expone el router (para tests)
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Registry expone el registro de centros (para tests)
func (s *Server) Registry() *store.Registry {
	return s.registry
}
