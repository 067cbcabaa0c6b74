package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/nathanserezit/centros-comerciales/internal/config"
	"github.com/nathanserezit/centros-comerciales/internal/server"
	"github.com/nathanserezit/centros-comerciales/internal/util"
)

var (
	port    = flag.Int("port", 0, "puerto del servidor (config.toml tiene prioridad si declara port)")
	devMode = flag.Bool("dev", false, "modo desarrollo")
	dataDir = flag.String("dataDir", "", "directorio de datos de referencia (sobrescribe la configuración)")
)

func main() {
	flag.Parse()

	// Variables de entorno desde .env si existe
	_ = godotenv.Load()

	fmt.Println("==========================================")
	fmt.Println("  Harmon BI - Análisis de Centros Comerciales")
	fmt.Println("==========================================")

	// Carga de configuración
	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("no se pudo cargar la configuración, se usan valores por defecto: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// Los flags de línea de comandos sobrescriben la configuración
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	// Directorio de datos de referencia
	resolvedDataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("no se pudo crear el directorio de datos: %v", err)
	} else {
		fmt.Printf("Directorio de datos: %s\n", resolvedDataDir)
	}

	// Servidor
	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("Arrancando el servicio en el puerto %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("no se pudo arrancar el servicio: %v", err)
		}
	}()

	// Navegador
	if !cfg.Server.DevMode {
		fmt.Printf("Abriendo el navegador: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("No se pudo abrir el navegador, visita manualmente: %s\n", url)
		}
	} else {
		fmt.Printf("Modo desarrollo: visita %s\n", url)
	}

	fmt.Println("\nPulsa Ctrl+C para detener el servicio...")

	// Espera de señal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nCerrando el servicio...")
}
