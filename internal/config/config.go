package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig configuración de la aplicación
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Center CenterConfig `toml:"center"`
}

// ServerConfig configuración del servidor
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig rutas de los datos de referencia del sector
type DataConfig struct {
	DataDir     string `toml:"data_dir"`
	MarketFile  string `toml:"market_file"`
	CentersFile string `toml:"centers_file"`
}

// CenterConfig valores por defecto de los centros subidos
type CenterConfig struct {
	DefaultType string `toml:"default_type"`
}

// LoadConfigInfo metainformación de la carga de configuración
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig configuración por defecto
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20274,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir:     "data",
			MarketFile:  "datos_agregados_mercado.csv",
			CentersFile: "datos_individuales_centros.csv",
		},
		Center: CenterConfig{
			DefaultType: "Urbano",
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir devuelve el directorio del ejecutable
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo carga config.toml y devuelve metainformación de la carga
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		// Sin directorio de ejecutable detectable se usa el actual
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Sin fichero de configuración valen los valores por defecto
			applyEnvOverrides(config)
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	applyEnvOverrides(config)

	return config, info, nil
}

// applyEnvOverrides sobreescrituras por variable de entorno (E2E y ejecución local)
func applyEnvOverrides(config *AppConfig) {
	if v := os.Getenv("CENTROS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.Server.Port = port
		}
	}
	if v := os.Getenv("CENTROS_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}
	if v := os.Getenv("CENTROS_MARKET_FILE"); v != "" {
		config.Data.MarketFile = v
	}
	if v := os.Getenv("CENTROS_CENTERS_FILE"); v != "" {
		config.Data.CentersFile = v
	}
}

// LoadConfig carga la configuración desde config.toml
// El fichero vive junto al ejecutable
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// SaveConfig escribe la configuración en config.toml
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// EnsureDataDir garantiza que existe el directorio de datos de referencia
// El directorio vive junto al ejecutable
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := filepath.Join(exeDir, config.Data.DataDir)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}

// MarketDataPath ruta del CSV agregado del mercado
func MarketDataPath(config *AppConfig) string {
	return dataPath(config, config.Data.MarketFile)
}

// CentersDataPath ruta del CSV de centros individuales
func CentersDataPath(config *AppConfig) string {
	return dataPath(config, config.Data.CentersFile)
}

func dataPath(config *AppConfig, filename string) string {
	exeDir, _ := GetExeDir()
	if exeDir == "" {
		exeDir = "."
	}
	return filepath.Join(exeDir, config.Data.DataDir, filename)
}
