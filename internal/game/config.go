package game

import (
	"os"
	"strconv"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogFile   = "CONNECTFOUR_LOG_FILE"
	EnvLogLevel  = "CONNECTFOUR_LOG_LEVEL"
	EnvTelemetry = "CONNECTFOUR_TELEMETRY"
	EnvAPIKey    = "HONEYCOMB_CONNECTFOUR_API_KEY"
	EnvDataset   = "HONEYCOMB_CONNECTFOUR_DATASET"

	defaultLogFile = "connectfour.log"
	defaultDataset = "connectfour"
)

// Config holds game configuration options.
type Config struct {
	// LogFile receives structured logs. The terminal is reserved for the board.
	LogFile string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// Telemetry enables span export to Honeycomb.
	Telemetry bool
	// APIKey and Dataset identify the Honeycomb destination.
	APIKey  string
	Dataset string
}

// ConfigFromEnv builds a Config from the process environment.
// Telemetry defaults to on when an API key is present.
func ConfigFromEnv() Config {
	cfg := Config{
		LogFile:  os.Getenv(EnvLogFile),
		LogLevel: os.Getenv(EnvLogLevel),
		APIKey:   os.Getenv(EnvAPIKey),
		Dataset:  os.Getenv(EnvDataset),
	}
	if cfg.LogFile == "" {
		cfg.LogFile = defaultLogFile
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Dataset == "" {
		cfg.Dataset = defaultDataset
	}

	cfg.Telemetry = cfg.APIKey != ""
	if v, err := strconv.ParseBool(os.Getenv(EnvTelemetry)); err == nil {
		cfg.Telemetry = v
	}
	return cfg
}
