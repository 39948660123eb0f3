package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the application settings, read once at startup.
type Config struct {
	DataFile string
	LogLevel string
}

// LoadConfig reads settings from a .env file when present, falling back to
// process environment variables and defaults.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment defaults")
	}

	return &Config{
		DataFile: getenv("JACKUT_DATA_FILE", "jackut.json"),
		LogLevel: getenv("JACKUT_LOG_LEVEL", "info"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
