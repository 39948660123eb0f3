package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JACKUT_DATA_FILE", "")
	t.Setenv("JACKUT_LOG_LEVEL", "")

	cfg := LoadConfig()
	assert.Equal(t, "jackut.json", cfg.DataFile)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("JACKUT_DATA_FILE", "/tmp/state.json")
	t.Setenv("JACKUT_LOG_LEVEL", "debug")

	cfg := LoadConfig()
	assert.Equal(t, "/tmp/state.json", cfg.DataFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}
