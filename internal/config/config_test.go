package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.LogEvents)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, 20.0, cfg.CellPx)
	assert.Equal(t, 10.0, cfg.CharWidthPx)
	assert.Equal(t, 20.0, cfg.CharHeightPx)
	assert.True(t, cfg.Mouse)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg := LoadFrom(envMap(map[string]string{
		"TRAPGRID_LOG_EVENTS":     "true",
		"TRAPGRID_LOG_FILE":       "/tmp/events.log",
		"TRAPGRID_CELL_PX":        "16",
		"TRAPGRID_CHAR_WIDTH_PX":  "8",
		"TRAPGRID_CHAR_HEIGHT_PX": "16",
		"TRAPGRID_MOUSE":          "false",
	}))

	assert.True(t, cfg.LogEvents)
	assert.Equal(t, "/tmp/events.log", cfg.LogFile)
	assert.Equal(t, 16.0, cfg.CellPx)
	assert.Equal(t, 8.0, cfg.CharWidthPx)
	assert.Equal(t, 16.0, cfg.CharHeightPx)
	assert.False(t, cfg.Mouse)
}

func TestLoadFrom_InvalidFallsBack(t *testing.T) {
	cfg := LoadFrom(envMap(map[string]string{
		"TRAPGRID_LOG_EVENTS":    "maybe",
		"TRAPGRID_CELL_PX":       "-4",
		"TRAPGRID_CHAR_WIDTH_PX": "wide",
		"TRAPGRID_MOUSE":         "sometimes",
	}))

	assert.False(t, cfg.LogEvents)
	assert.Equal(t, 20.0, cfg.CellPx)
	assert.Equal(t, 10.0, cfg.CharWidthPx)
	assert.True(t, cfg.Mouse)
}

func TestLoad_ReadsProcessEnv(t *testing.T) {
	t.Setenv("TRAPGRID_CELL_PX", "24")
	assert.Equal(t, 24.0, Load().CellPx)
}
