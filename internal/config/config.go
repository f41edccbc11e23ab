// Package config loads editor settings from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/alexanderramin/trapgrid/internal/viewport"
)

// Config holds runtime settings for the editor front ends.
type Config struct {
	// LogEvents enables the structured editor event log.
	LogEvents bool
	// LogFile is where events are written. Empty means stderr, which the
	// TUI refuses because the alternate screen owns the terminal.
	LogFile string

	// CellPx is the side of one grid cell in pixels at scale 1.
	CellPx float64

	// CharWidthPx and CharHeightPx size one terminal character when the TUI
	// maps mouse positions to pixels.
	CharWidthPx  float64
	CharHeightPx float64

	Mouse bool
}

// Default returns a Config with the stock 20px cell and a 10×20 terminal
// character.
func Default() Config {
	return Config{
		LogEvents:    false,
		CellPx:       viewport.DefaultCellSize,
		CharWidthPx:  10,
		CharHeightPx: 20,
		Mouse:        true,
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for unset or invalid values.
func Load() Config {
	return LoadFrom(os.Getenv)
}

// LoadFrom is Load with an injectable lookup, for tests.
func LoadFrom(getenv func(string) string) Config {
	cfg := Default()

	if v := getenv("TRAPGRID_LOG_EVENTS"); v != "" {
		cfg.LogEvents, _ = strconv.ParseBool(v)
	}
	if v := getenv("TRAPGRID_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := getenv("TRAPGRID_MOUSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Mouse = b
		}
	}
	applyPositiveFloat(getenv, "TRAPGRID_CELL_PX", &cfg.CellPx)
	applyPositiveFloat(getenv, "TRAPGRID_CHAR_WIDTH_PX", &cfg.CharWidthPx)
	applyPositiveFloat(getenv, "TRAPGRID_CHAR_HEIGHT_PX", &cfg.CharHeightPx)

	return cfg
}

func applyPositiveFloat(getenv func(string) string, name string, dst *float64) {
	v := getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return
	}
	*dst = f
}
