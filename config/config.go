package config

import (
	"os"
	"strconv"
	"strings"
)

// Backend selects where the game is rendered
type Backend string

const (
	BackendWindow   Backend = "window"
	BackendTerminal Backend = "terminal"
)

// Config holds the runtime settings. None of them change the rules.
type Config struct {
	Backend Backend
	// Scale multiplies the window size; the logical screen stays 500x400
	Scale float64
	// ShowTPS overlays the measured ticks per second
	ShowTPS bool
	// Sound plays tones on bounces and points
	Sound bool
	// SpectateAddr is the listen address of the spectator feed, empty when
	// disabled
	SpectateAddr string
}

// Default returns the configuration used when no variable is set
func Default() *Config {
	return &Config{
		Backend: BackendWindow,
		Scale:   1,
	}
}

// Load reads PONG_* environment variables on top of the defaults.
// Unparsable values are ignored.
func Load() *Config {
	return load(os.Getenv)
}

func load(getenv func(string) string) *Config {
	cfg := Default()

	switch Backend(strings.ToLower(getenv("PONG_BACKEND"))) {
	case BackendTerminal:
		cfg.Backend = BackendTerminal
	case BackendWindow:
		cfg.Backend = BackendWindow
	}

	if scale := getenv("PONG_SCALE"); scale != "" {
		if val, err := strconv.ParseFloat(scale, 64); err == nil && val > 0 {
			cfg.Scale = val
		}
	}

	if tps := getenv("PONG_SHOW_TPS"); tps != "" {
		if val, err := strconv.ParseBool(tps); err == nil {
			cfg.ShowTPS = val
		}
	}

	if sound := getenv("PONG_SOUND"); sound != "" {
		if val, err := strconv.ParseBool(sound); err == nil {
			cfg.Sound = val
		}
	}

	cfg.SpectateAddr = strings.TrimSpace(getenv("PONG_SPECTATE_ADDR"))

	return cfg
}
