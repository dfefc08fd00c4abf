package main

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alnah/go-htmlcopy/internal/config"
)

// envPrefix marks the environment variables the CLI reads.
const envPrefix = "HTMLCOPY_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // HTMLCOPY_CONFIG: config file name or path
	Target     string // HTMLCOPY_TARGET: copy target name
	BaseURL    string // HTMLCOPY_BASE_URL: base for relative images
	Workers    int    // HTMLCOPY_WORKERS: parallel workers
}

// knownEnvVars lists valid HTMLCOPY_* environment variables.
var knownEnvVars = map[string]bool{
	"HTMLCOPY_CONFIG":   true,
	"HTMLCOPY_TARGET":   true,
	"HTMLCOPY_BASE_URL": true,
	"HTMLCOPY_WORKERS":  true,
}

// loadEnvConfig reads the HTMLCOPY_* variables through getenv.
// Invalid or non-positive worker counts are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("HTMLCOPY_CONFIG"),
		Target:     getenv("HTMLCOPY_TARGET"),
		BaseURL:    getenv("HTMLCOPY_BASE_URL"),
	}
	if workers := getenv("HTMLCOPY_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}
	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized HTMLCOPY_* variable.
// Catches typos like HTMLCOPY_TARGETS.
func warnUnknownEnvVars(logger zerolog.Logger, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			logger.Warn().Str("variable", name).Msg("unknown environment variable (typo?)")
		}
	}
}

// applyEnvConfig overrides config values with set environment variables.
// Flags are merged afterwards, giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.BaseURL != "" {
		cfg.BaseURL = env.BaseURL
	}
}
