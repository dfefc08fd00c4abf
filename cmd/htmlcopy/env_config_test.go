package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-htmlcopy/internal/config"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vars map[string]string
		want envConfig
	}{
		{
			name: "empty environment",
			vars: map[string]string{},
			want: envConfig{},
		},
		{
			name: "all variables",
			vars: map[string]string{
				"HTMLCOPY_CONFIG":   "work",
				"HTMLCOPY_TARGET":   "Evernote",
				"HTMLCOPY_BASE_URL": "https://example.com/",
				"HTMLCOPY_WORKERS":  "4",
			},
			want: envConfig{ConfigPath: "work", Target: "Evernote", BaseURL: "https://example.com/", Workers: 4},
		},
		{
			name: "invalid workers ignored",
			vars: map[string]string{"HTMLCOPY_WORKERS": "many"},
			want: envConfig{},
		},
		{
			name: "negative workers ignored",
			vars: map[string]string{"HTMLCOPY_WORKERS": "-2"},
			want: envConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := loadEnvConfig(func(k string) string { return tt.vars[k] })
			if *got != tt.want {
				t.Errorf("loadEnvConfig() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger(&buf, false, false)

	warnUnknownEnvVars(logger, []string{
		"HTMLCOPY_TARGET=Evernote",
		"HTMLCOPY_TARGETS=oops",
		"PATH=/usr/bin",
	})

	out := buf.String()
	if !strings.Contains(out, "HTMLCOPY_TARGETS") {
		t.Errorf("output = %q, want warning for HTMLCOPY_TARGETS", out)
	}
	if strings.Contains(out, "HTMLCOPY_TARGET ") || strings.Contains(out, "PATH") {
		t.Errorf("output = %q, should only warn about unknown HTMLCOPY_ variables", out)
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("env overrides file", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{BaseURL: "https://file/"}
		applyEnvConfig(&envConfig{BaseURL: "https://env/"}, cfg)
		if cfg.BaseURL != "https://env/" {
			t.Errorf("BaseURL = %q, want env value", cfg.BaseURL)
		}
	})

	t.Run("unset env keeps file", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{BaseURL: "https://file/"}
		applyEnvConfig(&envConfig{}, cfg)
		if cfg.BaseURL != "https://file/" {
			t.Errorf("BaseURL = %q, want file value", cfg.BaseURL)
		}
	})
}
