package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-htmlcopy/internal/fileutil"
	"github.com/alnah/go-htmlcopy/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrTooManyEntries  = errors.New("too many entries")
	ErrInvalidColorKey = errors.New("invalid color key")
	ErrInvalidBaseURL  = errors.New("invalid base URL")
)

// Field length limits.
const (
	MaxNameLength       = 100  // Target set and palette names
	MaxDefinitionLength = 500  // One target definition
	MaxPropertyLength   = 64   // One CSS property name
	MaxStyleLength      = 500  // Mark style declarations
	MaxColorLength      = 64   // "#ffffff", "rgb(255, 255, 255)", names
	MaxURLLength        = 2048 // Browser limit
	MaxPathLength       = 4096 // PATH_MAX

	MaxTargets        = 100
	MaxStylesToRemove = 100
	MaxColors         = 1000
)

// DefaultTargetSet is the target preset used when none is configured.
const DefaultTargetSet = "default"

// configDirName is the directory under os.UserConfigDir searched for configs.
const configDirName = "go-htmlcopy"

// Config holds all configuration for copy-time rewriting.
type Config struct {
	// TargetSet names a target preset from the assets (default: "default").
	TargetSet string `yaml:"targetSet"`

	// Targets, when non-empty, replaces the preset's definitions.
	Targets []string `yaml:"targets"`

	// StylesToRemove, when non-empty, replaces the preset's list for action x.
	StylesToRemove []string `yaml:"stylesToRemove"`

	// MarkStyle, when non-empty, replaces the preset's mark style for action a.
	MarkStyle string `yaml:"markStyle"`

	// Palette names a color mapping from the assets (empty = preset's palette).
	Palette string `yaml:"palette"`

	// Colors are merged over the palette's mapping.
	Colors map[string]string `yaml:"colors"`

	// BaseURL resolves relative image sources (empty = left unchanged).
	BaseURL string `yaml:"baseURL"`

	// Sanitize strips scripts and unsafe attributes before a target runs.
	Sanitize bool `yaml:"sanitize"`

	// HighlightStyle is the chroma style for code in Markdown input.
	HighlightStyle string `yaml:"highlightStyle"`

	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Assets AssetsConfig `yaml:"assets"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// Validate checks field lengths and value shapes.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("targetSet", c.TargetSet, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("palette", c.Palette, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("markStyle", c.MarkStyle, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("highlightStyle", c.HighlightStyle, MaxNameLength); err != nil {
		return err
	}

	if err := validateCount("targets", len(c.Targets), MaxTargets); err != nil {
		return err
	}
	for i, def := range c.Targets {
		if err := validateFieldLength(fmt.Sprintf("targets[%d]", i), def, MaxDefinitionLength); err != nil {
			return err
		}
	}

	if err := validateCount("stylesToRemove", len(c.StylesToRemove), MaxStylesToRemove); err != nil {
		return err
	}
	for i, prop := range c.StylesToRemove {
		if err := validateFieldLength(fmt.Sprintf("stylesToRemove[%d]", i), prop, MaxPropertyLength); err != nil {
			return err
		}
	}

	if err := validateCount("colors", len(c.Colors), MaxColors); err != nil {
		return err
	}
	for key, value := range c.Colors {
		if err := ValidateColorKey(key); err != nil {
			return fmt.Errorf("colors: %w", err)
		}
		if err := validateFieldLength("colors."+key, value, MaxColorLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("baseURL", c.BaseURL, MaxURLLength); err != nil {
		return err
	}
	if c.BaseURL != "" {
		if _, err := ParseBaseURL(c.BaseURL); err != nil {
			return fmt.Errorf("baseURL: %w", err)
		}
	}

	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	return validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength)
}

// ValidateColorKey checks that a color mapping key is non-empty, trimmed and
// lower-case, the form action c looks colors up in.
func ValidateColorKey(key string) error {
	if key == "" || strings.TrimSpace(key) != key {
		return fmt.Errorf("%w: %q (must be non-empty and trimmed)", ErrInvalidColorKey, key)
	}
	if strings.ToLower(key) != key {
		return fmt.Errorf("%w: %q (must be lower-case)", ErrInvalidColorKey, key)
	}
	if len(key) > MaxColorLength {
		return fmt.Errorf("%w: %q (%d chars, max %d)", ErrInvalidColorKey, key, len(key), MaxColorLength)
	}
	return nil
}

// ParseBaseURL parses a base URL for image resolution.
// A value without a scheme is taken as a local directory and converted to a
// file: URL ending in '/', so relative sources resolve inside it.
func ParseBaseURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, nil
	}
	u, err := url.Parse(raw)
	if err == nil && u.IsAbs() && len(u.Scheme) > 1 {
		return u, nil
	}

	// Plain paths, including Windows drive paths parsed with a 1-letter scheme.
	abs, err := filepath.Abs(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return &url.URL{Scheme: "file", Path: p}, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateCount checks if a list field has too many entries.
func validateCount(fieldName string, n, maxCount int) error {
	if n > maxCount {
		return fmt.Errorf("%w: %s (%d, max %d)", ErrTooManyEntries, fieldName, n, maxCount)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// the default target set with its own palette and styles.
func DefaultConfig() *Config {
	return &Config{
		TargetSet: DefaultTargetSet,
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	cfg := DefaultConfig()
	if err := yamlutil.Read(f, cfg, true); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if cfg.TargetSet == "" {
		cfg.TargetSet = DefaultTargetSet
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the files tried for a config name, in order:
// name.yaml and name.yml in the current directory, then in ~/.config/go-htmlcopy/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
