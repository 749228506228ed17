// Package config loads and validates web2md configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-web2md/internal/hints"
	"github.com/alnah/go-web2md/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrEmptyConfigName  = errors.New("config name cannot be empty")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrFieldTooLong     = errors.New("field exceeds maximum length")
	ErrUnsupportedValue = errors.New("unsupported config value")
)

// Field length limits.
const (
	MaxURLLength      = 2048 // Browser limit
	MaxFilenameLength = 100  // Output filename stem
	MaxDirLength      = 1024 // Directory paths
	MaxSelectorLength = 200  // CSS selector for auth wait
	MaxTimeoutLength  = 20   // "30s", "2m30s"
)

// DefaultOutputDir receives salvaged markdown when no directory is configured.
const DefaultOutputDir = "markdown_output"

// CodeFenceFenced is the only supported code fence style.
const CodeFenceFenced = "fenced"

// Config holds all configuration for page salvaging.
type Config struct {
	Target  TargetConfig  `yaml:"target"`
	Output  OutputConfig  `yaml:"output"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Convert ConvertConfig `yaml:"convert"`
	Preview PreviewConfig `yaml:"preview"`
}

// TargetConfig identifies the page to fetch.
type TargetConfig struct {
	URL      string `yaml:"url"`      // Page to fetch (empty = must specify on CLI)
	Filename string `yaml:"filename"` // Output name stem (empty = derived from URL)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Output directory (empty = DefaultOutputDir)
}

// FetchConfig defines browser fetch options.
type FetchConfig struct {
	Headless     bool   `yaml:"headless"`     // Run Chrome without a window
	UserDataDir  string `yaml:"userDataDir"`  // Profile dir preserving login state (empty = ephemeral)
	Timeout      string `yaml:"timeout"`      // Page load timeout, e.g. "60s"
	WaitSelector string `yaml:"waitSelector"` // Selector to wait for on auth-gated pages
}

// ConvertConfig mirrors the HTML-to-markdown conversion surface.
// WrapBody, UnicodeOutput and CodeFenceStyle document fixed converter
// behavior; values contradicting it are rejected by Validate.
type ConvertConfig struct {
	IgnoreLinks    bool   `yaml:"ignoreLinks"`    // Strip link targets, keep text
	IgnoreImages   bool   `yaml:"ignoreImages"`   // Drop images entirely
	IgnoreEmphasis bool   `yaml:"ignoreEmphasis"` // Strip emphasis markers
	WrapBody       bool   `yaml:"wrapBody"`       // Must stay false (no wrapping)
	UnicodeOutput  bool   `yaml:"unicodeOutput"`  // Must stay true
	CodeFenceStyle string `yaml:"codeFenceStyle"` // Must stay "fenced"
}

// PreviewConfig defines HTML preview options.
type PreviewConfig struct {
	Enabled bool `yaml:"enabled"` // Write an HTML preview next to the markdown
}

// DefaultConfig returns the configuration matching the converter's
// inherent behavior: unicode fenced output, headless fetch, no preview.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Dir: DefaultOutputDir},
		Fetch:  FetchConfig{Headless: true},
		Convert: ConvertConfig{
			UnicodeOutput:  true,
			CodeFenceStyle: CodeFenceFenced,
		},
	}
}

// Validate checks field lengths and rejects values the converter cannot honor.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("target.url", c.Target.URL, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("target.filename", c.Target.Filename, MaxFilenameLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxDirLength); err != nil {
		return err
	}
	if err := validateFieldLength("fetch.userDataDir", c.Fetch.UserDataDir, MaxDirLength); err != nil {
		return err
	}
	if err := validateFieldLength("fetch.waitSelector", c.Fetch.WaitSelector, MaxSelectorLength); err != nil {
		return err
	}
	if err := validateFieldLength("fetch.timeout", c.Fetch.Timeout, MaxTimeoutLength); err != nil {
		return err
	}

	if c.Fetch.Timeout != "" {
		d, err := time.ParseDuration(c.Fetch.Timeout)
		if err != nil {
			return fmt.Errorf("fetch.timeout: invalid duration %q", c.Fetch.Timeout)
		}
		if d <= 0 {
			return fmt.Errorf("fetch.timeout: must be positive, got %q", c.Fetch.Timeout)
		}
	}

	if c.Convert.WrapBody {
		return fmt.Errorf("%w: convert.wrapBody (body wrapping is not supported)", ErrUnsupportedValue)
	}
	if !c.Convert.UnicodeOutput {
		return fmt.Errorf("%w: convert.unicodeOutput (ASCII transliteration is not supported)", ErrUnsupportedValue)
	}
	if c.Convert.CodeFenceStyle != "" && c.Convert.CodeFenceStyle != CodeFenceFenced {
		return fmt.Errorf("%w: convert.codeFenceStyle %q (only %q is supported)",
			ErrUnsupportedValue, c.Convert.CodeFenceStyle, CodeFenceFenced)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Values absent from the file keep their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if strings.ContainsAny(nameOrPath, "/\\") {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-web2md/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-web2md", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s%s", ErrConfigNotFound,
		strings.Join(triedPaths, ", "), hints.ForConfigNotFound(triedPaths))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
