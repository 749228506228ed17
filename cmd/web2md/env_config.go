package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-web2md/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath   string        // WEB2MD_CONFIG: config file path
	TargetURL    string        // WEB2MD_TARGET_URL: page to fetch
	Filename     string        // WEB2MD_TARGET_FILENAME: output name override
	OutputDir    string        // WEB2MD_OUTPUT_DIR: default output directory
	Timeout      time.Duration // WEB2MD_TIMEOUT: fetch timeout
	UserDataDir  string        // WEB2MD_USER_DATA_DIR: Chrome profile directory
	WaitSelector string        // WEB2MD_WAIT_SELECTOR: content-ready CSS selector
	Workers      int           // WEB2MD_WORKERS: parallel workers
	Headless     bool          // WEB2MD_HEADLESS: run without a browser window
	HeadlessSet  bool          // Whether WEB2MD_HEADLESS held a parseable bool
}

// knownEnvVars lists valid WEB2MD_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"WEB2MD_CONFIG":          true,
	"WEB2MD_TARGET_URL":      true,
	"WEB2MD_TARGET_FILENAME": true,
	"WEB2MD_OUTPUT_DIR":      true,
	"WEB2MD_TIMEOUT":         true,
	"WEB2MD_USER_DATA_DIR":   true,
	"WEB2MD_WAIT_SELECTOR":   true,
	"WEB2MD_WORKERS":         true,
	"WEB2MD_HEADLESS":        true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized WEB2MD_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:   os.Getenv("WEB2MD_CONFIG"),
		TargetURL:    os.Getenv("WEB2MD_TARGET_URL"),
		Filename:     os.Getenv("WEB2MD_TARGET_FILENAME"),
		OutputDir:    os.Getenv("WEB2MD_OUTPUT_DIR"),
		UserDataDir:  os.Getenv("WEB2MD_USER_DATA_DIR"),
		WaitSelector: os.Getenv("WEB2MD_WAIT_SELECTOR"),
	}

	// Parse duration for timeout
	if timeout := os.Getenv("WEB2MD_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	// Parse int for workers
	if workers := os.Getenv("WEB2MD_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	// Parse bool for headless
	if headless := os.Getenv("WEB2MD_HEADLESS"); headless != "" {
		if b, err := strconv.ParseBool(headless); err == nil {
			cfg.Headless = b
			cfg.HeadlessSet = true
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized WEB2MD_* variables.
// Helps catch typos like WEB2MD_TIMOUT instead of WEB2MD_TIMEOUT.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "WEB2MD_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set env vars override config file values, so the full precedence is:
// CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFetchFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.TargetURL != "" {
		cfg.Target.URL = env.TargetURL
	}
	if env.Filename != "" {
		cfg.Target.Filename = env.Filename
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Timeout > 0 {
		cfg.Fetch.Timeout = env.Timeout.String()
	}
	if env.UserDataDir != "" {
		cfg.Fetch.UserDataDir = env.UserDataDir
	}
	if env.WaitSelector != "" {
		cfg.Fetch.WaitSelector = env.WaitSelector
	}
	if env.HeadlessSet {
		cfg.Fetch.Headless = env.Headless
	}
}
