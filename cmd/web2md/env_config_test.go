package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-web2md/internal/config"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("WEB2MD_CONFIG", "conf.yaml")
	t.Setenv("WEB2MD_TARGET_URL", "https://example.com")
	t.Setenv("WEB2MD_OUTPUT_DIR", "out")
	t.Setenv("WEB2MD_TIMEOUT", "90s")
	t.Setenv("WEB2MD_WORKERS", "4")
	t.Setenv("WEB2MD_USER_DATA_DIR", "/tmp/profile")
	t.Setenv("WEB2MD_WAIT_SELECTOR", "main")
	t.Setenv("WEB2MD_TARGET_FILENAME", "docs")
	t.Setenv("WEB2MD_HEADLESS", "false")

	cfg := loadEnvConfig()

	if cfg.ConfigPath != "conf.yaml" || cfg.TargetURL != "https://example.com" || cfg.OutputDir != "out" {
		t.Errorf("loadEnvConfig() = %+v", cfg)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v, want 90s", cfg.Timeout)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.UserDataDir != "/tmp/profile" || cfg.WaitSelector != "main" {
		t.Errorf("browser env vars not loaded: %+v", cfg)
	}
	if cfg.Filename != "docs" {
		t.Errorf("Filename = %q, want %q", cfg.Filename, "docs")
	}
	if !cfg.HeadlessSet || cfg.Headless {
		t.Errorf("WEB2MD_HEADLESS=false not loaded: %+v", cfg)
	}
}

func TestLoadEnvConfigIgnoresInvalidValues(t *testing.T) {
	t.Setenv("WEB2MD_TIMEOUT", "soon")
	t.Setenv("WEB2MD_WORKERS", "-2")

	cfg := loadEnvConfig()
	if cfg.Timeout != 0 {
		t.Errorf("unparseable timeout should be ignored, got %v", cfg.Timeout)
	}
	if cfg.Workers != 0 {
		t.Errorf("negative workers should be ignored, got %d", cfg.Workers)
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("WEB2MD_TIMOUT", "30s") // typo on purpose
	t.Setenv("WEB2MD_TIMEOUT", "30s")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	out := buf.String()
	if !strings.Contains(out, "WEB2MD_TIMOUT") {
		t.Errorf("expected typo warning, got %q", out)
	}
	if strings.Contains(out, "WEB2MD_TIMEOUT ") {
		t.Errorf("known var should not be warned about: %q", out)
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	env := &envConfig{
		TargetURL:    "https://example.com",
		OutputDir:    "env_out",
		Timeout:      90 * time.Second,
		UserDataDir:  "/tmp/p",
		WaitSelector: "article",
	}
	cfg := config.DefaultConfig()
	applyEnvConfig(env, cfg)

	if cfg.Target.URL != "https://example.com" {
		t.Errorf("Target.URL = %q", cfg.Target.URL)
	}
	if cfg.Output.Dir != "env_out" {
		t.Errorf("Output.Dir = %q", cfg.Output.Dir)
	}
	if cfg.Fetch.Timeout != "1m30s" {
		t.Errorf("Fetch.Timeout = %q", cfg.Fetch.Timeout)
	}
	if cfg.Fetch.UserDataDir != "/tmp/p" || cfg.Fetch.WaitSelector != "article" {
		t.Errorf("Fetch = %+v", cfg.Fetch)
	}
}

func TestApplyEnvConfigHeadless(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	applyEnvConfig(&envConfig{Headless: false, HeadlessSet: true}, cfg)
	if cfg.Fetch.Headless {
		t.Error("WEB2MD_HEADLESS=false should disable headless mode")
	}

	cfg = config.DefaultConfig()
	applyEnvConfig(&envConfig{}, cfg)
	if !cfg.Fetch.Headless {
		t.Error("unset WEB2MD_HEADLESS should keep the headless default")
	}
}

func TestApplyEnvConfigOverridesFile(t *testing.T) {
	t.Parallel()

	env := &envConfig{TargetURL: "https://env.example.com", OutputDir: "env_out"}
	cfg := config.DefaultConfig()
	cfg.Target.URL = "https://file.example.com"
	cfg.Output.Dir = "file_out"
	cfg.Fetch.UserDataDir = "/file/profile"
	applyEnvConfig(env, cfg)

	if cfg.Target.URL != "https://env.example.com" {
		t.Errorf("env should win over the config file: %q", cfg.Target.URL)
	}
	if cfg.Output.Dir != "env_out" {
		t.Errorf("env should win over the config file: %q", cfg.Output.Dir)
	}
	if cfg.Fetch.UserDataDir != "/file/profile" {
		t.Errorf("unset env vars must leave file values alone: %q", cfg.Fetch.UserDataDir)
	}
}
