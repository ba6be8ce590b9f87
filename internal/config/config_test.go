package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"rtcalc/internal/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{"RTCALC_LOG_LEVEL", "RTCALC_LOG_FORMAT", "RTCALC_API_BIND", "RTCALC_API_TOKEN"} {
		t.Setenv(key, "")
	}
	return home
}

func TestLoadDefaultConfig(t *testing.T) {
	home := isolate(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(home, ".config", "rtcalc", "config.toml"); resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if cfg.Input.LineNumbering != "compact" {
		t.Fatalf("unexpected line numbering: %q", cfg.Input.LineNumbering)
	}
	if cfg.Output.Format != "table" || cfg.Output.Style != "rounded" || cfg.Output.Color != "auto" {
		t.Fatalf("unexpected output defaults: %+v", cfg.Output)
	}
	if cfg.Server.Bind != "127.0.0.1:7488" {
		t.Fatalf("unexpected bind: %q", cfg.Server.Bind)
	}
	if !cfg.Server.MetricsEnabled {
		t.Fatal("expected metrics enabled by default")
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	configPath := filepath.Join(t.TempDir(), "rtcalc.toml")

	type payload struct {
		Input struct {
			LineNumbering string `toml:"line_numbering"`
		} `toml:"input"`
		Output struct {
			Format string `toml:"format"`
			Style  string `toml:"style"`
		} `toml:"output"`
		Logging struct {
			Level string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Input.LineNumbering = "Source"
	custom.Output.Format = "CSV"
	custom.Output.Style = "ascii"
	custom.Logging.Level = "debug"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Input.LineNumbering != "source" {
		t.Fatalf("expected normalized numbering, got %q", cfg.Input.LineNumbering)
	}
	if cfg.Output.Format != "csv" || cfg.Output.Style != "ascii" {
		t.Fatalf("unexpected output: %+v", cfg.Output)
	}
	if cfg.Output.Color != "auto" {
		t.Fatalf("expected default colour to survive partial file, got %q", cfg.Output.Color)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.Logging.Level)
	}
}

func TestEnvOverridesConfigFile(t *testing.T) {
	isolate(t)
	configPath := filepath.Join(t.TempDir(), "rtcalc.toml")
	content := "[server]\nbind = \"127.0.0.1:9000\"\napi_token = \"file-token\"\n[logging]\nlevel = \"info\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("RTCALC_API_TOKEN", "env-token")
	t.Setenv("RTCALC_API_BIND", "0.0.0.0:7000")
	t.Setenv("RTCALC_LOG_LEVEL", "ERROR")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.APIToken != "env-token" {
		t.Errorf("expected token from env, got %q", cfg.Server.APIToken)
	}
	if cfg.Server.Bind != "0.0.0.0:7000" {
		t.Errorf("expected bind from env, got %q", cfg.Server.Bind)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("expected level from env, got %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	isolate(t)
	tests := map[string]string{
		"format":    "[output]\nformat = \"pdf\"\n",
		"style":     "[output]\nstyle = \"fancy\"\n",
		"color":     "[output]\ncolor = \"sometimes\"\n",
		"numbering": "[input]\nline_numbering = \"raw\"\n",
		"bind":      "[server]\nbind = \"nowhere\"\n",
		"level":     "[logging]\nlevel = \"loud\"\n",
		"unknown":   "[output]\nwidth = 10\n",
	}
	for name, content := range tests {
		path := filepath.Join(t.TempDir(), name+".toml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, _, _, err := config.Load(path); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestLoadExpandsLogFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(t.TempDir(), "rtcalc.toml")
	if err := os.WriteFile(path, []byte("[logging]\nfile = \"~/logs/rtcalc.log\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := filepath.Join(home, "logs", "rtcalc.log"); cfg.Logging.File != want {
		t.Fatalf("unexpected log file: got %q want %q", cfg.Logging.File, want)
	}
}

func TestCreateSample(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "line_numbering") {
		t.Fatalf("sample config missing input section: %s", contents)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if cfg.Output.Format != "table" {
		t.Fatalf("unexpected sample format: %q", cfg.Output.Format)
	}
}

func TestEncodeRoundTrips(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Format = "json"
	encoded, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	var decoded config.Config
	if err := toml.Unmarshal([]byte(encoded), &decoded); err != nil {
		t.Fatalf("decode encoded config: %v", err)
	}
	if decoded.Output.Format != "json" || decoded.Server.Bind != cfg.Server.Bind {
		t.Fatalf("unexpected decoded config: %+v", decoded)
	}
}
