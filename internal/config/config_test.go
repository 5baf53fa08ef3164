package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.MaxLines != defaultMaxLines {
		t.Fatalf("MaxLines = %d, want %d", cfg.MaxLines, defaultMaxLines)
	}
	if cfg.LogPattern != defaultLogPattern {
		t.Fatalf("LogPattern = %q, want %q", cfg.LogPattern, defaultLogPattern)
	}
	if cfg.LogDir != DefaultLogDir() {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, DefaultLogDir())
	}

	wantSummary, err := expandPath(defaultSummaryDir)
	if err != nil {
		t.Fatalf("expandPath(defaultSummaryDir) returned error: %v", err)
	}
	if cfg.SummaryDir != wantSummary {
		t.Fatalf("SummaryDir = %q, want %q", cfg.SummaryDir, wantSummary)
	}
	if filepath.Base(cfg.ErrorCodes) != defaultErrorCodes {
		t.Fatalf("ErrorCodes = %q, want it to end with %s", cfg.ErrorCodes, defaultErrorCodes)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
log_dir = "  ~/logs  "
summary_dir = " ~/out "
error_codes = "~/codes.txt"
log_pattern = "*.txt"
max_lines = 25
log_level = "debug"
log_format = "json"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogDir != filepath.Join(home, "logs") {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, filepath.Join(home, "logs"))
	}
	if cfg.SummaryDir != filepath.Join(home, "out") {
		t.Fatalf("SummaryDir = %q, want %q", cfg.SummaryDir, filepath.Join(home, "out"))
	}
	if cfg.ErrorCodes != filepath.Join(home, "codes.txt") {
		t.Fatalf("ErrorCodes = %q, want %q", cfg.ErrorCodes, filepath.Join(home, "codes.txt"))
	}
	if cfg.LogPattern != "*.txt" {
		t.Fatalf("LogPattern = %q, want %q", cfg.LogPattern, "*.txt")
	}
	if cfg.MaxLines != 25 {
		t.Fatalf("MaxLines = %d, want 25", cfg.MaxLines)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("LogFormat = %q, want json", cfg.LogFormat)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
log_dir = "   "
max_lines = 0
log_level = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogDir != DefaultLogDir() {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, DefaultLogDir())
	}
	if cfg.MaxLines != defaultMaxLines {
		t.Fatalf("MaxLines = %d, want %d", cfg.MaxLines, defaultMaxLines)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`log_dir = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_InvalidPatternFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`log_pattern = "[a-"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load returned nil error, want pattern error")
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
