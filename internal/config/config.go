package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures logsift's settings.
type Config struct {
	LogDir     string
	SummaryDir string
	ErrorCodes string
	LogPattern string
	MaxLines   int
	LogLevel   string
	LogFormat  string
}

const (
	defaultConfigPath = "~/.config/logsift/config.toml"
	defaultSummaryDir = "~/.local/share/logsift/summaries"
	defaultErrorCodes = "error_codes.txt"
	defaultLogPattern = "*.log"
	defaultMaxLines   = 100
	defaultLogLevel   = "info"
	defaultLogFormat  = "text"
)

// DefaultLogDir is the directory the interactive menu scans when none is
// configured.
func DefaultLogDir() string {
	if runtime.GOOS == "windows" {
		root := os.Getenv("SystemRoot")
		if root == "" {
			root = `C:\Windows`
		}
		return filepath.Join(root, "Logs", "CBS")
	}
	return "/var/log"
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogDir:     DefaultLogDir(),
		SummaryDir: mustExpand(defaultSummaryDir),
		ErrorCodes: defaultErrorCodesPath(),
		LogPattern: defaultLogPattern,
		MaxLines:   defaultMaxLines,
		LogLevel:   defaultLogLevel,
		LogFormat:  defaultLogFormat,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogDir     string `toml:"log_dir"`
		SummaryDir string `toml:"summary_dir"`
		ErrorCodes string `toml:"error_codes"`
		LogPattern string `toml:"log_pattern"`
		MaxLines   int    `toml:"max_lines"`
		LogLevel   string `toml:"log_level"`
		LogFormat  string `toml:"log_format"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.LogDir = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.SummaryDir); v != "" {
		cfg.SummaryDir = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.ErrorCodes); v != "" {
		cfg.ErrorCodes = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogPattern); v != "" {
		if _, err := filepath.Match(v, ""); err != nil {
			return Config{}, fmt.Errorf("parse config: log_pattern %q: %w", v, err)
		}
		cfg.LogPattern = v
	}
	if raw.MaxLines > 0 {
		cfg.MaxLines = raw.MaxLines
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(raw.LogFormat); v != "" {
		cfg.LogFormat = v
	}

	return cfg, nil
}

// ExpandPath resolves "~" and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

// defaultErrorCodesPath places the table beside the executable.
func defaultErrorCodesPath() string {
	exe, err := os.Executable()
	if err != nil {
		return defaultErrorCodes
	}
	return filepath.Join(filepath.Dir(exe), defaultErrorCodes)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
