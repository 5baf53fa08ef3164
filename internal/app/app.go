package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/five82/logsift/internal/batch"
	"github.com/five82/logsift/internal/config"
	"github.com/five82/logsift/internal/errcode"
	"github.com/five82/logsift/internal/logging"
	"github.com/five82/logsift/internal/prefs"
	"github.com/five82/logsift/internal/scan"
	"github.com/five82/logsift/internal/summary"
	"github.com/five82/logsift/internal/ui"
)

// ErrConfig marks failures caused by configuration rather than by the logs.
var ErrConfig = errors.New("configuration error")

// Options configure a logsift run. Empty fields fall back to the config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/logsift/prefs.toml
	ErrorCodes string
	SummaryDir string
	LogLevel   string
	LogFormat  string // "text" or "json"
	LogFile    string // diagnostics destination; stderr (or nothing in the TUI) when empty

	// MaxLines overrides the configured error-count limit when non-zero.
	// A negative value keeps every match.
	MaxLines int

	LogPath    string   // scan this log and exit
	AnalyzeAll bool     // analyze every log in AnalyzeDir
	AnalyzeDir string   // batch directory; empty uses the configured log_dir
	AutoExit   bool     // skip the Enter prompt after a non-interactive run
	Codes      []string // decode these codes and exit

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Mode reports which surface opts selects.
func (o Options) Mode() string {
	switch {
	case len(o.Codes) > 0:
		return "decode"
	case o.AnalyzeAll:
		return "batch"
	case o.LogPath != "":
		return "scan"
	default:
		return "menu"
	}
}

// Env holds everything a run needs once configuration has been applied.
type Env struct {
	Config   config.Config
	Prefs    prefs.Prefs
	Resolver *errcode.Resolver
	Scanner  *scan.Scanner
	Writer   *summary.Writer
	Batch    *batch.Runner
	Logger   *slog.Logger

	closeLog func() error
}

// Close releases the diagnostics log file, if one was opened.
func (e *Env) Close() error {
	if e.closeLog == nil {
		return nil
	}
	return e.closeLog()
}

// Setup loads config, prefs and the error-code table and wires the scanner,
// summary writer and batch runner. A missing code table is logged and the
// resolver runs in fallback-only mode.
func Setup(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%w: load config: %w", ErrConfig, err)
	}
	if err := applyOverrides(&cfg, opts); err != nil {
		return nil, err
	}

	env := &Env{
		Config: cfg,
		Prefs:  prefs.Load(opts.PrefsPath),
	}

	asJSON, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	logOut, closeLog, err := logDestination(opts)
	if err != nil {
		return nil, err
	}
	env.closeLog = closeLog
	env.Logger = logging.Init(logOut, logging.ParseLevel(cfg.LogLevel), asJSON)

	resolver, err := errcode.Load(cfg.ErrorCodes)
	switch {
	case errors.Is(err, errcode.ErrResourceMissing):
		env.Logger.Warn("error code table missing; using system messages only", "path", cfg.ErrorCodes)
	case err != nil:
		env.Logger.Warn("error code table unreadable; using system messages only", "path", cfg.ErrorCodes, "error", err)
	default:
		env.Logger.Debug("error code table loaded", "path", cfg.ErrorCodes, "entries", resolver.Len())
	}

	env.Resolver = resolver
	env.Scanner = scan.New(resolver)
	env.Writer = summary.NewWriter(cfg.SummaryDir)
	env.Batch = &batch.Runner{
		Scanner:    env.Scanner,
		Writer:     env.Writer,
		Logger:     env.Logger,
		WriteEmpty: env.Prefs.WriteEmpty,
	}
	return env, nil
}

func applyOverrides(cfg *config.Config, opts Options) error {
	if opts.ErrorCodes != "" {
		path, err := config.ExpandPath(opts.ErrorCodes)
		if err != nil {
			return fmt.Errorf("%w: error codes path: %w", ErrConfig, err)
		}
		cfg.ErrorCodes = path
	}
	if opts.SummaryDir != "" {
		path, err := config.ExpandPath(opts.SummaryDir)
		if err != nil {
			return fmt.Errorf("%w: summary dir: %w", ErrConfig, err)
		}
		cfg.SummaryDir = path
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.LogFormat = opts.LogFormat
	}
	switch {
	case opts.MaxLines > 0:
		cfg.MaxLines = opts.MaxLines
	case opts.MaxLines < 0:
		cfg.MaxLines = 0
	}
	return nil
}

// logDestination keeps diagnostics off the alt screen: the menu logs only to
// an explicit --log-file, the other modes fall back to stderr.
func logDestination(opts Options) (io.Writer, func() error, error) {
	if opts.LogFile == "" {
		if opts.Mode() == "menu" {
			return io.Discard, nil, nil
		}
		return stderr(opts), nil, nil
	}
	path, err := config.ExpandPath(opts.LogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: log file: %w", ErrConfig, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("%w: create log dir: %w", ErrConfig, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: open log file: %w", ErrConfig, err)
	}
	return f, f.Close, nil
}

// Run executes the mode selected by opts until it finishes or the context
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = env.Close() }()

	env.Logger.Debug("starting", "mode", opts.Mode(), "max_lines", env.Config.MaxLines)

	switch opts.Mode() {
	case "decode":
		Decode(env, stdout(opts), opts.Codes)
		return nil
	case "batch":
		err = runBatch(env, opts)
	case "scan":
		err = runScan(env, opts)
	default:
		return ui.Run(ctx, ui.Options{
			Scanner:   env.Scanner,
			Writer:    env.Writer,
			Batch:     env.Batch,
			Config:    env.Config,
			Prefs:     env.Prefs,
			PrefsPath: opts.PrefsPath,
			Logger:    env.Logger,
		})
	}
	if err != nil {
		return err
	}
	waitForEnter(ctx, opts)
	return nil
}

// runScan scans one log, prints the summary and persists it.
func runScan(env *Env, opts Options) error {
	out := stdout(opts)
	path, err := config.ExpandPath(opts.LogPath)
	if err != nil {
		return fmt.Errorf("%w: log path: %w", ErrConfig, err)
	}
	if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
		latest, err := batch.Latest(path, env.Config.LogPattern)
		if err != nil {
			return err
		}
		path = latest
	}

	res, err := env.Scanner.Scan(path, env.Config.MaxLines)
	if err != nil {
		return err
	}

	var saved string
	if res.Found {
		fmt.Fprintln(out, res.Summary.String())
		saved, err = env.Writer.Write(res)
	} else {
		fmt.Fprintln(out, summary.NoErrorsText(path))
		if env.Prefs.WriteEmpty {
			saved, err = env.Writer.WriteNoErrors(path)
		}
	}
	if err != nil {
		return err
	}
	if saved != "" {
		fmt.Fprintf(out, "\nSummary saved to %s\n", saved)
	}
	env.Logger.Info("scan finished", "path", path, "found", res.Found, "lines", len(res.Summary.Blocks))
	return nil
}

// runBatch analyses every log in the batch directory and prints the report.
func runBatch(env *Env, opts Options) error {
	dir := opts.AnalyzeDir
	if dir == "" {
		dir = env.Config.LogDir
	}
	dir, err := config.ExpandPath(dir)
	if err != nil {
		return fmt.Errorf("%w: batch dir: %w", ErrConfig, err)
	}

	report, err := env.Batch.Run(dir, env.Config.LogPattern, env.Config.MaxLines)
	if err != nil {
		return err
	}
	out := stdout(opts)
	fmt.Fprint(out, report.Text())
	fmt.Fprintf(out, "\nReport saved to %s\nIndex saved to %s\n", report.ReportPath, report.IndexPath)
	return nil
}

// waitForEnter holds the console open so a double-clicked run stays readable.
func waitForEnter(ctx context.Context, opts Options) {
	if opts.AutoExit || opts.Stdin == nil {
		return
	}
	fmt.Fprint(stdout(opts), "\nPress Enter to exit...")
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = bufio.NewReader(opts.Stdin).ReadString('\n')
	}()
	select {
	case <-done:
	case <-ctx.Done():
	}
	fmt.Fprintln(stdout(opts))
}

func stdout(opts Options) io.Writer {
	if opts.Stdout == nil {
		return os.Stdout
	}
	return opts.Stdout
}

func stderr(opts Options) io.Writer {
	if opts.Stderr == nil {
		return os.Stderr
	}
	return opts.Stderr
}

// Decode resolves each code with the configured resolver and writes one
// line per code: the code, its source and the text.
func Decode(env *Env, w io.Writer, codes []string) {
	for _, code := range codes {
		code = strings.TrimSpace(code)
		d := env.Resolver.Resolve(code)
		fmt.Fprintf(w, "%s  [%s] %s\n", code, d.Source, d.Text)
	}
}
