package batch

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/five82/logsift/internal/scan"
	"github.com/five82/logsift/internal/summary"
)

// ErrNoLogs reports a directory with no files matching the pattern.
var ErrNoLogs = errors.New("no log files found")

// DefaultPattern selects the files analysed in a directory.
const DefaultPattern = "*.log"

// FileStatus classifies the outcome for one file.
type FileStatus string

const (
	StatusErrors     FileStatus = "errors"
	StatusClean      FileStatus = "clean"
	StatusUnreadable FileStatus = "unreadable"
)

// FileReport is the per-file entry of a batch report.
type FileReport struct {
	Path        string     `yaml:"path"`
	Status      FileStatus `yaml:"status"`
	Matches     int        `yaml:"matches"`
	SummaryPath string     `yaml:"summary,omitempty"`
	Error       string     `yaml:"error,omitempty"`
}

// Report describes one batch run.
type Report struct {
	RunID      string       `yaml:"run_id"`
	Dir        string       `yaml:"dir"`
	Pattern    string       `yaml:"pattern"`
	MaxLines   int          `yaml:"max_lines"`
	StartedAt  time.Time    `yaml:"started_at"`
	Files      []FileReport `yaml:"files"`
	Codes      []CodeTally  `yaml:"codes"`
	ReportPath string       `yaml:"-"`
	IndexPath  string       `yaml:"-"`
}

// Count returns how many files ended with status.
func (r Report) Count(status FileStatus) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == status {
			n++
		}
	}
	return n
}

// Runner scans every log in a directory, one file at a time.
type Runner struct {
	Scanner    *scan.Scanner
	Writer     *summary.Writer
	Logger     *slog.Logger
	WriteEmpty bool // write a "no errors found" marker for clean files
}

// Run analyses the files in dir matching pattern, writes a summary per file
// with errors, and writes the batch report and YAML index. A file that
// cannot be read is recorded and skipped.
func (r *Runner) Run(dir, pattern string, maxLines int) (Report, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if pattern == "" {
		pattern = DefaultPattern
	}

	files, err := listLogs(dir, pattern)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		RunID:     uuid.NewString(),
		Dir:       dir,
		Pattern:   pattern,
		MaxLines:  maxLines,
		StartedAt: time.Now(),
	}
	logger = logger.With("run_id", report.RunID)
	logger.Info("batch started", "dir", dir, "pattern", pattern, "files", len(files))

	tally := newTallier()
	for _, path := range files {
		fr := FileReport{Path: path}
		res, err := r.Scanner.Scan(path, maxLines)
		switch {
		case err != nil:
			fr.Status = StatusUnreadable
			fr.Error = err.Error()
			logger.Warn("skipping unreadable log", "path", path, "error", err)
		case !res.Found:
			fr.Status = StatusClean
			if r.WriteEmpty {
				fr.SummaryPath, err = r.Writer.WriteNoErrors(path)
			}
		default:
			fr.Status = StatusErrors
			fr.Matches = len(res.Summary.Blocks)
			tally.add(res)
			fr.SummaryPath, err = r.Writer.Write(res)
		}
		if err != nil && fr.Status != StatusUnreadable {
			return report, fmt.Errorf("write summary for %s: %w", path, err)
		}
		logger.Debug("scanned log", "path", path, "status", fr.Status, "matches", fr.Matches)
		report.Files = append(report.Files, fr)
	}
	report.Codes = tally.tallies()

	stamp := r.Writer.Stamp()
	report.ReportPath, err = r.Writer.WriteFile("batch_"+stamp+".txt", []byte(report.Text()))
	if err != nil {
		return report, err
	}
	index, err := yaml.Marshal(report)
	if err != nil {
		return report, fmt.Errorf("marshal batch index: %w", err)
	}
	report.IndexPath, err = r.Writer.WriteFile("batch_"+stamp+".yaml", index)
	if err != nil {
		return report, err
	}

	logger.Info("batch finished",
		"errors", report.Count(StatusErrors),
		"clean", report.Count(StatusClean),
		"unreadable", report.Count(StatusUnreadable),
		"codes", len(report.Codes),
	)
	return report, nil
}

// Text renders the human-readable batch report.
func (r Report) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Batch %s\n", r.RunID)
	fmt.Fprintf(&b, "Directory: %s (%s)\n", r.Dir, r.Pattern)
	fmt.Fprintf(&b, "Files: %d with errors, %d clean, %d unreadable\n",
		r.Count(StatusErrors), r.Count(StatusClean), r.Count(StatusUnreadable))

	b.WriteString("\n")
	for _, f := range r.Files {
		switch f.Status {
		case StatusErrors:
			fmt.Fprintf(&b, "%s: %d error lines\n", f.Path, f.Matches)
		case StatusClean:
			fmt.Fprintf(&b, "%s: no errors found\n", f.Path)
		case StatusUnreadable:
			fmt.Fprintf(&b, "%s: unreadable (%s)\n", f.Path, f.Error)
		}
	}

	if len(r.Codes) > 0 {
		b.WriteString("\nDistinct error codes:\n")
		for _, c := range r.Codes {
			fmt.Fprintf(&b, "Error Code: %s (x%d in %d files)\n", c.Code, c.Occurrences, len(c.Files))
			fmt.Fprintf(&b, "Message: %s\n", c.Message)
		}
	}
	return b.String()
}

func listLogs(dir, pattern string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open log dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open log dir: %s is not a directory", dir)
	}
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("match %q: %w", pattern, err)
	}
	var files []string
	for _, m := range matches {
		if fi, err := os.Stat(m); err == nil && fi.IsDir() {
			continue
		}
		files = append(files, m)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s matching %s", ErrNoLogs, dir, pattern)
	}
	sort.Strings(files)
	return files, nil
}

// Latest returns the most recently modified file in dir matching pattern.
func Latest(dir, pattern string) (string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	files, err := listLogs(dir, pattern)
	if err != nil {
		return "", err
	}
	var (
		latest  string
		latestT time.Time
	)
	for _, f := range files {
		fi, err := os.Stat(f)
		if err != nil {
			continue
		}
		if latest == "" || fi.ModTime().After(latestT) {
			latest, latestT = f, fi.ModTime()
		}
	}
	if latest == "" {
		return "", fmt.Errorf("%w in %s matching %s", ErrNoLogs, dir, pattern)
	}
	return latest, nil
}
