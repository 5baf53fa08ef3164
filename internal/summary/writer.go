package summary

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/five82/logsift/internal/scan"
)

// TimestampLayout is the yyyyMMdd_HHmmss stamp embedded in output names.
const TimestampLayout = "20060102_150405"

// Writer persists scan summaries into a directory.
type Writer struct {
	Dir string
	Now func() time.Time
}

// NewWriter returns a Writer for dir using the wall clock.
func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir, Now: time.Now}
}

// FileName returns the summary file name for a log path at time t.
func FileName(logPath string, t time.Time) string {
	base := filepath.Base(logPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "log"
	}
	return fmt.Sprintf("%s_summary_%s.txt", base, t.Format(TimestampLayout))
}

// Write stores the summary of res and returns the file path.
func (w *Writer) Write(res scan.Result) (string, error) {
	return w.write(res.Path, res.Summary.String())
}

// WriteNoErrors stores the "no errors found" marker for logPath.
func (w *Writer) WriteNoErrors(logPath string) (string, error) {
	return w.write(logPath, NoErrorsText(logPath))
}

// NoErrorsText is the marker content used when a log had no error lines.
func NoErrorsText(logPath string) string {
	return "No errors found in " + logPath
}

// Stamp returns the current timestamp in TimestampLayout.
func (w *Writer) Stamp() string {
	return w.now().Format(TimestampLayout)
}

// WriteFile stores data under name in the summary directory. An existing
// file is never replaced: a "_2", "_3", ... suffix is inserted before the
// extension until the name is free.
func (w *Writer) WriteFile(name string, data []byte) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("summary: create dir: %w", err)
	}
	file, path, err := createUnique(w.Dir, name)
	if err != nil {
		return "", err
	}
	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("summary: write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("summary: close %s: %w", path, err)
	}
	return path, nil
}

const maxNameAttempts = 1000

func createUnique(dir, name string) (*os.File, string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for n := 1; n <= maxNameAttempts; n++ {
		candidate := name
		if n > 1 {
			candidate = fmt.Sprintf("%s_%d%s", stem, n, ext)
		}
		path := filepath.Join(dir, candidate)
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return file, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("summary: create %s: %w", path, err)
		}
	}
	return nil, "", fmt.Errorf("summary: no free name for %s in %s", name, dir)
}

func (w *Writer) write(logPath, content string) (string, error) {
	name := FileName(logPath, w.now())
	return w.WriteFile(name, []byte(content+"\n"))
}

func (w *Writer) now() time.Time {
	if w.Now == nil {
		return time.Now()
	}
	return w.Now()
}
