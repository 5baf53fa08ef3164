package logtail

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines, nil)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_FilterKeepsTailOfMatches(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "mixed.log")
	var content strings.Builder
	for i := 1; i <= 20; i++ {
		if i%2 == 0 {
			fmt.Fprintf(&content, "keep %d\n", i)
		} else {
			fmt.Fprintf(&content, "drop %d\n", i)
		}
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	keep := func(line string) bool { return strings.HasPrefix(line, "keep") }
	got, err := Read(logPath, 3, keep)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	want := []string{"keep 16", "keep 18", "keep 20"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Read() = %v, want %v", got, want)
	}
}

func TestRead_NoMatchesReturnsEmpty(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "quiet.log")
	if err := os.WriteFile(logPath, []byte("a\nb\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := Read(logPath, 5, func(string) bool { return false })
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Read() = %v, want empty", got)
	}
}

func TestRead_MissingFileErrors(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.log"), 5, nil)
	if err == nil {
		t.Fatalf("Read returned nil error, want open error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Read error = %v, want it to wrap os.ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), "open log") {
		t.Fatalf("Read error = %q, want it to mention open log", err.Error())
	}
}

func TestRead_HugeLimitOnSmallFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "small.log")
	if err := os.WriteFile(logPath, []byte("one\ntwo\nthree\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	for _, limit := range []int{math.MaxInt32, math.MaxInt} {
		got, err := Read(logPath, limit, nil)
		if err != nil {
			t.Fatalf("Read(%d) error = %v", limit, err)
		}
		if want := []string{"one", "two", "three"}; !reflect.DeepEqual(got, want) {
			t.Fatalf("Read(%d) = %v, want %v", limit, got, want)
		}
	}
}

func TestRead_RingWrapsRepeatedly(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "wrap.log")
	var b strings.Builder
	for i := 1; i <= 23; i++ {
		fmt.Fprintf(&b, "Line %d\n", i)
	}
	if err := os.WriteFile(logPath, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := Read(logPath, 4, nil)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	want := []string{"Line 20", "Line 21", "Line 22", "Line 23"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Read() = %v, want %v", got, want)
	}
}
