package errcode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// ErrResourceMissing reports that the error-code table file does not exist.
// It is never fatal: the resolver falls back to system messages only.
var ErrResourceMissing = errors.New("error code table not found")

// Table maps canonical codes ("0x" followed by eight uppercase hex digits)
// to descriptions.
type Table map[string]string

var entryPattern = regexp.MustCompile(`^\s*([0-9A-Fa-f]{8})\s+(.+)$`)

// Parse reads table entries of the form "<8 hex digits><whitespace><text>".
// Lines of any other shape are skipped. When a code appears more than once
// the last entry wins.
func Parse(r io.Reader) (Table, error) {
	table := make(Table)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		m := entryPattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		desc := strings.TrimSpace(m[2])
		if desc == "" {
			continue
		}
		table["0x"+strings.ToUpper(m[1])] = desc
	}
	if err := scanner.Err(); err != nil {
		return table, fmt.Errorf("read error codes: %w", err)
	}
	return table, nil
}

// LoadTable parses the table file at path. A missing file yields an empty
// table and an error wrapping ErrResourceMissing.
func LoadTable(path string) (Table, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Table{}, fmt.Errorf("%w: %s", ErrResourceMissing, path)
		}
		return Table{}, fmt.Errorf("open error codes: %w", err)
	}
	defer file.Close()
	return Parse(file)
}
