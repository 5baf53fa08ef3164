package logtail

import (
	"bufio"
	"fmt"
	"os"
)

const maxLineBytes = 1024 * 1024

// Read returns the last maxLines lines of the file at path for which keep
// reports true, in file order. A nil keep retains every line and a maxLines
// of zero or less retains every kept line.
func Read(path string, maxLines int, keep func(string) bool) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			if line := scanner.Text(); keep == nil || keep(line) {
				lines = append(lines, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	// The ring grows with the matches so a huge maxLines costs nothing up front.
	var ring []string
	idx := 0
	for scanner.Scan() {
		line := scanner.Text()
		if keep != nil && !keep(line) {
			continue
		}
		if len(ring) < maxLines {
			ring = append(ring, line)
			continue
		}
		ring[idx] = line
		idx = (idx + 1) % maxLines
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, len(ring))
	for i := range ring {
		lines[i] = ring[(idx+i)%len(ring)]
	}
	return lines, nil
}
