package scan

import (
	"strings"

	"github.com/five82/logsift/internal/errcode"
)

// Block is the summary entry for one matched line.
type Block struct {
	Line        string
	Code        string // empty when the line carries no hex code
	Description errcode.Description
}

// HasCode reports whether the line carried an error code.
func (b Block) HasCode() bool {
	return b.Code != ""
}

// String renders the block as it appears in summary files.
func (b Block) String() string {
	if !b.HasCode() {
		return b.Line
	}
	return b.Line + "\nError Code: " + b.Code + "\nMessage: " + b.Description.Text
}

// Summary is the ordered output of one scan.
type Summary struct {
	Blocks []Block
}

// Empty reports whether the summary holds no blocks.
func (s Summary) Empty() bool {
	return len(s.Blocks) == 0
}

// String joins the rendered blocks with line breaks.
func (s Summary) String() string {
	parts := make([]string, len(s.Blocks))
	for i, b := range s.Blocks {
		parts[i] = b.String()
	}
	return strings.Join(parts, "\n")
}

// Codes returns the error codes in block order, including repeats.
func (s Summary) Codes() []string {
	var codes []string
	for _, b := range s.Blocks {
		if b.HasCode() {
			codes = append(codes, b.Code)
		}
	}
	return codes
}

// Result is the outcome of scanning one file.
type Result struct {
	Path    string
	Found   bool
	Summary Summary
}
