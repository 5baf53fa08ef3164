package scan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/five82/logsift/internal/errcode"
	"github.com/five82/logsift/internal/logtail"
)

// ErrSourceUnreadable marks a log file that could not be opened or read.
var ErrSourceUnreadable = errors.New("log source unreadable")

// DefaultMaxLines is the error-count limit used when none is configured.
const DefaultMaxLines = 100

// Scanner extracts error lines from logs and decodes their error codes.
type Scanner struct {
	resolver *errcode.Resolver
}

// New returns a Scanner that decodes codes with resolver. A nil resolver
// leaves every code undecoded.
func New(resolver *errcode.Resolver) *Scanner {
	if resolver == nil {
		resolver = errcode.New(nil, nil)
	}
	return &Scanner{resolver: resolver}
}

// Resolver returns the resolver shared by every scan.
func (s *Scanner) Resolver() *errcode.Resolver {
	return s.resolver
}

// Scan keeps the last maxLines error lines of the file at path and
// annotates each with its decoded error code, if any. A maxLines of zero or
// less keeps every match. Read failures wrap ErrSourceUnreadable.
func (s *Scanner) Scan(path string, maxLines int) (Result, error) {
	lines, err := logtail.Read(path, maxLines, MatchesError)
	if err != nil {
		return Result{Path: path}, fmt.Errorf("%w: %s: %w", ErrSourceUnreadable, path, err)
	}

	result := Result{Path: path}
	if len(lines) == 0 {
		return result, nil
	}

	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		b := Block{Line: strings.TrimSpace(line)}
		if code, ok := FirstHexCode(b.Line); ok {
			b.Code = code
			b.Description = s.resolver.Resolve(code)
		}
		blocks = append(blocks, b)
	}
	result.Found = true
	result.Summary = Summary{Blocks: blocks}
	return result, nil
}
