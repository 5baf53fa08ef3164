package batch

import (
	"strings"

	"github.com/five82/logsift/internal/scan"
)

// CodeTally is one distinct error code seen across a batch.
type CodeTally struct {
	Code        string   `yaml:"code"`
	Source      string   `yaml:"source"`
	Message     string   `yaml:"message"`
	Occurrences int      `yaml:"occurrences"`
	Files       []string `yaml:"files"`
}

// tallier collapses repeated codes across files, keeping first-occurrence
// order. Codes are keyed case-insensitively.
type tallier struct {
	order []*CodeTally
	byKey map[string]*CodeTally
	seen  map[string]map[string]bool
}

func newTallier() *tallier {
	return &tallier{
		byKey: make(map[string]*CodeTally),
		seen:  make(map[string]map[string]bool),
	}
}

func (t *tallier) add(res scan.Result) {
	for _, b := range res.Summary.Blocks {
		if !b.HasCode() {
			continue
		}
		key := strings.ToUpper(b.Code)
		tally, ok := t.byKey[key]
		if !ok {
			tally = &CodeTally{
				Code:    b.Code,
				Source:  string(b.Description.Source),
				Message: b.Description.Text,
			}
			t.byKey[key] = tally
			t.order = append(t.order, tally)
			t.seen[key] = make(map[string]bool)
		}
		tally.Occurrences++
		if !t.seen[key][res.Path] {
			t.seen[key][res.Path] = true
			tally.Files = append(tally.Files, res.Path)
		}
	}
}

func (t *tallier) tallies() []CodeTally {
	out := make([]CodeTally, 0, len(t.order))
	for _, tally := range t.order {
		out = append(out, *tally)
	}
	return out
}
