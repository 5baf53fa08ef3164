package errcode

import (
	"strconv"
	"strings"
)

// Source identifies which step of the fallback chain produced a description.
type Source string

const (
	SourceTable  Source = "table"
	SourceSystem Source = "system"
	SourceNone   Source = "none"
)

// Description is the outcome of resolving one error code.
type Description struct {
	Source Source
	Text   string
}

// Decoded reports whether any lookup produced a message.
func (d Description) Decoded() bool {
	return d.Source != SourceNone
}

// SystemMessages maps a numeric OS error code to its platform message.
type SystemMessages interface {
	Message(code int32) (string, bool)
}

// Resolver decodes hex error codes. It is immutable after construction and
// safe to share between scans.
type Resolver struct {
	table Table
	sys   SystemMessages
}

// New builds a resolver over a copy of table. A nil sys disables the system
// fallback.
func New(table Table, sys SystemMessages) *Resolver {
	own := make(Table, len(table))
	for k, v := range table {
		own[k] = v
	}
	return &Resolver{table: own, sys: sys}
}

// Load reads the table at path and pairs it with the platform message
// facility. The returned resolver is always usable; a non-nil error (for
// example one wrapping ErrResourceMissing) only explains why the table is
// empty or partial.
func Load(path string) (*Resolver, error) {
	table, err := LoadTable(path)
	return New(table, System()), err
}

// Len returns the number of table entries.
func (r *Resolver) Len() int {
	return len(r.table)
}

// Lookup consults the table only.
func (r *Resolver) Lookup(code string) (string, bool) {
	digits, ok := hexDigits(code)
	if !ok {
		return "", false
	}
	desc, ok := r.table["0x"+digits]
	return desc, ok
}

// Resolve walks the fallback chain: table, then system message, then the
// "Could not decode" sentinel. It never fails.
func (r *Resolver) Resolve(code string) Description {
	if desc, ok := r.Lookup(code); ok {
		return Description{Source: SourceTable, Text: desc}
	}
	if r.sys != nil {
		if n, ok := parseCode(code); ok {
			if msg, ok := r.sys.Message(n); ok {
				return Description{Source: SourceSystem, Text: msg}
			}
		}
	}
	return Description{Source: SourceNone, Text: "Could not decode error: " + code}
}

// hexDigits strips an optional 0x prefix and upper-cases the remainder.
func hexDigits(code string) (string, bool) {
	s := strings.TrimSpace(code)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if s == "" {
		return "", false
	}
	return strings.ToUpper(s), true
}

// parseCode interprets the hex digits as a 32-bit value reinterpreted as
// signed, the way HRESULTs are usually carried.
func parseCode(code string) (int32, bool) {
	digits, ok := hexDigits(code)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, false
	}
	return int32(uint32(v)), true
}
