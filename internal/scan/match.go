package scan

import (
	"regexp"
	"strings"
)

var (
	errorPattern = regexp.MustCompile(`(?i)error|fail`)
	codePattern  = regexp.MustCompile(`0x[0-9A-Fa-f]{6,8}`)
)

// MatchesError reports whether line mentions "error" or "fail" in any case.
// Lines containing the literal ".fail" are excluded so that file names such
// as "setup.fail" do not count.
func MatchesError(line string) bool {
	if strings.Contains(line, ".fail") {
		return false
	}
	return errorPattern.MatchString(line)
}

// FirstHexCode returns the first 0x-prefixed run of six to eight hex digits
// in line.
func FirstHexCode(line string) (string, bool) {
	code := codePattern.FindString(line)
	return code, code != ""
}
