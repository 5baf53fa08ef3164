// Package logtail reads the tail of the lines in a log file that satisfy a
// predicate.
//
// # Overview
//
// Read makes one sequential pass over the file with a bufio.Scanner and keeps
// the last N lines accepted by a filter in a ring buffer, so memory stays
// O(N) no matter how large the log is. Lines are returned in file order.
//
//	lines, err := logtail.Read(`C:\Windows\Logs\CBS\CBS.log`, 100, scan.MatchesError)
//
// # Ring Buffer Algorithm
//
//  1. Allocate a ring buffer of size maxLines
//  2. For each line in the file accepted by the filter:
//     - Store it at the current index
//     - Advance the index modulo maxLines
//  3. Unroll the ring starting at the oldest entry
//
// A maxLines of zero or less disables the ring and returns every accepted
// line.
//
// # Error Handling
//
// Unlike a display tail, a missing file is an error here: callers need to
// tell "could not read" apart from "nothing matched". Open failures are
// wrapped as "open log: ..." and scanner failures (including lines longer
// than 1 MiB) as "read log: ...". The underlying error stays reachable with
// errors.Is.
package logtail
