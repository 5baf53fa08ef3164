// Package summary persists scan results as plain text files.
//
// # File Naming
//
// A summary for a log at <dir>/<base>.<ext> is written to the summary
// directory as:
//
//	<base>_summary_<yyyyMMdd_HHmmss>.txt
//
// The timestamp comes from Writer.Now, which tests replace with a fixed
// clock. Two logs with the same base name scanned in the same second (for
// example setup.log and setup.txt in one batch) would collide, so Writer
// never replaces an existing file. It inserts "_2", "_3", ... before the
// extension until the name is free and returns the path actually written.
//
// # Content
//
//   - Write: scan.Summary.String() plus a trailing newline
//   - WriteNoErrors: "No errors found in <path>", used when the caller opts
//     into markers for clean logs
//   - WriteFile: arbitrary content, used by the batch runner for its report
//     and YAML index
//
// Errors are prefixed with "summary:" and wrap the underlying os error.
package summary
