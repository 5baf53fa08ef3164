// Package batch analyses every log in a directory.
//
// Files matching the pattern are scanned one at a time, in name order, with
// a shared scan.Scanner. Each file with error lines gets its own summary
// file. A file that cannot be read is recorded as unreadable and the run
// moves on to the next one.
//
// Error codes are deduplicated across the run: each distinct code (compared
// case-insensitively) is listed once, in first-seen order, with its decoded
// message, total occurrences and the files it appeared in. The run writes
// two artifacts into the summary directory:
//
//	batch_<yyyyMMdd_HHmmss>.txt   human-readable report
//	batch_<yyyyMMdd_HHmmss>.yaml  machine-readable index
//
// Every run carries a random run ID that is attached to its log records.
package batch
