// Package app is the composition root for logsift.
//
// Setup loads the TOML config and preferences, reads the error-code table
// and wires the scanner, summary writer and batch runner. Run then picks a
// mode from Options:
//
//   - scan: one log (or the newest log in a directory) is scanned, the
//     summary is printed and persisted, and the console waits for Enter
//     unless AutoExit is set
//   - batch: every log matching log_pattern in a directory is scanned in
//     sequence and a batch report plus YAML index are written
//   - menu: the Bubble Tea interface from package ui
//
// A missing error-code table is not fatal. It is logged at warn level and
// decoding falls back to system messages and the "Could not decode" text.
//
// Configuration failures wrap ErrConfig so the CLI can map them to a
// dedicated exit code. Unreadable logs surface scan.ErrSourceUnreadable.
package app
