// Package ui provides the interactive terminal interface for logsift.
//
// The UI is a Bubble Tea program with four views:
//
//   - Menu: scan the newest log in the configured directory, scan a custom
//     path, analyze every log in a directory, or quit
//   - Input: a path prompt backed by a bubbles textinput
//   - Running: shown while a scan or batch command executes off the UI loop
//   - Result: a scrollable viewport over the summary or batch report
//
// Scans and batch runs are issued as tea.Cmd values so the event loop never
// blocks on file I/O. Results come back as scanDoneMsg and batchDoneMsg.
//
// Decoded messages are coloured by where they came from (code table, system
// message facility, or undecoded sentinel) using the active theme. The theme
// and the last scanned path persist through the prefs package.
//
// # Key Bindings
//
//   - j/k or arrows: move in the menu, scroll in results
//   - 1-4: run a menu entry directly
//   - enter: select
//   - s: save the shown summary to the summary directory
//   - g/G: jump to top/bottom of results
//   - T: cycle theme
//   - ?: toggle help
//   - esc: back to the menu
//   - q or ctrl+c: quit
package ui
