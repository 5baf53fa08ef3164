// Package cli defines logsift's command surface with cobra.
//
// # Commands
//
//   - logsift [log]: scan one log (--log or a positional path), analyze a
//     directory (--analyze-all), or open the interactive menu when neither
//     is given
//   - logsift decode <code>...: decode codes without scanning a log
//   - logsift version: print the build version set with SetVersion
//
// # Flags
//
// Root-only flags select the run:
//
//   - --log, -l: log file, or a directory whose newest log is scanned
//   - --count, -n: error lines to keep (0 uses the config, negative keeps all)
//   - --auto-exit: do not wait for Enter after a non-interactive run
//   - --analyze-all, -a [dir]: batch mode; without a value the configured
//     log_dir is used, and a positional argument is taken as the directory
//
// Persistent flags apply to every command: --config, --prefs,
// --error-codes, --summary-dir, --log-level, --log-format, --log-file.
//
// # Exit Codes
//
// Execute returns the error from the command. ExitCode maps it to a process
// exit code:
//
//   - ExitOK (0): success, whether or not errors were found in the log
//   - ExitError (1): invalid arguments or any other failure
//   - ExitConfig (2): the config file or a path setting is unusable
//   - ExitUnreadable (3): the log could not be read, or no logs matched
//
// All work is delegated to package app; this package only parses flags.
package cli
