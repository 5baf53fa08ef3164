// Package config loads logsift's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/logsift/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Log directory: %SystemRoot%\Logs\CBS on Windows, /var/log elsewhere
//   - Summary directory: ~/.local/share/logsift/summaries
//   - Error code table: error_codes.txt next to the executable
//   - Batch pattern: *.log
//   - Error-count limit: 100
//   - Log level: info
//   - Log format: text (or json)
//
// # TOML Format
//
//	log_dir = 'C:\Windows\Logs\CBS'
//	summary_dir = "~/logsift"
//	error_codes = "~/tools/error_codes.txt"
//	log_pattern = "*.log"
//	max_lines = 100
//	log_level = "info"
//	log_format = "text"
//
// Every field is optional. Tilde expansion is applied to paths.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors and malformed log_pattern globs
//
// Missing config files are NOT an error.
package config
