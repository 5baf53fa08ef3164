// Package logging builds the slog loggers used for logsift's diagnostics.
//
// Diagnostics are separate from scan output. Summaries and batch reports go
// to stdout and to the summary directory. The logger records what happened
// along the way: a missing error code table, unreadable files skipped in a
// batch, scan and batch completion.
//
// # Handlers
//
//   - text (default): slog.TextHandler, key=value pairs
//   - json: slog.JSONHandler, one object per line for log shippers
//
// The format comes from log_format in the config file or --log-format on the
// command line; ParseFormat rejects anything other than text or json.
// ParseLevel maps debug, info, warn and error to slog levels and falls back
// to info for unknown strings.
//
// # Destinations
//
// The caller picks the writer. Non-interactive runs log to stderr. The
// interactive menu runs on the alternate screen, so it logs only when
// --log-file is given and discards diagnostics otherwise.
//
// # Usage Example
//
//	asJSON, err := logging.ParseFormat(cfg.LogFormat)
//	if err != nil {
//		return err
//	}
//	logger := logging.Init(os.Stderr, logging.ParseLevel(cfg.LogLevel), asJSON)
//	logger.Warn("error code table missing", "path", cfg.ErrorCodes)
package logging
