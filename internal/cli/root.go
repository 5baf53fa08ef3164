package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/five82/logsift/internal/app"
)

var version = "dev"

func SetVersion(v string) {
	version = v
}

// configuredDir is the --analyze-all value used when no directory is given.
const configuredDir = "@log_dir"

var (
	configPath string
	prefsPath  string
	errorCodes string
	summaryDir string
	logLevel   string
	logFormat  string
	logFile    string

	logPath    string
	count      int
	autoExit   bool
	analyzeAll string
)

var rootCmd = &cobra.Command{
	Use:   "logsift [log]",
	Short: "Pull error lines out of logs and decode their error codes",
	Long: `logsift scans a log file for error lines, keeps the most recent ones and
decodes the first hex error code on each line using an error code table
(error_codes.txt beside the executable by default) with the operating
system's message facility as a fallback.

Each scan prints a summary and saves it as <log>_summary_<timestamp>.txt in
the summary directory. Without --log or --analyze-all an interactive menu
is shown.`,
	Example: `  logsift --log C:\Windows\Logs\CBS\CBS.log --count 50 --auto-exit
  logsift -a /var/log/myapp
  logsift decode 0x80070005`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := commonOptions(cmd)
		opts.LogPath = logPath
		opts.MaxLines = count
		opts.AutoExit = autoExit
		opts.Stdin = cmd.InOrStdin()

		if cmd.Flags().Changed("analyze-all") {
			opts.AnalyzeAll = true
			if analyzeAll != configuredDir {
				opts.AnalyzeDir = analyzeAll
			}
		}
		// A bare argument is the batch directory with -a, the log otherwise.
		if len(args) == 1 {
			if opts.AnalyzeAll {
				opts.AnalyzeDir = args[0]
			} else if opts.LogPath == "" {
				opts.LogPath = args[0]
			}
		}
		return app.Run(cmd.Context(), opts)
	},
}

// commonOptions collects the persistent flags shared by every command.
func commonOptions(cmd *cobra.Command) app.Options {
	return app.Options{
		ConfigPath: configPath,
		PrefsPath:  prefsPath,
		ErrorCodes: errorCodes,
		SummaryDir: summaryDir,
		LogLevel:   logLevel,
		LogFormat:  logFormat,
		LogFile:    logFile,
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
	}
}

func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx, which is cancelled on
// interrupt by the caller.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default ~/.config/logsift/config.toml)")
	pf.StringVar(&prefsPath, "prefs", "", "preferences file (default ~/.config/logsift/prefs.toml)")
	pf.StringVar(&errorCodes, "error-codes", "", "error code table (default error_codes.txt beside the executable)")
	pf.StringVar(&summaryDir, "summary-dir", "", "directory for summary files")
	pf.StringVar(&logLevel, "log-level", "", "diagnostic log level: debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", "", "diagnostic log format: text or json (default text)")
	pf.StringVar(&logFile, "log-file", "", "write diagnostics to this file")

	f := rootCmd.Flags()
	f.StringVarP(&logPath, "log", "l", "", "scan this log file (or the newest log in this directory) and exit")
	f.IntVarP(&count, "count", "n", 0, "number of error lines to keep (default from config, 100; negative keeps all)")
	f.BoolVar(&autoExit, "auto-exit", false, "exit without waiting for Enter")
	f.StringVarP(&analyzeAll, "analyze-all", "a", "", "analyze every log in a directory (default log_dir)")
	f.Lookup("analyze-all").NoOptDefVal = configuredDir

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(decodeCmd)
}
