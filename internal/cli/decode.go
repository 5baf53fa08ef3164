package cli

import (
	"github.com/spf13/cobra"

	"github.com/five82/logsift/internal/app"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <code>...",
	Short: "Decode hex error codes without scanning a log",
	Long: `Decode looks each code up in the error code table, then in the
operating system's message facility, and prints one line per code:

  <code>  [<source>] <text>

where source is table, system or none.`,
	Example: "  logsift decode 0x80070005 0x800F081F",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := commonOptions(cmd)
		opts.Codes = args
		return app.Run(cmd.Context(), opts)
	},
}
