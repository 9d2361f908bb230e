package cli

import (
	"github.com/spf13/cobra"

	"github.com/tacogips/scmver/internal/app"
)

// readCmd represents the read command
var readCmd = &cobra.Command{
	Use:   "read [FILE]",
	Short: "Decode a stored version file",
	Long: `Read the first line of FILE, or of the configured reference file, and
print the version it holds. A FILE of "-" reads standard input.

Both the normal form and the dotted form with an embedded SCM name are
accepted:
  v1.2.3-4-gabc1234-dirty
  v1.2.3.git4.abc1234.dirty

Examples:
  scmver read .version
  echo v1.0-3-g1a2b3c4 | scmver read - --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRead,
}

// Read command flags
var readOutput outputFlags

func init() {
	readOutput.register(readCmd.Flags())
}

func runRead(cmd *cobra.Command, args []string) error {
	out := cfg.Output
	readOutput.apply(cmd.Flags(), &out)

	source := cfg.Reference
	if len(args) > 0 {
		source = args[0]
	}
	if source == "" {
		return app.NewIOError("no version file given and no reference configured", nil)
	}

	rec, err := app.ResolveFromRecord(source)
	if err != nil {
		return err
	}
	return renderRecord(cmd.OutOrStdout(), rec, out)
}
