package cli

import (
	"github.com/spf13/cobra"

	"github.com/tacogips/scmver/internal/app"
)

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe [PATH]",
	Short: "Print the version of the working tree above PATH",
	Long: `Query the git, bzr or hg working tree that contains PATH (default: the
current directory) and print its version. Stored reference files are ignored.

Examples:
  scmver describe
  scmver describe src/lib --format dotted
  scmver describe --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDescribe,
}

// Describe command flags
var describeOutput outputFlags

func init() {
	describeOutput.register(describeCmd.Flags())
}

func runDescribe(cmd *cobra.Command, args []string) error {
	out := cfg.Output
	describeOutput.apply(cmd.Flags(), &out)

	opts := app.LiveOptions{Commands: cfg.Commands}
	if len(args) > 0 {
		opts.Start = args[0]
	}

	rec, err := app.ResolveLive(cmd.Context(), opts)
	if err != nil {
		return err
	}
	return renderRecord(cmd.OutOrStdout(), rec, out)
}
