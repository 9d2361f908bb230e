package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/scmver/internal/app"
	"github.com/tacogips/scmver/internal/record"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare A B",
	Short: "Compare two stored versions",
	Long: `Compare the versions stored in files A and B and print "less", "equal"
or "greater". Either file may be "-" for standard input. Use "@" to compare
against the live version of the current working tree.

Versions that both sit exactly on a tag are compared by tag alone.
Otherwise every field takes part and a dirty tree sorts after a clean one.
The comparison detects change; it is not a version precedence.

Examples:
  scmver compare .version @
  scmver compare old.version new.version --exit-code`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

// liveSource names the live working tree in compare arguments.
const liveSource = "@"

// Compare command flags
var compareExitCode bool

func init() {
	compareCmd.Flags().BoolVar(&compareExitCode, FlagExitCode, false, DescExitCode)
}

func runCompare(cmd *cobra.Command, args []string) error {
	if args[0] == app.Stdio && args[1] == app.Stdio {
		return fmt.Errorf("standard input can only be read once")
	}

	a, err := resolveSource(cmd, args[0])
	if err != nil {
		return err
	}
	b, err := resolveSource(cmd, args[1])
	if err != nil {
		return err
	}

	ord := app.Compare(a, b)
	fmt.Fprintln(cmd.OutOrStdout(), ord)
	if compareExitCode && ord != app.Equal {
		return &exitError{code: 1}
	}
	return nil
}

func resolveSource(cmd *cobra.Command, source string) (record.Record, error) {
	if source == liveSource {
		return app.ResolveLive(cmd.Context(), app.LiveOptions{Commands: cfg.Commands})
	}
	return app.ResolveFromRecord(source)
}
