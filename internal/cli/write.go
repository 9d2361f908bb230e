package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tacogips/scmver/internal/app"
	"github.com/tacogips/scmver/internal/record"
)

// writeCmd represents the write command
var writeCmd = &cobra.Command{
	Use:   "write [DEST]",
	Short: "Store the current version in a file",
	Long: `Resolve the version of the working tree and write it to DEST, or to the
configured reference file. A DEST of "-" writes standard output.

An existing DEST holding a different version is only replaced after
confirmation when running on a terminal, unless --yes is given.

Examples:
  scmver write .version
  scmver write .version --yes
  scmver write - --from dist/VERSION`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWrite,
}

// Write command flags
var (
	writeFrom  string
	writeYes   bool
	writeStart string
)

func init() {
	writeCmd.Flags().StringVar(&writeFrom, FlagFrom, "", DescFrom)
	writeCmd.Flags().BoolVarP(&writeYes, FlagYes, "y", false, DescYes)
	writeCmd.Flags().StringVarP(&writeStart, FlagDir, "C", "", DescDir)
}

func runWrite(cmd *cobra.Command, args []string) error {
	dest := cfg.Reference
	if len(args) > 0 {
		dest = args[0]
	}
	if dest == "" {
		return app.NewIOError("no destination given and no reference configured", nil)
	}

	var rec record.Record
	var err error
	if writeFrom != "" {
		rec, err = app.ResolveFromRecord(writeFrom)
	} else {
		rec, err = app.ResolveLive(cmd.Context(), app.LiveOptions{Start: writeStart, Commands: cfg.Commands})
	}
	if err != nil {
		return err
	}

	if dest != app.Stdio && !writeYes {
		if info, statErr := os.Stat(dest); statErr == nil && info.Mode().IsRegular() {
			current, readErr := app.ResolveFromRecord(dest)
			if readErr == nil && current.String() == rec.String() {
				printSuccess(fmt.Sprintf("%s is up to date (%s)", dest, rec))
				return nil
			}
			shown := "an unreadable version"
			if readErr == nil {
				shown = current.String()
			}
			if err := confirmOverwrite(dest, shown, rec.String()); err != nil {
				if errors.Is(err, errOverwriteDeclined) {
					printWarning(fmt.Sprintf("kept %s", dest))
					return nil
				}
				return err
			}
		}
	}

	if err := app.Persist(rec, dest); err != nil {
		return err
	}
	if dest != app.Stdio {
		printSuccess(fmt.Sprintf("wrote %s to %s", rec, dest))
	}
	return nil
}
