package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tacogips/scmver/internal/app"
	"github.com/tacogips/scmver/internal/config"
	"github.com/tacogips/scmver/internal/debug"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
	globalConfig  string
)

// cfg is the configuration loaded before any command runs.
var cfg = config.DefaultConfig()

// Root command flags
var (
	rootOutput    outputFlags
	rootReference string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scmver [SCMDIR [REFERENCE]]",
	Short: "Determine a project version from git, bzr or hg",
	Long: `scmver determines the release version of a project.

A stored reference file is preferred when it can be read. Otherwise the
git, bzr or hg working tree above SCMDIR (default: current directory) is
queried for the latest v-prefixed tag, the distance to it, the current
revision and local modifications.

The version is printed as
  v<tag>[-<dist>-<g|b|h><hex revision>][-dirty]

Examples:
  scmver
  scmver --format dotted
  scmver --format m4 . .version
  scmver --template '{{.Tag}}{{if .Dirty}}+dirty{{end}}'`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Set debug mode
		debug.SetDebug(globalDebug || debug.IsEnabled())
		debug.SetNoColor(globalNoColor)
		return loadConfig()
	},
	RunE: runRoot,
}

// exitError carries a process exit status without an error message.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command line and returns the process exit status.
func run(args []string) int {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	printError(err)
	return 1
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	rootCmd.PersistentFlags().StringVarP(&globalConfig, FlagConfig, "c", "", DescConfig)

	// Flags for the root command
	rootOutput.register(rootCmd.Flags())
	rootCmd.Flags().StringVarP(&rootReference, FlagReference, "r", "", DescReference)

	// Add subcommands
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads the explicit --config file, or the nearest one above
// the current directory, and validates it.
func loadConfig() error {
	loader := config.NewLoader()
	path := globalConfig
	if path == "" {
		found, err := config.Find(".")
		if err != nil {
			return err
		}
		path = found
	}

	loaded := config.DefaultConfig()
	if path != "" {
		var err error
		if loaded, err = loader.Load(path); err != nil {
			return err
		}
	}
	if err := loader.Validate(loaded); err != nil {
		return err
	}
	cfg = loaded
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	out := cfg.Output
	rootOutput.apply(cmd.Flags(), &out)

	opts := app.ResolveOptions{
		LiveOptions: app.LiveOptions{Commands: cfg.Commands},
		Reference:   cfg.Reference,
	}
	if len(args) > 0 {
		opts.Start = args[0]
	}
	if len(args) > 1 {
		opts.Reference = args[1]
	}
	if cmd.Flags().Changed(FlagReference) {
		opts.Reference = rootReference
	}

	res, err := app.Resolve(cmd.Context(), opts)
	if err != nil {
		return err
	}
	debug.DebugValue("from reference", res.FromReference)
	return renderRecord(cmd.OutOrStdout(), res.Record, out)
}

// printError prints an error message to stderr
func printError(err error) {
	var appErr *app.AppError
	if errors.As(err, &appErr) {
		printErrorMsg(fmt.Sprintf("%s: %v", appErr.Type, err))
		return
	}
	printErrorMsg(err.Error())
}
