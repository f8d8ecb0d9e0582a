package cmd

import (
	logger "github.com/PolarWolf314/envdiff/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger
)

// NewRootCmd builds the envdiff command tree. Each call returns fresh
// commands and flag sets.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "envdiff",
		Short: "Compare encrypted .env files and report which keys changed",
		Long: `envdiff decrypts two encrypted .env files and reports which keys were
added, removed or modified, without ever printing their values.

It is designed to run as a GitHub Action step: results are published as the
"diffs" and "message" step outputs, and can also be added to the job summary
or posted as a pull request comment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newEncryptCmd())
	rootCmd.AddCommand(newDecryptCmd())

	return rootCmd
}

// Execute runs the command tree with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
