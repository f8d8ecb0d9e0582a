package cmd

import (
	"errors"

	"github.com/PolarWolf314/envdiff/internal/configs"
	derrors "github.com/PolarWolf314/envdiff/internal/errors"
	"github.com/PolarWolf314/envdiff/internal/ui"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var (
		path       string
		force      bool
		fileConfig configs.FileConfig
	)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Writes a .envdiff.toml config file",
		Long: `Writes a configuration file so envdiff diff can run without flags.

The passphrase is never stored in the file; provide it through DOTENVENC_PASS.`,
		Example: `  envdiff init --base .env.main.enc --current .env.enc --sensitive-keys API_KEY,*_PASSWORD`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Writing configuration to %s", path)

			if err := configs.WriteFileConfig(path, fileConfig, force); err != nil {
				msg := failure("Failed to write " + ui.Path.Sprint(path))
				if errors.Is(err, derrors.ErrFileExists) {
					msg += hint("Use " + ui.Flag.Sprint("--force") + " to overwrite it")
				}
				cmd.Print(ui.EnsureNewline(msg))
				return Logger.ErrorfAndReturn("%w", err)
			}

			cmd.Print(ui.EnsureNewline(ui.Success.Sprint("✓") + " Created " + ui.Path.Sprint(path) +
				hint("Run "+ui.Code.Sprint("envdiff diff")+" to compare the configured files")))
			return nil
		},
	}

	flags := initCmd.Flags()
	flags.StringVar(&path, "path", configs.DefaultConfigFile, "where to write the config file")
	flags.BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	flags.StringVar(&fileConfig.BaseFile, "base", "", "path to the encrypted base .env file")
	flags.StringVar(&fileConfig.CurrentFile, "current", "", "path to the encrypted current .env file")
	flags.StringSliceVar(&fileConfig.SensitiveKeys, "sensitive-keys", nil, "keys (or glob patterns) to hide")
	flags.BoolVar(&fileConfig.Comment, "comment", false, "post reports as pull request comments")
	flags.BoolVar(&fileConfig.StepSummary, "step-summary", false, "append reports to the job summary")

	return initCmd
}
