package cmd

import (
	"errors"

	derrors "github.com/PolarWolf314/envdiff/internal/errors"
	"github.com/PolarWolf314/envdiff/internal/ui"
	"github.com/PolarWolf314/envdiff/internal/utils"
	"github.com/PolarWolf314/envdiff/internal/workflows"

	"github.com/spf13/cobra"
)

func newEncryptCmd() *cobra.Command {
	var (
		output string
		force  bool
	)

	encryptCmd := &cobra.Command{
		Use:   "encrypt <file>",
		Short: "Encrypts a .env file into <file>.enc",
		Long: `Encrypts a plaintext .env file with a passphrase so it can be committed and
compared with envdiff diff.

The passphrase is read from DOTENVENC_PASS, or prompted for twice when running
in a terminal. The file must parse as a dotenv file.`,
		Example: `  envdiff encrypt .env
  envdiff encrypt .env --output config/.env.production.enc --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting encrypt command")

			pass, err := passphrase(true)
			if err != nil {
				return Logger.ErrorfAndReturn("%w: %w", derrors.ErrMissingInput, err)
			}

			spinner, cleanup := startSpinner("Encrypting environment file...", cmd.OutOrStdout())
			defer cleanup()

			result, err := workflows.Encrypt(cmd.Context(), workflows.EncryptOptions{
				InputPath:  args[0],
				OutputPath: output,
				Passphrase: pass,
				Force:      force,
			})
			if err != nil {
				spinner.FinalMSG = failure("Failed to encrypt "+ui.Path.Sprint(args[0])) + encryptHint(err)
				return Logger.ErrorfAndReturn("%w", err)
			}
			Logger.Infof("Encrypted %d keys into %s", len(result.Keys), result.OutputPath)

			spinner.FinalMSG = ui.Success.Sprint("✓") + " Encrypted " + ui.Path.Sprint(result.InputPath) +
				" " + ui.Muted.Sprint(utils.Pluralize(len(result.Keys), "key")) +
				"\nThe following file was created: " + utils.FormatPaths([]string{result.OutputPath}) +
				ui.Info.Sprint("→") + " You can now safely commit " + ui.Path.Sprint(result.OutputPath) + " to version control"
			return nil
		},
	}

	encryptCmd.Flags().StringVarP(&output, "output", "o", "", "path of the encrypted file (default <file>.enc)")
	encryptCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite the output file if it exists")

	return encryptCmd
}

func encryptHint(err error) string {
	switch {
	case errors.Is(err, derrors.ErrFileExists):
		return hint("Use " + ui.Flag.Sprint("--force") + " to overwrite it")
	case errors.Is(err, derrors.ErrInvalidEnvFile):
		return hint("Fix the syntax error and try again")
	}
	return ""
}
