package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/PolarWolf314/envdiff/internal/ui"
	"github.com/PolarWolf314/envdiff/internal/utils"
	"github.com/PolarWolf314/envdiff/internal/workflows"

	"github.com/spf13/cobra"
)

func newDecryptCmd() *cobra.Command {
	var (
		output   string
		force    bool
		keysOnly bool
	)

	decryptCmd := &cobra.Command{
		Use:   "decrypt <file>",
		Short: "Decrypts an encrypted .env file",
		Long: `Decrypts a file created by envdiff encrypt and prints the plaintext, or
writes it to --output. Use - to read the encrypted file from stdin.

With --keys-only, only the key names are printed, in file order.`,
		Example: `  envdiff decrypt .env.enc
  envdiff decrypt .env.enc --keys-only
  cat .env.enc | envdiff decrypt - --output .env`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting decrypt command")
			opts := workflows.DecryptOptions{
				InputPath:  args[0],
				OutputPath: output,
				Force:      force,
			}

			if args[0] == "-" {
				data, err := readInput(cmd)
				if err != nil {
					return Logger.ErrorfAndReturn("%w", err)
				}
				opts.Ciphertext = data
				opts.InputPath = "stdin"
			}

			pass, err := passphrase(false)
			if err != nil {
				return Logger.ErrorfAndReturn("%w", err)
			}
			opts.Passphrase = pass

			result, err := workflows.Decrypt(cmd.Context(), opts)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to decrypt %s: %w", opts.InputPath, err)
			}
			Logger.Infof("Decrypted %d keys from %s", len(result.Keys), opts.InputPath)

			out := cmd.OutOrStdout()
			switch {
			case keysOnly:
				if len(result.Keys) > 0 {
					fmt.Fprintln(out, strings.Join(result.Keys, "\n"))
				}
			case result.OutputPath != "":
				fmt.Fprint(out, ui.EnsureNewline(ui.Success.Sprint("✓")+" Decrypted "+ui.Path.Sprint(opts.InputPath)+
					" into "+ui.Path.Sprint(result.OutputPath)+" "+ui.Muted.Sprint(utils.Pluralize(len(result.Keys), "key"))))
			default:
				if _, err := out.Write(result.Plaintext); err != nil {
					return Logger.ErrorfAndReturn("failed to write plaintext: %w", err)
				}
			}
			return nil
		},
	}

	decryptCmd.Flags().StringVarP(&output, "output", "o", "", "write the plaintext to this file instead of stdout")
	decryptCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite the output file if it exists")
	decryptCmd.Flags().BoolVar(&keysOnly, "keys-only", false, "print only the key names")

	return decryptCmd
}

// readInput reads the encrypted file from the command's input. os.Stdin must
// be piped rather than a terminal.
func readInput(cmd *cobra.Command) ([]byte, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && f == os.Stdin {
		return utils.ReadStdin()
	}
	return utils.ReadAll(in)
}
