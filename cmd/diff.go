package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/PolarWolf314/envdiff/internal/actions"
	"github.com/PolarWolf314/envdiff/internal/configs"
	derrors "github.com/PolarWolf314/envdiff/internal/errors"
	"github.com/PolarWolf314/envdiff/internal/github"
	"github.com/PolarWolf314/envdiff/internal/secrets"
	"github.com/PolarWolf314/envdiff/internal/ui"
	"github.com/PolarWolf314/envdiff/internal/utils"
	"github.com/PolarWolf314/envdiff/internal/workflows"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type diffOptions struct {
	base          string
	current       string
	sensitiveKeys string
	configPath    string
	comment       bool
	stepSummary   bool
}

func newDiffCmd() *cobra.Command {
	opts := &diffOptions{}

	diffCmd := &cobra.Command{
		Use:   "diff",
		Short: "Reports which keys differ between two encrypted .env files",
		Long: `Decrypts the base and current .env files and reports which keys were added,
removed or modified. Values are never printed.

The passphrase is read from DOTENVENC_PASS (or INPUT_PASSPHRASE inside a
GitHub Action). Keys named in --sensitive-keys are hidden and only counted.

Results are written to GITHUB_OUTPUT as the "diffs" and "message" outputs, or
to stdout when GITHUB_OUTPUT is not set.`,
		Example: `  envdiff diff --base .env.main.enc --current .env.enc
  envdiff diff --sensitive-keys "API_KEY,*_PASSWORD" --step-summary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, opts)
		},
	}

	flags := diffCmd.Flags()
	flags.StringVar(&opts.base, "base", "", "path to the encrypted base .env file")
	flags.StringVar(&opts.current, "current", "", "path to the encrypted current .env file")
	flags.StringVar(&opts.sensitiveKeys, "sensitive-keys", "", "comma-separated keys (or glob patterns) to hide")
	flags.StringVar(&opts.configPath, "config", "", "path to a TOML config file (default .envdiff.toml)")
	flags.BoolVar(&opts.comment, "comment", false, "post the report as a pull request comment")
	flags.BoolVar(&opts.stepSummary, "step-summary", false, "append the report to the job summary")

	return diffCmd
}

func runDiff(cmd *cobra.Command, opts *diffOptions) error {
	Logger.Infof("Starting diff command")
	ctx := cmd.Context()

	cfg, err := configs.Load(os.LookupEnv, opts.configPath)
	if err != nil {
		return Logger.ErrorfAndReturn("failed to load configuration: %w", err)
	}
	if cfg.Source != "" {
		Logger.Infof("Loaded configuration from %s", cfg.Source)
	}
	applyDiffFlags(cmd.Flags(), opts, cfg)

	if err := cfg.Validate(); err != nil {
		return Logger.ErrorfAndReturn("%w", err)
	}
	if err := cfg.ResolvePaths(); err != nil {
		return Logger.ErrorfAndReturn("%w", err)
	}
	Logger.Debugf("Base file: %s, current file: %s", cfg.BaseFile, cfg.CurrentFile)

	gh := actions.ContextFromEnv(os.LookupEnv)
	Logger.Debugf("Running in GitHub Actions: %t", gh.InActions)

	spinner, cleanup := startSpinner("Comparing environment files...", cmd.ErrOrStderr())
	defer cleanup()

	result, err := workflows.Diff(ctx, cfg, secrets.FileDecrypter{Passphrase: cfg.Passphrase})
	if err != nil {
		spinner.FinalMSG = failure("Failed to compare "+ui.Path.Sprint(cfg.BaseFile)+" and "+ui.Path.Sprint(cfg.CurrentFile)) +
			diffHint(err)
		return Logger.ErrorfAndReturn("%w", err)
	}
	Logger.Infof("Base has %d keys, current has %d keys", result.BaseKeys, result.CurrentKeys)

	publishOpts := workflows.PublishOptions{
		Outputs: actions.NewOutputs(gh.OutputPath, cmd.OutOrStdout()),
	}

	if cfg.StepSummary {
		if gh.SummaryPath == "" {
			Logger.WarnfAlways("%s is not set, skipping job summary", actions.EnvStepSummary)
		} else {
			publishOpts.SummaryPath = gh.SummaryPath
		}
	}

	if cfg.Comment {
		if err := configureComment(cmd, gh, &publishOpts); err != nil {
			spinner.FinalMSG = failure("Failed to set up the pull request comment")
			return Logger.ErrorfAndReturn("%w", err)
		}
	}

	published, err := workflows.Publish(ctx, result, publishOpts)
	if err != nil {
		spinner.FinalMSG = failure("Failed to publish the report")
		return Logger.ErrorfAndReturn("%w", err)
	}

	spinner.FinalMSG = diffSummary(result, published)
	return nil
}

// applyDiffFlags overrides cfg with the flags set on the command line.
func applyDiffFlags(flags *pflag.FlagSet, opts *diffOptions, cfg *configs.Config) {
	if flags.Changed("base") {
		cfg.BaseFile = opts.base
	}
	if flags.Changed("current") {
		cfg.CurrentFile = opts.current
	}
	if flags.Changed("sensitive-keys") {
		cfg.SensitiveKeys = opts.sensitiveKeys
	}
	if flags.Changed("comment") {
		cfg.Comment = opts.comment
	}
	if flags.Changed("step-summary") {
		cfg.StepSummary = opts.stepSummary
	}
}

// configureComment resolves the pull request and GitHub client. Events
// without a pull request skip commenting with a warning.
func configureComment(cmd *cobra.Command, gh actions.Context, opts *workflows.PublishOptions) error {
	number, err := github.PullRequestNumber(gh.EventPath)
	if errors.Is(err, derrors.ErrNoPullRequest) {
		Logger.WarnfAlways("No pull request in the %q event, skipping comment", gh.EventName)
		return nil
	}
	if err != nil {
		return err
	}

	client, err := github.NewClient(cmd.Context(), gh.Token, gh.APIURL)
	if err != nil {
		return err
	}

	Logger.Debugf("Commenting on %s#%d", gh.Repository, number)
	opts.Commenter = client
	opts.Repository = gh.Repository
	opts.PullRequest = number
	return nil
}

func diffHint(err error) string {
	switch {
	case errors.Is(err, derrors.ErrDecryptFailed):
		return hint("Check that " + ui.Code.Sprint(configs.EnvPassphrase) + " matches the passphrase used to encrypt the files")
	case errors.Is(err, derrors.ErrFileNotFound):
		return hint("Check the " + ui.Code.Sprint("--base") + " and " + ui.Code.Sprint("--current") + " paths")
	case errors.Is(err, derrors.ErrInvalidCiphertext):
		return hint("Encrypt the file with " + ui.Code.Sprint("envdiff encrypt"))
	}
	return ""
}

func diffSummary(result *workflows.DiffResult, published *workflows.PublishResult) string {
	var msg string
	if result.HasChanges {
		msg = ui.Warning.Sprint("⚠") + " Environment files differ"
	} else {
		msg = ui.Success.Sprint("✓") + " " + result.Message
	}
	msg += " " + ui.Muted.Sprintf("%s in base, %s in current",
		utils.Pluralize(result.BaseKeys, "key"), utils.Pluralize(result.CurrentKeys, "key"))

	if published.WroteSummary {
		msg += "\n" + ui.Success.Sprint("✓") + " Added the report to the job summary"
	}
	if published.CommentURL != "" {
		msg += fmt.Sprintf("\n%s Commented on the pull request: %s", ui.Success.Sprint("✓"), published.CommentURL)
	}
	return msg
}
