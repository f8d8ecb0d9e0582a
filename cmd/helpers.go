package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/PolarWolf314/envdiff/internal/configs"
	"github.com/PolarWolf314/envdiff/internal/ui"
	"github.com/PolarWolf314/envdiff/internal/utils"
	"github.com/briandowns/spinner"
)

// startSpinner starts a spinner on stderr unless running in verbose or debug
// mode. The returned cleanup stops it and prints FinalMSG to out.
//
// FinalMSG values do not need trailing newlines; cleanup adds one.
func startSpinner(message string, out io.Writer) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(os.Stderr))
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stderr)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(out, finalMsg)
		}
	}

	return s, cleanup
}

// passphrase returns the passphrase from the environment, or prompts for it
// on a terminal. confirm asks twice, for encryption.
func passphrase(confirm bool) ([]byte, error) {
	if p := configs.PassphraseFromEnv(os.LookupEnv); len(p) > 0 {
		Logger.Debugf("Using passphrase from %s", configs.EnvPassphrase)
		return p, nil
	}

	if !utils.IsTerminal() {
		return nil, fmt.Errorf("no passphrase: set %s", configs.EnvPassphrase)
	}

	if confirm {
		return utils.ReadNewPassphrase()
	}
	return utils.ReadPassphrase("Enter passphrase: ")
}

// failure formats a failed step. The error itself is printed by main.
func failure(message string) string {
	return ui.Error.Sprint("✗") + " " + message
}

func hint(message string) string {
	return "\n" + ui.Info.Sprint("→") + " " + message
}
