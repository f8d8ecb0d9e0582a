package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/envdiff/internal/actions"
	"github.com/PolarWolf314/envdiff/internal/configs"
	"github.com/PolarWolf314/envdiff/internal/secrets"
)

const testPassphrase = "correct horse battery staple"

// setupTestEnvironment clears every variable envdiff reads and moves into a
// temporary directory so no .envdiff.toml is picked up. It returns the
// directory.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()

	for _, name := range []string{
		configs.EnvBaseFile, configs.EnvCurrentFile, configs.EnvPassphrase,
		configs.EnvSensitiveKeys, configs.EnvConfigFile,
		configs.InputBaseFile, configs.InputCurrentFile, configs.InputPassphrase,
		configs.InputSensitiveKeys, configs.InputComment, configs.InputStepSummary,
		actions.EnvOutput, actions.EnvStepSummary, actions.EnvEventPath, actions.EnvEventName,
		actions.EnvRepository, actions.EnvToken, actions.EnvAPIURL, actions.EnvActions,
	} {
		t.Setenv(name, "")
	}
	t.Setenv("NO_COLOR", "1")

	tempDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
	})

	return tempDir
}

// writeEncrypted encrypts content with testPassphrase into dir/name.
func writeEncrypted(t *testing.T, dir, name, content string) string {
	t.Helper()

	sealed, err := secrets.Seal([]byte(testPassphrase), []byte(content))
	if err != nil {
		t.Fatalf("Failed to encrypt %s: %v", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, sealed, 0600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// runCLI executes envdiff with args and returns what the commands wrote to
// their stdout and stderr.
func runCLI(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	if stdin != nil {
		rootCmd.SetIn(stdin)
	}
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// captureOutput captures both stdout and stderr of the process during fn.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	reader, writer, _ := os.Pipe()
	os.Stdout = writer
	os.Stderr = writer

	outputChan := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, reader)
		outputChan <- buf.String()
	}()

	err := fn()

	writer.Close()
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-outputChan, err
}
