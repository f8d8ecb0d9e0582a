package cmd

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/envdiff/internal/actions"
	"github.com/PolarWolf314/envdiff/internal/configs"
	derrors "github.com/PolarWolf314/envdiff/internal/errors"
	"github.com/PolarWolf314/envdiff/internal/github"
)

const (
	baseEnv    = "A=1\nB=2\nC=3\n"
	currentEnv = "A=1\nB=9\nD=4\n"
)

func setupDiffFiles(t *testing.T) (dir, base, current string) {
	t.Helper()
	dir = setupTestEnvironment(t)
	base = writeEncrypted(t, dir, ".env.base.enc", baseEnv)
	current = writeEncrypted(t, dir, ".env.enc", currentEnv)
	t.Setenv(configs.EnvPassphrase, testPassphrase)
	return dir, base, current
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestDiffWritesGitHubOutputs(t *testing.T) {
	dir, base, current := setupDiffFiles(t)
	outputPath := filepath.Join(dir, "github_output")
	t.Setenv(actions.EnvOutput, outputPath)

	stdout, stderr, err := runCLI(t, nil, "diff", "--base", base, "--current", current, "--sensitive-keys", "B")
	if err != nil {
		t.Fatalf("diff failed: %v\nstderr: %s", err, stderr)
	}
	if stdout != "" {
		t.Errorf("expected nothing on stdout when %s is set, got: %q", actions.EnvOutput, stdout)
	}

	output := readFile(t, outputPath)
	for _, want := range []string{
		"diffs<<ghadelimiter_",
		"\n" + `{"Added":["D"],"Removed":["C"],"Other sensitive keys changed":["1 key(s)"]}` + "\n",
		"message<<ghadelimiter_",
		"\n## Added\n- D\n\n## Removed\n- C\n\n## Other sensitive keys changed\n- 1 key(s)\n",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output file missing %q\ngot:\n%s", want, output)
		}
	}
	if strings.Contains(output, "- B") {
		t.Errorf("sensitive key leaked into outputs:\n%s", output)
	}

	if !strings.Contains(stderr, "Environment files differ") {
		t.Errorf("expected a summary on stderr, got: %q", stderr)
	}
}

func TestDiffPrintsOutputsWithoutGitHubOutput(t *testing.T) {
	dir := setupTestEnvironment(t)
	base := writeEncrypted(t, dir, "base.enc", baseEnv)
	current := writeEncrypted(t, dir, "current.enc", baseEnv)
	t.Setenv(configs.EnvPassphrase, testPassphrase)
	t.Setenv(configs.EnvBaseFile, base)
	t.Setenv(configs.EnvCurrentFile, current)

	stdout, stderr, err := runCLI(t, nil, "diff")
	if err != nil {
		t.Fatalf("diff failed: %v\nstderr: %s", err, stderr)
	}

	if !strings.Contains(stdout, "\n"+`{"Added":[],"Removed":[],"Modified":[]}`+"\n") {
		t.Errorf("stdout missing empty diffs output:\n%s", stdout)
	}
	if !strings.Contains(stdout, "\nNo differences exist between the files.\n") {
		t.Errorf("stdout missing fallback message:\n%s", stdout)
	}
	if !strings.Contains(stderr, "(3 keys in base, 3 keys in current)") {
		t.Errorf("stderr missing key counts: %q", stderr)
	}
}

func TestDiffUsesActionInputs(t *testing.T) {
	dir := setupTestEnvironment(t)
	base := writeEncrypted(t, dir, "base.enc", baseEnv)
	current := writeEncrypted(t, dir, "current.enc", currentEnv)
	t.Setenv(configs.InputPassphrase, testPassphrase)
	t.Setenv(configs.InputBaseFile, base)
	t.Setenv(configs.InputCurrentFile, current)

	stdout, _, err := runCLI(t, nil, "diff")
	if err != nil {
		t.Fatalf("diff failed: %v", err)
	}
	if !strings.Contains(stdout, `{"Added":["D"],"Removed":["C"],"Modified":["B"]}`) {
		t.Errorf("unexpected outputs:\n%s", stdout)
	}
}

func TestDiffFlagsOverrideEnvironment(t *testing.T) {
	_, base, current := setupDiffFiles(t)
	t.Setenv(configs.EnvBaseFile, "does-not-exist.enc")
	t.Setenv(configs.EnvSensitiveKeys, "C")

	stdout, _, err := runCLI(t, nil, "diff", "--base", base, "--current", current, "--sensitive-keys", "")
	if err != nil {
		t.Fatalf("diff failed: %v", err)
	}
	if !strings.Contains(stdout, `{"Added":["D"],"Removed":["C"],"Modified":["B"]}`) {
		t.Errorf("flags did not take precedence:\n%s", stdout)
	}
}

func TestDiffReadsConfigFile(t *testing.T) {
	dir, _, _ := setupDiffFiles(t)
	config := `base_file = ".env.base.enc"
current_file = ".env.enc"
sensitive_keys = ["B", "C"]
`
	if err := os.WriteFile(filepath.Join(dir, configs.DefaultConfigFile), []byte(config), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	stdout, _, err := runCLI(t, nil, "diff")
	if err != nil {
		t.Fatalf("diff failed: %v", err)
	}
	if !strings.Contains(stdout, `{"Added":["D"],"Other sensitive keys changed":["2 key(s)"]}`) {
		t.Errorf("config file was not applied:\n%s", stdout)
	}
}

func TestDiffAppendsStepSummary(t *testing.T) {
	dir, base, current := setupDiffFiles(t)
	summaryPath := filepath.Join(dir, "summary.md")
	t.Setenv(actions.EnvStepSummary, summaryPath)
	t.Setenv(actions.EnvOutput, filepath.Join(dir, "github_output"))

	_, stderr, err := runCLI(t, nil, "diff", "--base", base, "--current", current, "--step-summary")
	if err != nil {
		t.Fatalf("diff failed: %v", err)
	}

	want := "## Added\n- D\n\n## Removed\n- C\n\n## Modified\n- B\n"
	if got := readFile(t, summaryPath); got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
	if !strings.Contains(stderr, "job summary") {
		t.Errorf("stderr should mention the job summary: %q", stderr)
	}
}

func TestDiffCommentsOnPullRequest(t *testing.T) {
	dir, base, current := setupDiffFiles(t)
	t.Setenv(actions.EnvOutput, filepath.Join(dir, "github_output"))

	var body string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/repos/octo/app/issues/7/comments" {
			http.NotFound(w, r)
			return
		}
		var comment struct {
			Body string `json:"body"`
		}
		if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		body = comment.Body
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"html_url":"https://github.com/octo/app/pull/7#issuecomment-1"}`))
	}))
	defer server.Close()

	eventPath := filepath.Join(dir, "event.json")
	if err := os.WriteFile(eventPath, []byte(`{"number":7,"pull_request":{"number":7}}`), 0600); err != nil {
		t.Fatalf("Failed to write event: %v", err)
	}
	t.Setenv(actions.EnvEventPath, eventPath)
	t.Setenv(actions.EnvEventName, "pull_request")
	t.Setenv(actions.EnvRepository, "octo/app")
	t.Setenv(actions.EnvToken, "token")
	t.Setenv(actions.EnvAPIURL, server.URL)

	_, stderr, err := runCLI(t, nil, "diff", "--base", base, "--current", current, "--comment")
	if err != nil {
		t.Fatalf("diff failed: %v", err)
	}

	if !strings.HasPrefix(body, github.CommentHeading+"\n\n## Added\n- D") {
		t.Errorf("unexpected comment body: %q", body)
	}
	if !strings.Contains(stderr, "issuecomment-1") {
		t.Errorf("stderr should include the comment URL: %q", stderr)
	}
}

func TestDiffCommentSkippedWithoutPullRequest(t *testing.T) {
	_, base, current := setupDiffFiles(t)
	t.Setenv(actions.EnvEventName, "push")

	output, err := captureOutput(func() error {
		_, _, err := runCLI(t, nil, "diff", "--base", base, "--current", current, "--comment")
		return err
	})
	if err != nil {
		t.Fatalf("diff failed: %v", err)
	}
	if !strings.Contains(output, "skipping comment") {
		t.Errorf("expected a skipped comment warning, got: %q", output)
	}
}

func TestDiffErrors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, base, current string) []string
		wantErr error
	}{
		{
			name: "missing passphrase",
			setup: func(t *testing.T, base, current string) []string {
				t.Setenv(configs.EnvPassphrase, "")
				return []string{"--base", base, "--current", current}
			},
			wantErr: derrors.ErrMissingInput,
		},
		{
			name: "missing current file path",
			setup: func(t *testing.T, base, current string) []string {
				return []string{"--base", base}
			},
			wantErr: derrors.ErrMissingInput,
		},
		{
			name: "wrong passphrase",
			setup: func(t *testing.T, base, current string) []string {
				t.Setenv(configs.EnvPassphrase, "wrong")
				return []string{"--base", base, "--current", current}
			},
			wantErr: derrors.ErrDecryptFailed,
		},
		{
			name: "missing base file",
			setup: func(t *testing.T, base, current string) []string {
				return []string{"--base", base + ".missing", "--current", current}
			},
			wantErr: derrors.ErrFileNotFound,
		},
		{
			name: "invalid boolean input",
			setup: func(t *testing.T, base, current string) []string {
				t.Setenv(configs.InputComment, "maybe")
				return []string{"--base", base, "--current", current}
			},
			wantErr: derrors.ErrInvalidConfig,
		},
		{
			name: "comment without token",
			setup: func(t *testing.T, base, current string) []string {
				eventPath := filepath.Join(filepath.Dir(base), "event.json")
				if err := os.WriteFile(eventPath, []byte(`{"pull_request":{"number":3}}`), 0600); err != nil {
					t.Fatalf("Failed to write event: %v", err)
				}
				t.Setenv(actions.EnvEventPath, eventPath)
				return []string{"--base", base, "--current", current, "--comment"}
			},
			wantErr: derrors.ErrMissingInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, base, current := setupDiffFiles(t)
			outputPath := filepath.Join(dir, "github_output")
			t.Setenv(actions.EnvOutput, outputPath)

			args := append([]string{"diff"}, tt.setup(t, base, current)...)
			_, _, err := runCLI(t, nil, args...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}

			if _, statErr := os.Stat(outputPath); !os.IsNotExist(statErr) {
				t.Errorf("outputs should not be written when the run fails before publishing")
			}
		})
	}
}
