package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/envdiff/internal/configs"
	"github.com/PolarWolf314/envdiff/internal/envdiff"
)

// Decrypter loads an encrypted .env file as a mapping.
type Decrypter interface {
	Decrypt(ctx context.Context, path string) (*envdiff.Mapping, error)
}

// DiffResult contains the outcome of a diff run.
type DiffResult struct {
	// Diff is the structured result, redacted when sensitive keys were configured.
	Diff envdiff.Categorized

	// Message is the Markdown report or envdiff.NoDifferencesMessage.
	Message string

	// HasChanges reports whether any category has entries.
	HasChanges bool

	// Redacted indicates sensitive-key redaction was applied.
	Redacted bool

	// BaseKeys and CurrentKeys count the keys in each file.
	BaseKeys    int
	CurrentKeys int
}

// Diff decrypts the base and current files, compares them and renders the
// report.
//
// The base file is decrypted first, then the current file. Redaction only
// happens when cfg.SensitiveKeys names at least one key.
func Diff(ctx context.Context, cfg *configs.Config, decrypter Decrypter) (*DiffResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := decrypter.Decrypt(ctx, cfg.BaseFile)
	if err != nil {
		return nil, fmt.Errorf("decrypting base file: %w", err)
	}

	current, err := decrypter.Decrypt(ctx, cfg.CurrentFile)
	if err != nil {
		return nil, fmt.Errorf("decrypting current file: %w", err)
	}

	result := &DiffResult{
		BaseKeys:    base.Len(),
		CurrentKeys: current.Len(),
	}

	var diff envdiff.Categorized = envdiff.Compute(base, current)
	if sensitive := envdiff.ParseSensitiveKeys(cfg.SensitiveKeys); sensitive.Len() > 0 {
		diff = envdiff.Redact(diff, sensitive)
		result.Redacted = true
	}

	result.Diff = diff
	result.HasChanges = envdiff.HasChanges(diff)
	result.Message = envdiff.Message(diff)

	return result, nil
}
