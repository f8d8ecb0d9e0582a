package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	derrors "github.com/PolarWolf314/envdiff/internal/errors"
)

// DefaultConfigFile is loaded from the working directory when present.
const DefaultConfigFile = ".envdiff.toml"

// Environment variables read by Load.
const (
	EnvBaseFile      = "BASE_ENV_ENC_FILE_PATH"
	EnvCurrentFile   = "CURRENT_ENV_ENC_FILE_PATH"
	EnvPassphrase    = "DOTENVENC_PASS"
	EnvSensitiveKeys = "SENSITIVE_KEYS"
	EnvConfigFile    = "ENVDIFF_CONFIG"

	InputBaseFile      = "INPUT_BASE_FILE"
	InputCurrentFile   = "INPUT_CURRENT_FILE"
	InputPassphrase    = "INPUT_PASSPHRASE"
	InputSensitiveKeys = "INPUT_SENSITIVE_KEYS"
	InputComment       = "INPUT_COMMENT"
	InputStepSummary   = "INPUT_STEP_SUMMARY"
)

// LookupFunc looks up an environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Config holds everything a diff run needs.
type Config struct {
	// BaseFile is the encrypted .env file from the base branch.
	BaseFile string

	// CurrentFile is the encrypted .env file from the current branch.
	CurrentFile string

	// Passphrase decrypts both files.
	Passphrase []byte

	// SensitiveKeys is a comma-delimited list of keys to redact. Empty
	// means no redaction.
	SensitiveKeys string

	// Comment posts the message as a pull-request comment.
	Comment bool

	// StepSummary appends the message to the job summary.
	StepSummary bool

	// Source is the configuration file that was loaded, if any.
	Source string
}

// FileConfig is the on-disk layout of .envdiff.toml.
type FileConfig struct {
	BaseFile      string   `toml:"base_file,omitempty"`
	CurrentFile   string   `toml:"current_file,omitempty"`
	SensitiveKeys []string `toml:"sensitive_keys,omitempty"`
	Comment       bool     `toml:"comment"`
	StepSummary   bool     `toml:"step_summary"`
}

// Load builds a Config from the configuration file and the environment.
//
// configPath selects the file explicitly; when empty, ENVDIFF_CONFIG is
// used, then DefaultConfigFile if it exists. An explicitly named file that
// does not exist is an error.
func Load(lookup LookupFunc, configPath string) (*Config, error) {
	cfg := &Config{}

	path := configPath
	if path == "" {
		path, _ = lookupFirst(lookup, EnvConfigFile)
	}
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}

	if path != "" {
		var fileConfig FileConfig
		if err := LoadTOML(path, &fileConfig); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", derrors.ErrFileNotFound, path)
			}
			return nil, fmt.Errorf("%w: %s: %v", derrors.ErrInvalidConfig, path, err)
		}
		cfg.BaseFile = fileConfig.BaseFile
		cfg.CurrentFile = fileConfig.CurrentFile
		cfg.SensitiveKeys = strings.Join(fileConfig.SensitiveKeys, ",")
		cfg.Comment = fileConfig.Comment
		cfg.StepSummary = fileConfig.StepSummary
		cfg.Source = path
	}

	if v, ok := lookupFirst(lookup, EnvBaseFile, InputBaseFile); ok {
		cfg.BaseFile = v
	}
	if v, ok := lookupFirst(lookup, EnvCurrentFile, InputCurrentFile); ok {
		cfg.CurrentFile = v
	}
	if v, ok := lookupFirst(lookup, EnvSensitiveKeys, InputSensitiveKeys); ok {
		cfg.SensitiveKeys = v
	}

	var err error
	if cfg.Comment, err = lookupBool(lookup, InputComment, cfg.Comment); err != nil {
		return nil, err
	}
	if cfg.StepSummary, err = lookupBool(lookup, InputStepSummary, cfg.StepSummary); err != nil {
		return nil, err
	}

	cfg.Passphrase = PassphraseFromEnv(lookup)

	return cfg, nil
}

// WriteFileConfig saves fileConfig to path. An existing file is only
// replaced when overwrite is true.
func WriteFileConfig(path string, fileConfig FileConfig, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", derrors.ErrFileExists, path)
		}
	}
	if err := SaveTOML(path, fileConfig); err != nil {
		return fmt.Errorf("%w: writing %s: %v", derrors.ErrInvalidConfig, path, err)
	}
	return nil
}

// PassphraseFromEnv returns the passphrase from DOTENVENC_PASS or
// INPUT_PASSPHRASE, or nil when neither is set.
func PassphraseFromEnv(lookup LookupFunc) []byte {
	if v, ok := lookupFirst(lookup, EnvPassphrase, InputPassphrase); ok {
		return []byte(v)
	}
	return nil
}

// Validate checks that the required inputs are present.
func (c *Config) Validate() error {
	var missing []string
	if c.BaseFile == "" {
		missing = append(missing, "base file path ("+EnvBaseFile+")")
	}
	if c.CurrentFile == "" {
		missing = append(missing, "current file path ("+EnvCurrentFile+")")
	}
	if len(c.Passphrase) == 0 {
		missing = append(missing, "passphrase ("+EnvPassphrase+")")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", derrors.ErrMissingInput, strings.Join(missing, ", "))
	}
	return nil
}

// ResolvePaths makes BaseFile and CurrentFile absolute.
func (c *Config) ResolvePaths() error {
	for _, path := range []*string{&c.BaseFile, &c.CurrentFile} {
		abs, err := filepath.Abs(*path)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", *path, err)
		}
		*path = abs
	}
	return nil
}

// lookupFirst returns the first non-empty value among names.
func lookupFirst(lookup LookupFunc, names ...string) (string, bool) {
	if lookup == nil {
		return "", false
	}
	for _, name := range names {
		if v, ok := lookup(name); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

func lookupBool(lookup LookupFunc, name string, fallback bool) (bool, error) {
	v, ok := lookupFirst(lookup, name)
	if !ok {
		return fallback, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q is not a boolean", derrors.ErrInvalidConfig, name, v)
	}
	return b, nil
}
