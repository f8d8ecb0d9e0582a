package actions

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	derrors "github.com/PolarWolf314/envdiff/internal/errors"

	"github.com/google/uuid"
)

// Outputs writes step outputs.
type Outputs struct {
	path     string
	fallback io.Writer

	// delimiter returns a new heredoc delimiter for each value.
	delimiter func() string
}

// NewOutputs returns Outputs that append to the file at path, or write to
// fallback when path is empty.
func NewOutputs(path string, fallback io.Writer) *Outputs {
	return &Outputs{
		path:     path,
		fallback: fallback,
		delimiter: func() string {
			return "ghadelimiter_" + uuid.NewString()
		},
	}
}

// Set publishes a string output.
func (o *Outputs) Set(name, value string) error {
	delimiter := o.delimiter()
	if strings.Contains(name, delimiter) || strings.Contains(value, delimiter) {
		return fmt.Errorf("%w: %s: value contains the delimiter", derrors.ErrOutputFailed, name)
	}

	entry := fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)

	if o.path == "" {
		if o.fallback == nil {
			return nil
		}
		if _, err := io.WriteString(o.fallback, entry); err != nil {
			return fmt.Errorf("%w: %s: %v", derrors.ErrOutputFailed, name, err)
		}
		return nil
	}

	if err := appendToFile(o.path, entry); err != nil {
		return fmt.Errorf("%w: %s: %v", derrors.ErrOutputFailed, name, err)
	}
	return nil
}

// SetJSON publishes value encoded as JSON.
func (o *Outputs) SetJSON(name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", derrors.ErrOutputFailed, name, err)
	}
	return o.Set(name, string(data))
}

// AppendSummary appends markdown to the job summary file at path.
func AppendSummary(path, markdown string) error {
	if path == "" {
		return fmt.Errorf("%w: %s is not set", derrors.ErrOutputFailed, EnvStepSummary)
	}
	if err := appendToFile(path, strings.TrimRight(markdown, "\n")+"\n"); err != nil {
		return fmt.Errorf("%w: step summary: %v", derrors.ErrOutputFailed, err)
	}
	return nil
}

func appendToFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(content)
	return err
}
