package secrets

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"sort"

	"github.com/PolarWolf314/envdiff/internal/envdiff"
	derrors "github.com/PolarWolf314/envdiff/internal/errors"

	"github.com/subosito/gotenv"
)

// assignmentLine matches the key of a dotenv assignment, with the same key
// syntax gotenv accepts.
var assignmentLine = regexp.MustCompile(`^\s*(?:export\s+)?([\w.]+)\s*(?:=|:)`)

// ParseEnv parses dotenv content into an ordered mapping.
//
// Values come from gotenv, which handles quoting, escapes, comments and
// variable expansion. Keys keep the order of their first assignment line;
// a key assigned twice keeps its first position and its last value.
func ParseEnv(data []byte) (*envdiff.Mapping, error) {
	env, err := gotenv.StrictParse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", derrors.ErrInvalidEnvFile, err)
	}

	mapping := envdiff.NewMapping()

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		match := assignmentLine.FindSubmatch(scanner.Bytes())
		if match == nil {
			continue
		}
		key := string(match[1])
		if value, ok := env[key]; ok && !mapping.Has(key) {
			mapping.Set(key, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", derrors.ErrInvalidEnvFile, err)
	}

	// Keys the line scan could not place, e.g. inside unusual quoting.
	var rest []string
	for key := range env {
		if !mapping.Has(key) {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		mapping.Set(key, env[key])
	}

	return mapping, nil
}
