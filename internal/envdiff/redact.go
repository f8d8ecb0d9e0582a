package envdiff

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// SensitiveKeys is a set of key names whose changes must not be shown.
// Entries containing glob characters (*, ? or [) also match as patterns,
// so "*_SECRET" hides every key ending in _SECRET.
type SensitiveKeys struct {
	names    map[string]struct{}
	patterns []string
}

// ParseSensitiveKeys parses a comma-delimited list of key names.
// Surrounding whitespace is trimmed and empty entries are ignored, so an
// empty string yields an empty set.
func ParseSensitiveKeys(raw string) SensitiveKeys {
	return NewSensitiveKeys(strings.Split(raw, ",")...)
}

// NewSensitiveKeys builds a set from individual names.
func NewSensitiveKeys(names ...string) SensitiveKeys {
	keys := SensitiveKeys{names: make(map[string]struct{})}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		keys.names[name] = struct{}{}
		if strings.ContainsAny(name, "*?[") && doublestar.ValidatePattern(name) {
			keys.patterns = append(keys.patterns, name)
		}
	}
	return keys
}

// Contains reports whether key is sensitive.
func (s SensitiveKeys) Contains(key string) bool {
	if _, ok := s.names[key]; ok {
		return true
	}
	for _, pattern := range s.patterns {
		if matched, err := doublestar.Match(pattern, key); err == nil && matched {
			return true
		}
	}
	return false
}

// Len returns the number of configured entries.
func (s SensitiveKeys) Len() int {
	return len(s.names)
}

// RedactedResult is a diff with sensitive keys hidden. Categories left empty
// by redaction are dropped. When at least one key was hidden, a trailing
// CategorySensitive category reports how many.
type RedactedResult struct {
	categories []Category
	hidden     int
}

// Redact removes every sensitive key from diff and counts them.
//
// The input is never modified. Redacting a RedactedResult again carries its
// hidden count forward instead of counting the summary entry, so applying
// the same set twice returns an identical result.
func Redact(diff Categorized, sensitive SensitiveKeys) RedactedResult {
	var (
		source []Category
		result RedactedResult
	)

	switch d := diff.(type) {
	case nil:
		return result
	case RedactedResult:
		source, result.hidden = d.categories, d.hidden
	case *RedactedResult:
		if d == nil {
			return result
		}
		source, result.hidden = d.categories, d.hidden
	default:
		source = d.Categories()
	}

	for _, category := range source {
		kept := make([]string, 0, len(category.Keys))
		for _, key := range category.Keys {
			if sensitive.Contains(key) {
				result.hidden++
				continue
			}
			kept = append(kept, key)
		}
		if len(kept) == 0 {
			continue
		}
		result.categories = append(result.categories, Category{Name: category.Name, Keys: kept})
	}

	return result
}

// Hidden returns the number of keys removed by redaction.
func (r RedactedResult) Hidden() int {
	return r.hidden
}

// Categories returns the remaining categories followed by the sensitive-key
// summary, if any keys were hidden.
func (r RedactedResult) Categories() []Category {
	categories := make([]Category, 0, len(r.categories)+1)
	for _, category := range r.categories {
		categories = append(categories, Category{Name: category.Name, Keys: slices.Clone(category.Keys)})
	}
	if r.hidden > 0 {
		categories = append(categories, Category{
			Name: CategorySensitive,
			Keys: []string{fmt.Sprintf("%d key(s)", r.hidden)},
		})
	}
	return categories
}

// MarshalJSON encodes the categories as a JSON object in display order.
func (r RedactedResult) MarshalJSON() ([]byte, error) {
	return marshalCategories(r.Categories())
}
