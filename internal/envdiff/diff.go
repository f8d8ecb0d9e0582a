package envdiff

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Category names, in the order they appear in a Result.
const (
	CategoryAdded     = "Added"
	CategoryRemoved   = "Removed"
	CategoryModified  = "Modified"
	CategorySensitive = "Other sensitive keys changed"
)

// Category is a named group of changed keys.
type Category struct {
	Name string
	Keys []string
}

// Categorized is implemented by every diff shape that can be rendered.
type Categorized interface {
	// Categories returns the groups in display order.
	Categories() []Category
}

// Result holds the keys that differ between a base and a current mapping.
// A key appears in at most one of the three lists.
type Result struct {
	Added    []string
	Removed  []string
	Modified []string
}

// Compute compares base against current.
//
// Added lists keys only in current, in current's order. Removed lists keys
// only in base, and Modified lists keys in both whose values differ; both
// follow base's order. Nil mappings are treated as empty.
func Compute(base, current *Mapping) Result {
	result := Result{
		Added:    []string{},
		Removed:  []string{},
		Modified: []string{},
	}

	for _, key := range current.Keys() {
		if !base.Has(key) {
			result.Added = append(result.Added, key)
		}
	}

	for _, key := range base.Keys() {
		currentValue, ok := current.Get(key)
		if !ok {
			result.Removed = append(result.Removed, key)
			continue
		}
		baseValue, _ := base.Get(key)
		if !Equal(baseValue, currentValue) {
			result.Modified = append(result.Modified, key)
		}
	}

	return result
}

// Categories returns Added, Removed and Modified, in that order.
func (r Result) Categories() []Category {
	return []Category{
		{Name: CategoryAdded, Keys: nonNil(r.Added)},
		{Name: CategoryRemoved, Keys: nonNil(r.Removed)},
		{Name: CategoryModified, Keys: nonNil(r.Modified)},
	}
}

// MarshalJSON encodes the result as {"Added":[...],"Removed":[...],"Modified":[...]}.
// Empty lists are encoded as [] rather than null.
func (r Result) MarshalJSON() ([]byte, error) {
	return marshalCategories(r.Categories())
}

// Equal reports whether two values have the same canonical JSON form.
// Values that cannot be encoded fall back to reflect.DeepEqual.
func Equal(a, b any) bool {
	encodedA, errA := json.Marshal(a)
	encodedB, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return reflect.DeepEqual(a, b)
	}
	return bytes.Equal(encodedA, encodedB)
}

// HasChanges reports whether any category of diff has at least one entry.
func HasChanges(diff Categorized) bool {
	if diff == nil {
		return false
	}
	for _, category := range diff.Categories() {
		if len(category.Keys) > 0 {
			return true
		}
	}
	return false
}

// marshalCategories encodes categories as a JSON object, keeping their order.
func marshalCategories(categories []Category) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(category.Name)
		if err != nil {
			return nil, err
		}
		keys, err := json.Marshal(nonNil(category.Keys))
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(keys)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func nonNil(keys []string) []string {
	if keys == nil {
		return []string{}
	}
	return keys
}
