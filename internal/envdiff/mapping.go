package envdiff

import "sort"

// Mapping is an ordered set of environment keys and their values.
// The zero value is not usable; use NewMapping or MappingFromMap.
// A nil *Mapping behaves like an empty mapping for every read method.
type Mapping struct {
	keys   []string
	values map[string]any
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]any)}
}

// MappingFromMap builds a mapping from a Go map. Go maps have no order, so
// keys are inserted in sorted order.
func MappingFromMap(values map[string]any) *Mapping {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	m := NewMapping()
	for _, key := range keys {
		m.Set(key, values[key])
	}
	return m
}

// Set stores value under key. A key that already exists keeps its position.
func (m *Mapping) Set(key string, value any) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	value, ok := m.values[key]
	return value, ok
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}
