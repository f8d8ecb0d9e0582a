// Package envdiff compares two environment mappings and reports the keys
// that changed between them.
//
// The package has three parts:
//
//   - Compute builds a Result with the Added, Removed and Modified keys.
//   - Redact hides sensitive key names behind a single counter category.
//   - Render formats any categorized diff as GitHub Markdown.
//
// # Ordering
//
// Mapping preserves insertion order. Added keys follow the current mapping's
// order; Removed and Modified keys follow the base mapping's order. Rendering
// and JSON encoding both walk categories in the order returned by
// Categories, so output is deterministic for a given pair of inputs.
//
// # Equality
//
// Two values are equal when their canonical JSON encodings match. Nested
// objects are compared without regard to key order.
//
// # Usage
//
//	result := envdiff.Compute(base, current)
//	var diff envdiff.Categorized = result
//	if keys := envdiff.ParseSensitiveKeys("API_KEY,DB_PASSWORD"); keys.Len() > 0 {
//	    diff = envdiff.Redact(result, keys)
//	}
//	fmt.Println(envdiff.Message(diff))
package envdiff
