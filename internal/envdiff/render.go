package envdiff

import "strings"

// NoDifferencesMessage is reported instead of Markdown when nothing changed.
const NoDifferencesMessage = "No differences exist between the files."

// Render writes each non-empty category as a GitHub Markdown section:
//
//	## Added
//	- MY_API_KEY
//	- CUSTOMER_KEY
//
//	## Modified
//	- MY_API_URL
//
// The result is trimmed, so a diff with no entries renders as "".
func Render(diff Categorized) string {
	if diff == nil {
		return ""
	}

	var b strings.Builder
	for _, category := range diff.Categories() {
		if len(category.Keys) == 0 {
			continue
		}
		b.WriteString("## ")
		b.WriteString(category.Name)
		b.WriteString("\n")
		for _, key := range category.Keys {
			b.WriteString("- ")
			b.WriteString(key)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}

// Message returns the rendered Markdown, or NoDifferencesMessage when diff
// has no entries.
func Message(diff Categorized) string {
	if !HasChanges(diff) {
		return NoDifferencesMessage
	}
	return Render(diff)
}
