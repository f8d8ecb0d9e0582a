package utils

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/envdiff/internal/ui"
)

// FormatPaths formats a slice of paths into a readable string.
func FormatPaths(paths []string) string {
	return "\n" + ui.Bullets(ui.Path, paths)
}

// FormatKeys formats environment key names as an indented list.
func FormatKeys(keys []string) string {
	if len(keys) == 0 {
		return " " + ui.Muted.Sprint("none") + "\n"
	}
	return "\n" + ui.Bullets(ui.Key, keys)
}

// Pluralize returns "1 key" or "N keys" for the given noun.
func Pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, strings.TrimSuffix(noun, "s"))
}
