package workspace

import "strings"

// DefaultPattern is the filter applied when a listing request does not
// specify one. It matches the app's document files.
const DefaultPattern = "*.inkfinite.json"

// matchPattern reports whether a file name matches the filter string.
// A pattern containing '*' matches when the name contains the pattern
// with all '*' characters removed; otherwise the name must end with the
// pattern. Both checks are case-sensitive.
func matchPattern(name, pattern string) bool {
	if strings.Contains(pattern, "*") {
		return strings.Contains(name, strings.ReplaceAll(pattern, "*", ""))
	}
	return strings.HasSuffix(name, pattern)
}
