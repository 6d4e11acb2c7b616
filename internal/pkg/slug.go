package pkg

import "strings"

// Slugify lowercases the name and swaps the first space for a hyphen.
// Only the first space is replaced, so names that differ in later
// whitespace still map to distinct slugs.
func Slugify(name string) string {
	return strings.Replace(strings.ToLower(name), " ", "-", 1)
}
