// Package textutil provides the product-name cleaning and small list helpers
// that accompany the statistics core.
package textutil

import (
	"regexp"
	"strings"
)

// nonAlnum matches runs of characters that are neither lowercase letters nor
// digits. Applied after lowercasing, a single substitution both replaces
// punctuation and collapses whitespace runs.
var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// CleanProductName normalizes a single product name: trims surrounding
// whitespace, lowercases, and replaces every run of non-alphanumeric
// characters with a single space.
//
//	CleanProductName("  Café-Crème 250g!! ") == "caf cr me 250g"
func CleanProductName(name string) string {
	text := strings.ToLower(strings.TrimSpace(name))
	text = nonAlnum.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// CleanProductNames applies CleanProductName to every element and returns a
// new slice; the input is left untouched.
func CleanProductNames(names []string) []string {
	cleaned := make([]string, len(names))
	for i, name := range names {
		cleaned[i] = CleanProductName(name)
	}
	return cleaned
}
