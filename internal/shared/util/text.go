package util

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeInput trims s and converts it to NFC so decomposed Hangul from some
// clients compares equal to the precomposed strings in the content tables.
func NormalizeInput(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// NormalizeList normalizes every element, dropping blanks and repeats while keeping order.
func NormalizeList(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		v := NormalizeInput(item)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// SplitParams flattens repeated and comma-separated query values.
func SplitParams(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, strings.Split(v, ",")...)
	}
	return NormalizeList(out)
}
