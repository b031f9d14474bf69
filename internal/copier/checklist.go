package copier

import "strings"

// ContainsAny reports whether name contains at least one of phrases.
// Matching is case-sensitive.
func ContainsAny(name string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(name, phrase) {
			return true
		}
	}
	return false
}
