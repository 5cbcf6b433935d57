package registry

import "strings"

// NormalizeName folds a name for lookups: case-insensitive, underscores read
// as spaces (chat clients often send war_of_roses for "War of Roses").
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(strings.ReplaceAll(name, "_", " ")), " "))
}

// SameName reports whether two names refer to the same record.
func SameName(a, b string) bool {
	return NormalizeName(a) == NormalizeName(b)
}
