package common

import (
	"path"
	"strings"
	"unicode"
)

// UnknownStr is the fallback rendering for unrecognized enum values.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// Identifier lowers s and strips every rune that cannot appear in a Go
// identifier. It returns empty when nothing survives or when the result
// would start with a digit, so callers can fall back to a fixed name.
func Identifier(s string) string {
	var sb strings.Builder

	for _, r := range strings.ToLower(s) {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}

	out := sb.String()
	if out == "" {
		return ""
	}

	if unicode.IsDigit(rune(out[0])) {
		return ""
	}

	return out
}
