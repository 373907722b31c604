package catalog

import "strings"

// SanitizeName rewrites a raw on-disk channel name into a catalog identifier:
// characters outside [A-Za-z0-9_] are stripped, then leading characters are
// stripped until the name starts with a letter or underscore.
//
// The boolean result reports whether a valid identifier remains. Channels
// whose sanitized name is empty are dropped from the catalog but stay
// readable by their original name.
func SanitizeName(raw string) (string, bool) {
	var b strings.Builder
	b.Grow(len(raw))

	for _, r := range raw {
		if !identRune(r) {
			continue
		}
		if b.Len() == 0 && r >= '0' && r <= '9' {
			continue
		}
		b.WriteRune(r)
	}

	name := b.String()

	return name, name != ""
}

func identRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	default:
		return false
	}
}
