package matching

import "strings"

// NormalizeLocation canonicalizes a free-text location for comparison:
// lower-case, trim, and collapse any run of commas, semicolons, periods and
// whitespace into a single space. Comparison is exact equality on the
// normalized forms — no substring or fuzzy matching, and diacritics are kept
// as-is, so "Αθηνα" does not match "Αθήνα". That is a known limitation of the
// rule, not an accident.
func NormalizeLocation(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))
	inSeparator := false
	for _, r := range s {
		if isLocationSeparator(r) {
			inSeparator = true
			continue
		}
		if inSeparator {
			// A separator run before any output is a leading run, not a gap.
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			inSeparator = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isLocationSeparator(r rune) bool {
	switch r {
	case ',', ';', '.', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// locationMatches reports whether the property location equals any of the
// client's desired locations under normalization. The multi-location list
// supersedes the legacy single field when non-empty.
func locationMatches(desired []string, legacy string, propertyLocation string) bool {
	normalized := NormalizeLocation(propertyLocation)
	if len(desired) > 0 {
		for _, d := range desired {
			if NormalizeLocation(d) == normalized {
				return true
			}
		}
		return false
	}
	return NormalizeLocation(legacy) == normalized
}
