package content

import "strings"

// Slugify converts a filename or title to a URL-safe slug: lowercase, with
// every run of non-alphanumeric characters collapsed to a single hyphen.
// The mapping is deterministic, so the same file always yields the same slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
