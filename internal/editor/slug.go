package editor

import (
	"fmt"
	"strings"
	"time"
)

// fallbackSlugPrefix is used when a title yields no slug characters at all
// (e.g. a title written entirely in a non-Latin script).
const fallbackSlugPrefix = "post"

// DeriveSlug converts a title into a URL-safe slug: lowercase, every maximal
// run of characters outside [a-z0-9] collapsed to a single hyphen, leading
// and trailing hyphens stripped. An empty result falls back to
// "post-<unix-millis>" - non-empty and unique with high probability, with
// the store's uniqueness constraint as the actual backstop.
func DeriveSlug(title string) string {
	return deriveSlug(title, time.Now())
}

func deriveSlug(title string, now time.Time) string {
	var b strings.Builder
	hyphenPending := false

	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if hyphenPending && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphenPending = false
			b.WriteRune(r)
			continue
		}
		hyphenPending = true
	}

	slug := b.String()
	if slug == "" {
		return fmt.Sprintf("%s-%d", fallbackSlugPrefix, now.UnixMilli())
	}
	return slug
}
