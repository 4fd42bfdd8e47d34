// Package postings implements the decision core of jobscout: URL
// normalization, posting classification, location filtering, key extraction
// and the session/historical deduplication pipeline. The package performs no
// I/O; callers feed it raw links and persist what it returns.
package postings

import (
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

// Normalize resolves a possibly relative href against the page it was found
// on and canonicalizes the result: absolute, query and fragment stripped, a
// single trailing slash trimmed. The second return is false when the href is
// not a navigable link (empty, in-page anchor, mailto/tel/javascript scheme)
// or cannot be resolved.
func Normalize(href, sourcePage string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "javascript:") {
		return "", false
	}

	base, err := url.Parse(sourcePage)
	if err != nil {
		log.Debug().Str("source", sourcePage).Err(err).Msg("Failed to parse source page URL")
		return "", false
	}
	rel, err := url.Parse(href)
	if err != nil {
		log.Debug().Str("href", href).Err(err).Msg("Failed to parse href")
		return "", false
	}

	resolved := base.ResolveReference(rel)
	if !resolved.IsAbs() {
		return "", false
	}
	resolved.RawQuery = ""
	resolved.ForceQuery = false
	resolved.Fragment = ""

	return strings.TrimSuffix(resolved.String(), "/"), true
}
