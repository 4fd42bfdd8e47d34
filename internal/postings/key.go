package postings

import (
	"net/url"
	"strings"
)

// KeyExtractor derives the deduplication identity of a posting URL:
// "host::descriptive-path", where the descriptive path starts at the
// right-most recognized marker segment. Host and path are lowercased so the
// key is insensitive to marker casing.
type KeyExtractor struct {
	markers []string
}

// NewKeyExtractor creates an extractor for the given marker segments. An
// empty list falls back to the standard "/opp/" and "/job/" markers.
func NewKeyExtractor(markers []string) *KeyExtractor {
	if len(markers) == 0 {
		markers = []string{"/opp/", "/job/"}
	}
	lowered := make([]string, 0, len(markers))
	for _, m := range markers {
		lowered = append(lowered, strings.ToLower(m))
	}
	return &KeyExtractor{markers: lowered}
}

// Extract returns the key for a normalized URL. The second return is false
// when no marker occurs in the path; the caller must treat that as "cannot
// deduplicate", never assign a substitute key.
func (e *KeyExtractor) Extract(normalizedURL string) (string, bool) {
	u, err := url.Parse(normalizedURL)
	if err != nil || u.Host == "" {
		return "", false
	}

	host := strings.ToLower(u.Host)
	path := strings.ToLower(strings.TrimRight(u.Path, "/"))

	// A later marker wins over an earlier one: deeper markers sit closer
	// to the actual posting identifier.
	best := -1
	for _, marker := range e.markers {
		if idx := strings.LastIndex(path, marker); idx > best {
			best = idx
		}
	}
	if best < 0 {
		return "", false
	}

	return host + "::" + path[best:], true
}
