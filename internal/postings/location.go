package postings

import (
	"regexp"
	"strings"
)

// anchorCleaner collapses the punctuation that usually separates a
// city/country list in anchor text.
var anchorCleaner = regexp.MustCompile(`[,()/]`)

type keywordPattern struct {
	keyword string
	re      *regexp.Regexp
}

// LocationFilter decides whether a candidate posting's URL and anchor text
// indicate a rejected work location. The allowed scan fully completes before
// the disallowed scan begins: an allowed-location signal overrides any
// disallowed signal also present, and absence of any signal keeps the link.
type LocationFilter struct {
	allowed         []keywordPattern
	disallowedWords []keywordPattern
	disallowedPaths []string
}

// NewLocationFilter compiles the keyword sets. Disallowed entries beginning
// with "/" are treated as locale path segments and matched literally against
// the URL; all other keywords match only when bounded by non-alphanumeric
// characters or string edges, so "sf" cannot match inside "staff".
func NewLocationFilter(allowed, disallowed []string) *LocationFilter {
	f := &LocationFilter{}
	for _, kw := range allowed {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		f.allowed = append(f.allowed, keywordPattern{keyword: kw, re: boundedPattern(kw)})
	}
	for _, kw := range disallowed {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.HasPrefix(kw, "/") {
			f.disallowedPaths = append(f.disallowedPaths, kw)
			continue
		}
		f.disallowedWords = append(f.disallowedWords, keywordPattern{keyword: kw, re: boundedPattern(kw)})
	}
	return f
}

func boundedPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?:\W|^)` + regexp.QuoteMeta(keyword) + `(?:\W|$)`)
}

// IsDisallowed reports whether the link should be dropped for its location.
func (f *LocationFilter) IsDisallowed(normalizedURL, anchorText string) bool {
	lowerURL := strings.ToLower(normalizedURL)
	corpus := lowerURL
	if anchorText != "" {
		corpus += " " + anchorCleaner.ReplaceAllString(strings.ToLower(anchorText), " ")
	}

	// Phase 1: any allowed keyword keeps the link unconditionally.
	for _, p := range f.allowed {
		if p.re.MatchString(corpus) {
			return false
		}
	}

	// Phase 2: locale path segments match literally against the URL,
	// remaining keywords with the same bounded matching as phase 1.
	for _, seg := range f.disallowedPaths {
		if strings.Contains(lowerURL, seg) {
			return true
		}
	}
	for _, p := range f.disallowedWords {
		if p.re.MatchString(corpus) {
			return true
		}
	}

	// No location evidence either way: keep.
	return false
}
