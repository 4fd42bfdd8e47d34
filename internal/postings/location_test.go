package postings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobscout/internal/config"
	"jobscout/internal/postings"
)

func newFilter() *postings.LocationFilter {
	return postings.NewLocationFilter(config.DefaultAllowedLocations, config.DefaultDisallowedLocations)
}

func TestLocationFilterDisallowedAnchor(t *testing.T) {
	f := newFilter()

	// Anchor text names a disallowed city and country.
	assert.True(t, f.IsDisallowed("https://acme.example.com/job/12345", "London, UK"))
}

func TestLocationFilterAllowedOverridesDisallowed(t *testing.T) {
	f := newFilter()

	// Both an allowed and a disallowed location appear; the allowed signal
	// wins regardless of order.
	assert.False(t, f.IsDisallowed("https://acme.example.com/job/12345", "New York, NY / London"))
	assert.False(t, f.IsDisallowed("https://acme.example.com/job/12345", "London / Hong Kong"))
}

func TestLocationFilterKeywordBoundaries(t *testing.T) {
	f := newFilter()

	// "sf" must not match inside "staff", "la" not inside "plan",
	// "dublin" not inside "dubliners".
	assert.False(t, f.IsDisallowed("https://acme.example.com/job/12345", "Staff Accountant"))
	assert.False(t, f.IsDisallowed("https://acme.example.com/job/12345", "Financial Planning Analyst"))
	assert.False(t, f.IsDisallowed("https://acme.example.com/job/12345", "Dubliners Club Manager"))

	assert.True(t, f.IsDisallowed("https://acme.example.com/job/12345", "Analyst - Dublin"))
}

func TestLocationFilterLocalePathSegments(t *testing.T) {
	f := newFilter()

	// Locale segments match literally against the URL, no anchor needed.
	assert.True(t, f.IsDisallowed("https://acme.example.com/fr-fr/job/12345", ""))
	assert.True(t, f.IsDisallowed("https://acme.example.com/ja-jp/job/12345", "Engineer"))

	// An allowed keyword in the anchor still overrides the locale segment.
	assert.False(t, f.IsDisallowed("https://acme.example.com/fr-fr/job/12345", "New York"))
}

func TestLocationFilterNoEvidenceKeeps(t *testing.T) {
	f := newFilter()

	assert.False(t, f.IsDisallowed("https://acme.example.com/job/12345", ""))
	assert.False(t, f.IsDisallowed("https://acme.example.com/job/12345", "Senior Software Engineer"))
}

func TestLocationFilterURLCarriesSignal(t *testing.T) {
	f := newFilter()

	// The URL participates in the corpus, not just the anchor text.
	assert.True(t, f.IsDisallowed("https://acme.example.com/job/london-12345", ""))
	assert.False(t, f.IsDisallowed("https://acme.example.com/job/new-york-12345", ""))
}
