package postings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobscout/internal/postings"
)

func TestNormalizeResolvesRelativeHrefs(t *testing.T) {
	tests := []struct {
		name   string
		href   string
		source string
		want   string
	}{
		{
			name:   "relative path with query",
			href:   "/job/12345?src=x",
			source: "https://acme.tal.net/careers",
			want:   "https://acme.tal.net/job/12345",
		},
		{
			name:   "absolute href keeps host",
			href:   "https://other.example.com/opp/9-analyst",
			source: "https://acme.tal.net/careers",
			want:   "https://other.example.com/opp/9-analyst",
		},
		{
			name:   "fragment stripped",
			href:   "https://acme.example.com/job/777#description",
			source: "https://acme.example.com/careers",
			want:   "https://acme.example.com/job/777",
		},
		{
			name:   "trailing slash trimmed",
			href:   "/opp/42-engineer/",
			source: "https://acme.tal.net/careers",
			want:   "https://acme.tal.net/opp/42-engineer",
		},
		{
			name:   "query and fragment together",
			href:   "/job/1?a=b#frag",
			source: "https://acme.example.com/jobs",
			want:   "https://acme.example.com/job/1",
		},
		{
			name:   "surrounding whitespace",
			href:   "  /job/12345  ",
			source: "https://acme.example.com/careers",
			want:   "https://acme.example.com/job/12345",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := postings.Normalize(tt.href, tt.source)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeRejectsNonNavigableHrefs(t *testing.T) {
	source := "https://acme.example.com/careers"
	for _, href := range []string{
		"",
		"#apply-section",
		"mailto:jobs@acme.example.com",
		"tel:+12125551234",
		"javascript:void(0)",
	} {
		_, ok := postings.Normalize(href, source)
		assert.False(t, ok, "href %q should not be navigable", href)
	}
}

func TestNormalizeRejectsUnresolvableInput(t *testing.T) {
	_, ok := postings.Normalize("http://[broken", "https://acme.example.com/careers")
	assert.False(t, ok)

	// A relative source page cannot produce an absolute URL.
	_, ok = postings.Normalize("/job/1", "careers.html")
	assert.False(t, ok)
}
