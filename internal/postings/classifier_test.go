package postings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobscout/internal/postings"
)

func TestClassifierIsPosting(t *testing.T) {
	c := postings.NewClassifier()

	tests := []struct {
		name   string
		url    string
		source string
		want   bool
	}{
		{
			name:   "numeric id path segment accepted",
			url:    "https://acme.tal.net/job/12345",
			source: "https://acme.tal.net/careers",
			want:   true,
		},
		{
			name:   "workday detail page accepted despite careers segment",
			url:    "https://acme.wd1.myworkdayjobs.com/en-us/careers/job/nyc/analyst_r1234",
			source: "https://acme.wd1.myworkdayjobs.com/en-us/careers",
			want:   true,
		},
		{
			name:   "taleo opportunity accepted despite careers segment",
			url:    "https://acme.tal.net/careers/opp/56789-analyst",
			source: "https://acme.tal.net/careers",
			want:   true,
		},
		{
			name:   "requisition token accepted",
			url:    "https://acme.example.com/apply/jobid=4457",
			source: "https://acme.example.com/positions",
			want:   true,
		},
		{
			name:   "listing page rejected",
			url:    "https://acme.example.com/careers/search",
			source: "https://acme.example.com",
			want:   false,
		},
		{
			name:   "login page rejected even with id token",
			url:    "https://acme.example.com/login/jobid=1",
			source: "https://acme.example.com/positions",
			want:   false,
		},
		{
			name:   "social media rejected",
			url:    "https://www.linkedin.com/company/acme",
			source: "https://acme.example.com/positions",
			want:   false,
		},
		{
			name:   "document rejected",
			url:    "https://acme.example.com/postings/benefits.pdf",
			source: "https://acme.example.com/postings",
			want:   false,
		},
		{
			name:   "no structural signal rejected",
			url:    "https://acme.example.com/positions/analyst",
			source: "https://acme.example.com",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsPosting(tt.url, tt.source))
		})
	}
}

func TestClassifierSelfLink(t *testing.T) {
	c := postings.NewClassifier()

	ok, rule := c.Check("https://acme.example.com/careers", "https://acme.example.com/careers")
	assert.False(t, ok)
	assert.Equal(t, "self-link", rule)

	// Trailing slash on either side still counts as the same page.
	ok, rule = c.Check("https://acme.example.com/careers", "https://acme.example.com/careers/")
	assert.False(t, ok)
	assert.Equal(t, "self-link", rule)
}

func TestClassifierAdvisoryStub(t *testing.T) {
	c := postings.NewClassifier()

	ok, rule := c.Check("https://acme.example.com/x/adv", "https://acme.example.com")
	assert.False(t, ok)
	assert.Equal(t, "advisory-stub", rule)
}
