package postings

import (
	"regexp"
	"strings"
)

// Rule names reported by Classifier.Check for rejected candidates.
const (
	ruleSelfLink        = "self-link"
	ruleAdvisoryStub    = "advisory-stub"
	ruleNegativeKeyword = "negative-keyword"
	ruleVendorPattern   = "vendor-pattern"
	rulePostingID       = "posting-id"
	ruleDefault         = "default"
)

// negativeKeywords are substrings that mark listing, navigation, account,
// informational, document and social-media URLs.
var negativeKeywords = []string{
	"/careers", "/jobs", "/jobboard", "/search", "/opportunities",
	"candidate/jobboard", "login", "signin", "register", "event",
	"about", "contact", "privacy", "terms", ".pdf", ".jpg", ".png",
	"facebook.com", "linkedin.com", "twitter.com", "instagram.com",
	"googleusercontent.com",
}

// Vendor detail pages legitimately contain some of the negative substrings
// in their own paths; those keywords must not reject them.
var (
	workdayExceptions = map[string]struct{}{"/jobs": {}, "/careers": {}}
	taleoExceptions   = map[string]struct{}{"/jobs": {}, "/careers": {}, "/candidate": {}}
)

// postingIDPattern matches requisition-style query tokens and standalone
// numeric path segments of five or more digits.
var postingIDPattern = regexp.MustCompile(`jobid=|job_id=|requisitionid=|postingid=|/\d{5,}`)

type verdict int

const (
	verdictNext verdict = iota
	verdictAccept
	verdictReject
)

type candidate struct {
	url    string // lowercased normalized URL
	source string // lowercased source page URL
}

type rule struct {
	name string
	eval func(c candidate) verdict
}

// Classifier decides whether a normalized URL structurally resembles an
// individual job posting. Rules are evaluated in priority order and the
// first accept or reject wins.
type Classifier struct {
	rules []rule
}

// NewClassifier builds the ordered rule list.
func NewClassifier() *Classifier {
	return &Classifier{rules: []rule{
		{name: ruleSelfLink, eval: evalSelfLink},
		{name: ruleAdvisoryStub, eval: evalAdvisoryStub},
		{name: ruleNegativeKeyword, eval: evalNegativeKeyword},
		{name: ruleVendorPattern, eval: evalVendorPattern},
		{name: rulePostingID, eval: evalPostingID},
	}}
}

// IsPosting reports whether the normalized URL looks like a single job
// posting rather than a listing, navigation, login or social page.
func (c *Classifier) IsPosting(normalizedURL, sourcePage string) bool {
	ok, _ := c.Check(normalizedURL, sourcePage)
	return ok
}

// Check classifies the URL and, when rejecting, names the rule that fired.
func (c *Classifier) Check(normalizedURL, sourcePage string) (bool, string) {
	cand := candidate{
		url:    strings.ToLower(normalizedURL),
		source: strings.ToLower(sourcePage),
	}
	for _, r := range c.rules {
		switch r.eval(cand) {
		case verdictAccept:
			return true, r.name
		case verdictReject:
			return false, r.name
		}
	}
	return false, ruleDefault
}

// evalSelfLink rejects links back to the page they were found on; those are
// navigation, not postings.
func evalSelfLink(c candidate) verdict {
	if strings.TrimSuffix(c.url, "/") == strings.TrimSuffix(c.source, "/") {
		return verdictReject
	}
	return verdictNext
}

// evalAdvisoryStub rejects short advisory pages that sit barely below the
// listing page yet end in a posting-like segment.
func evalAdvisoryStub(c candidate) verdict {
	if !strings.HasSuffix(c.url, "/adv") && !strings.HasSuffix(c.url, "/adv/") {
		return verdictNext
	}
	if len(strings.Split(c.url, "/")) < len(strings.Split(c.source, "/"))+3 {
		return verdictReject
	}
	return verdictNext
}

// evalNegativeKeyword rejects URLs carrying generic non-posting substrings,
// except where a matched vendor detail pattern expects that substring in its
// own paths.
func evalNegativeKeyword(c candidate) verdict {
	workday := isWorkdayJob(c.url)
	taleo := isTaleoOpp(c.url)
	for _, kw := range negativeKeywords {
		if !strings.Contains(c.url, kw) {
			continue
		}
		if workday {
			if _, ok := workdayExceptions[kw]; ok {
				continue
			}
		}
		if taleo {
			if _, ok := taleoExceptions[kw]; ok {
				continue
			}
		}
		return verdictReject
	}
	return verdictNext
}

// evalVendorPattern accepts the two hosted-recruiting detail-page shapes
// verified to be false-positive-free.
func evalVendorPattern(c candidate) verdict {
	if isWorkdayJob(c.url) || isTaleoOpp(c.url) {
		return verdictAccept
	}
	return verdictNext
}

// evalPostingID accepts URLs carrying a job/requisition identifier token or
// a long numeric path segment.
func evalPostingID(c candidate) verdict {
	if postingIDPattern.MatchString(c.url) {
		return verdictAccept
	}
	return verdictNext
}

func isWorkdayJob(lowerURL string) bool {
	return strings.Contains(lowerURL, "myworkdayjobs.com") && strings.Contains(lowerURL, "/job/")
}

func isTaleoOpp(lowerURL string) bool {
	return strings.Contains(lowerURL, ".tal.net") && strings.Contains(lowerURL, "/opp/")
}
