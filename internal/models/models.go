// Package models contains the data structures used across the application.
package models

import "time"

// RawLink is a single anchor encountered on a career page, before any
// normalization or classification.
type RawLink struct {
	Href       string `json:"href"`
	AnchorText string `json:"anchor_text"`
	SourcePage string `json:"source_page"`
}

// JobRecord is an accepted job posting. URL is the normalized link, Key the
// deduplication identity. Key is internal and never written to the results
// workbook.
type JobRecord struct {
	URL       string    `json:"url"`
	FirstSeen time.Time `json:"first_seen"`
	Key       string    `json:"-"`
}
