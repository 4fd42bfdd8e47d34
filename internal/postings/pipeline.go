package postings

import (
	"time"

	"jobscout/internal/models"
)

// Reason identifies why a link was rejected by the pipeline.
type Reason string

const (
	ReasonNotNavigable        Reason = "not-navigable"
	ReasonSelfLink            Reason = "self-link"
	ReasonNotPostingShaped    Reason = "not-posting-shaped"
	ReasonDisallowedLocation  Reason = "disallowed-location"
	ReasonNoKey               Reason = "no-key"
	ReasonDuplicateSession    Reason = "duplicate-session"
	ReasonDuplicateHistorical Reason = "duplicate-historical"
)

// Outcome is the result of classifying a single raw link.
type Outcome struct {
	Accepted bool
	Record   models.JobRecord
	Reason   Reason
}

// Pipeline folds raw links into accepted job records, gating admission on
// the session key set (same posting linked from two pages in one run) and
// the historical key set (posting discovered in an earlier run). State is
// held explicitly here, not in globals, and is mutated only by Classify in
// page-then-link order.
type Pipeline struct {
	classifier *Classifier
	filter     *LocationFilter
	keys       *KeyExtractor

	session  map[string]struct{}
	history  map[string]struct{}
	accepted []models.JobRecord
	newKeys  []string

	now func() time.Time
}

// NewPipeline assembles the decision core.
func NewPipeline(classifier *Classifier, filter *LocationFilter, keys *KeyExtractor) *Pipeline {
	return &Pipeline{
		classifier: classifier,
		filter:     filter,
		keys:       keys,
		session:    make(map[string]struct{}),
		history:    make(map[string]struct{}),
		now:        time.Now,
	}
}

// SeedHistory loads previously known keys before processing begins.
func (p *Pipeline) SeedHistory(keys []string) {
	for _, k := range keys {
		if k == "" {
			continue
		}
		p.history[k] = struct{}{}
	}
}

// SeedHistoryFromRecords recomputes keys from persisted records. Keys are
// never persisted directly; the URL is the durable form.
func (p *Pipeline) SeedHistoryFromRecords(records []models.JobRecord) {
	for _, rec := range records {
		if key, ok := p.keys.Extract(rec.URL); ok {
			p.history[key] = struct{}{}
		}
	}
}

// Classify is the single entry point per link. Each link is fully resolved
// to accept-or-reject before the next is considered.
func (p *Pipeline) Classify(link models.RawLink) Outcome {
	normalized, ok := Normalize(link.Href, link.SourcePage)
	if !ok {
		return Outcome{Reason: ReasonNotNavigable}
	}

	if ok, rule := p.classifier.Check(normalized, link.SourcePage); !ok {
		if rule == ruleSelfLink {
			return Outcome{Reason: ReasonSelfLink}
		}
		return Outcome{Reason: ReasonNotPostingShaped}
	}

	if p.filter.IsDisallowed(normalized, link.AnchorText) {
		return Outcome{Reason: ReasonDisallowedLocation}
	}

	key, ok := p.keys.Extract(normalized)
	if !ok {
		return Outcome{Reason: ReasonNoKey}
	}

	if _, dup := p.session[key]; dup {
		return Outcome{Reason: ReasonDuplicateSession}
	}
	if _, dup := p.history[key]; dup {
		return Outcome{Reason: ReasonDuplicateHistorical}
	}

	rec := models.JobRecord{URL: normalized, FirstSeen: p.now(), Key: key}
	p.session[key] = struct{}{}
	p.history[key] = struct{}{}
	p.accepted = append(p.accepted, rec)
	p.newKeys = append(p.newKeys, key)

	return Outcome{Accepted: true, Record: rec}
}

// Accepted returns the records admitted during this run, in discovery order.
func (p *Pipeline) Accepted() []models.JobRecord {
	out := make([]models.JobRecord, len(p.accepted))
	copy(out, p.accepted)
	return out
}

// NewKeys returns the keys admitted during this run, in discovery order.
func (p *Pipeline) NewKeys() []string {
	out := make([]string, len(p.newKeys))
	copy(out, p.newKeys)
	return out
}

// Finalize reconciles the full historical record collection with the records
// accepted this run: historical records first, then new ones; records whose
// URL yields no key are dropped; the first occurrence per key wins, so
// historical first-seen dates are preserved on repeat keys.
func (p *Pipeline) Finalize(historical []models.JobRecord) []models.JobRecord {
	combined := make([]models.JobRecord, 0, len(historical)+len(p.accepted))
	combined = append(combined, historical...)
	combined = append(combined, p.accepted...)

	seen := make(map[string]struct{}, len(combined))
	out := make([]models.JobRecord, 0, len(combined))
	for _, rec := range combined {
		key := rec.Key
		if key == "" {
			k, ok := p.keys.Extract(rec.URL)
			if !ok {
				continue
			}
			key = k
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		rec.Key = key
		out = append(out, rec)
	}
	return out
}
