// Package core coordinates a full discovery run: load history, visit each
// career page, classify every anchor, reconcile and persist.
package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"jobscout/internal/browser"
	"jobscout/internal/config"
	"jobscout/internal/harvest"
	"jobscout/internal/keystore"
	"jobscout/internal/postings"
	"jobscout/internal/reporter"
	"jobscout/internal/requester"
	"jobscout/internal/store"
)

// Orchestrator drives the sequential page-then-link processing order. The
// decision core stays pure; all I/O happens here.
type Orchestrator struct {
	cfg      *config.Settings
	renderer *browser.Service
	client   *requester.HTTPClient
	keys     *keystore.Store
}

// NewOrchestrator creates a new orchestrator instance.
func NewOrchestrator(cfg *config.Settings, keys *keystore.Store) *Orchestrator {
	o := &Orchestrator{
		cfg:  cfg,
		keys: keys,
		client: requester.NewHTTPClient(
			time.Duration(cfg.Crawler.Timeout)*time.Second,
			cfg.Crawler.UserAgents,
			cfg.Crawler.Retries,
		),
	}
	if cfg.Crawler.UseBrowser {
		ua := ""
		if len(cfg.Crawler.UserAgents) > 0 {
			ua = cfg.Crawler.UserAgents[0]
		}
		o.renderer = browser.NewService(browser.Config{
			Headless:  cfg.Crawler.Headless,
			Proxy:     cfg.Crawler.Proxy,
			UserAgent: ua,
		})
	}
	return o
}

// Run executes one discovery session over all configured career pages.
func (o *Orchestrator) Run(ctx context.Context) error {
	startTime := time.Now()

	// Prior results. A load failure means some links may be re-reported,
	// which beats refusing to run.
	historical, err := store.LoadRecords(o.cfg.Output.File, o.cfg.Output.Sheet)
	if err != nil {
		log.Warn().Err(err).Str("path", o.cfg.Output.File).Msg("Could not load prior results, starting with empty history")
		historical = nil
	}
	log.Info().Int("records", len(historical)).Msg("Loaded prior results")

	pipeline := postings.NewPipeline(
		postings.NewClassifier(),
		postings.NewLocationFilter(o.cfg.Filter.AllowedLocations, o.cfg.Filter.DisallowedLocations),
		postings.NewKeyExtractor(o.cfg.Keys.Markers),
	)
	pipeline.SeedHistoryFromRecords(historical)

	if o.keys.Enabled() {
		mirrored, err := o.keys.HistoricalKeys(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("Could not load keys from Redis, relying on workbook history")
		} else {
			pipeline.SeedHistory(mirrored)
			log.Info().Int("keys", len(mirrored)).Msg("Merged mirrored keys from Redis")
		}
	}

	targets, err := store.LoadTargets(o.cfg.Input.File, o.cfg.Input.Sheet, o.cfg.Input.Column)
	if err != nil {
		return fmt.Errorf("failed to load target pages: %w", err)
	}
	log.Info().Int("targets", len(targets)).Msg("Loaded target pages")

	summary := reporter.RunSummary{StartTime: startTime}
	rejections := make(map[string]int)

	for i, target := range targets {
		if err := ctx.Err(); err != nil {
			log.Warn().Err(err).Msg("Run canceled, keeping records accepted so far")
			break
		}

		log.Info().Str("url", target).Msg("Processing page")
		html, err := o.fetchPage(ctx, target)
		if err != nil {
			// A single broken page must not lose records accepted
			// from the others.
			log.Warn().Err(err).Str("url", target).Msg("Error fetching page, skipping")
			summary.PagesFailed++
			continue
		}

		links, err := harvest.Links(target, strings.NewReader(html))
		if err != nil {
			log.Warn().Err(err).Str("url", target).Msg("Error parsing page, skipping")
			summary.PagesFailed++
			continue
		}
		summary.PagesProcessed++

		newOnPage := 0
		for _, link := range links {
			summary.LinksSeen++
			outcome := pipeline.Classify(link)
			if outcome.Accepted {
				newOnPage++
				log.Info().Str("url", outcome.Record.URL).Str("key", outcome.Record.Key).Msg("New posting")
				continue
			}
			rejections[string(outcome.Reason)]++
			log.Debug().Str("href", link.Href).Str("reason", string(outcome.Reason)).Msg("Link rejected")
		}
		log.Info().Int("links", len(links)).Int("new", newOnPage).Str("url", target).Msg("Page done")

		if i < len(targets)-1 && o.cfg.Crawler.SleepBetween > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(time.Duration(o.cfg.Crawler.SleepBetween) * time.Second):
			}
		}
	}

	final := pipeline.Finalize(historical)
	if err := store.SaveRecords(o.cfg.Output.File, o.cfg.Output.Sheet, final); err != nil {
		for _, rec := range pipeline.Accepted() {
			log.Error().Str("url", rec.URL).Str("key", rec.Key).Msg("Unsaved new posting")
		}
		return fmt.Errorf("failed to save results: %w", err)
	}

	o.keys.Persist(ctx, pipeline.NewKeys())

	accepted := pipeline.Accepted()
	summary.EndTime = time.Now()
	summary.TotalDuration = summary.EndTime.Sub(summary.StartTime).String()
	summary.NewPostings = len(accepted)
	summary.TotalPostings = len(final)

	if o.cfg.Output.ReportFile != "" {
		exporter, err := reporter.NewJSONExporter(o.cfg.Output.ReportFile)
		if err != nil {
			log.Error().Err(err).Msg("Failed to create report exporter")
		} else if err := exporter.Export(reporter.Report{
			Summary:    summary,
			Rejections: rejections,
			NewLinks:   accepted,
		}); err != nil {
			log.Error().Err(err).Msg("Failed to save run report")
		}
	}

	log.Info().
		Int("new", summary.NewPostings).
		Int("total", summary.TotalPostings).
		Str("duration", summary.TotalDuration).
		Msg("Run finished")
	return nil
}

// fetchPage retrieves the final markup of a career page, through the
// renderer when enabled, otherwise over plain HTTP.
func (o *Orchestrator) fetchPage(ctx context.Context, pageURL string) (string, error) {
	if o.renderer != nil {
		return o.renderer.RenderHTML(ctx, pageURL,
			time.Duration(o.cfg.Crawler.RenderWait)*time.Second,
			time.Duration(o.cfg.Crawler.Timeout)*time.Second,
		)
	}
	return o.client.Fetch(ctx, pageURL)
}

// Close releases the renderer, if one was started.
func (o *Orchestrator) Close() {
	if o.renderer != nil {
		o.renderer.Close()
	}
}
