// Package reporter writes the end-of-run summary so rejection statistics
// stay observable alongside the results workbook.
package reporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"jobscout/internal/models"
)

// RunSummary provides a high-level overview of a discovery run.
type RunSummary struct {
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	TotalDuration  string    `json:"total_duration"`
	PagesProcessed int       `json:"pages_processed"`
	PagesFailed    int       `json:"pages_failed"`
	LinksSeen      int       `json:"links_seen"`
	NewPostings    int       `json:"new_postings"`
	TotalPostings  int       `json:"total_postings"`
}

// Report is the top-level structure for the final JSON report.
type Report struct {
	Summary    RunSummary         `json:"summary"`
	Rejections map[string]int     `json:"rejections"`
	NewLinks   []models.JobRecord `json:"new_links"`
}

// JSONExporter handles the creation of the JSON report file.
type JSONExporter struct {
	OutputPath string
}

// NewJSONExporter creates a new exporter that will write to the specified path.
func NewJSONExporter(outputPath string) (*JSONExporter, error) {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &JSONExporter{OutputPath: outputPath}, nil
}

// Export generates and saves the JSON report.
func (e *JSONExporter) Export(report Report) error {
	file, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}

	if err := os.WriteFile(e.OutputPath, file, 0644); err != nil {
		return fmt.Errorf("failed to write JSON report to file: %w", err)
	}

	log.Info().Str("path", e.OutputPath).Msg("Run report saved")
	return nil
}
