// Package store persists target pages and discovered postings in Excel
// workbooks. URL strings are written and read back verbatim; the
// deduplication key never reaches disk.
package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"jobscout/internal/models"
)

// Column headers in the results workbook.
const (
	jobLinkHeader = "JobLink"
	dateHeader    = "DateFound"

	dateFormat = "2006-01-02 15:04:05"
)

// LoadTargets reads the career page URLs to visit. column is either a
// single letter ("A") addressing the column positionally, or a header name
// matched against the first row. Blank cells and values without an
// http(s) scheme are skipped.
func LoadTargets(path, sheet, column string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open targets workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	colIdx, skipHeader, err := resolveColumn(rows, column)
	if err != nil {
		return nil, err
	}

	var targets []string
	for i, row := range rows {
		if skipHeader && i == 0 {
			continue
		}
		if colIdx >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[colIdx])
		if cell == "" {
			continue
		}
		if !strings.HasPrefix(cell, "http://") && !strings.HasPrefix(cell, "https://") {
			log.Warn().Str("value", cell).Msg("Skipping target without http(s) scheme")
			continue
		}
		targets = append(targets, cell)
	}

	return targets, nil
}

func resolveColumn(rows [][]string, column string) (idx int, skipHeader bool, err error) {
	column = strings.TrimSpace(column)
	if len(column) == 1 && column[0] >= 'A' && column[0] <= 'Z' {
		return int(column[0] - 'A'), false, nil
	}
	if len(rows) == 0 {
		return 0, false, fmt.Errorf("header %q not found in empty sheet", column)
	}
	for i, header := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(header), column) {
			return i, true, nil
		}
	}
	return 0, false, fmt.Errorf("header %q not found", column)
}

// LoadRecords reads the previously persisted postings. The sheet must carry
// JobLink and DateFound headers; unparseable dates are kept with a zero
// first-seen time rather than dropping the record.
func LoadRecords(path, sheet string) ([]models.JobRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open results workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	linkIdx, dateIdx := -1, -1
	for i, header := range rows[0] {
		switch strings.TrimSpace(header) {
		case jobLinkHeader:
			linkIdx = i
		case dateHeader:
			dateIdx = i
		}
	}
	if linkIdx < 0 {
		return nil, fmt.Errorf("column %q not found in %s", jobLinkHeader, path)
	}

	var records []models.JobRecord
	for _, row := range rows[1:] {
		if linkIdx >= len(row) {
			continue
		}
		link := strings.TrimSpace(row[linkIdx])
		if link == "" {
			continue
		}
		rec := models.JobRecord{URL: link}
		if dateIdx >= 0 && dateIdx < len(row) {
			if ts, err := time.ParseInLocation(dateFormat, strings.TrimSpace(row[dateIdx]), time.Local); err == nil {
				rec.FirstSeen = ts
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

// SaveRecords writes the reconciled record set, projected to JobLink and
// DateFound, replacing any existing workbook at path.
func SaveRecords(path, sheet string, records []models.JobRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("failed to name sheet %q: %w", sheet, err)
		}
	}

	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{jobLinkHeader, dateHeader}); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{rec.URL, rec.FirstSeen.Format(dateFormat)}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save results workbook: %w", err)
	}

	log.Info().Str("path", path).Int("records", len(records)).Msg("Results workbook saved")
	return nil
}
