package manifest

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dtnitsch/biblesources/models"
	"github.com/dtnitsch/biblesources/pkg/mapreduce"
	"github.com/dtnitsch/biblesources/pkg/storage"
)

// SourceResult is the outcome of processing one source.
// It is passed in by the pipeline to avoid an import cycle.
type SourceResult struct {
	Source     models.Source
	Status     string
	Record     models.MetadataRecord
	Cached     bool
	Unresolved bool
	Error      error
	ErrorType  string
}

// GenerateSummary writes summary-<date>.json into s and returns its path.
func GenerateSummary(runID int64, results []SourceResult, licenseCounts map[string]int, s *storage.Storage) (string, error) {
	manifest := Build(runID, results, licenseCounts, time.Now())

	manifestData, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshalling manifest: %w", err)
	}

	name := fmt.Sprintf("summary-%s.json", time.Now().Format("2006-01-02"))
	path, err := s.SaveFile(name, manifestData)
	if err != nil {
		return "", fmt.Errorf("error saving manifest: %w", err)
	}

	return path, nil
}

// Build aggregates results into a manifest.
func Build(runID int64, results []SourceResult, licenseCounts map[string]int, now time.Time) SummaryManifest {
	manifest := SummaryManifest{
		GeneratedAt: now.Format(time.RFC3339),
		RunID:       runID,
		TopLicenses: mapreduce.TopLicenses(licenseCounts, 25),
		Results:     make([]SourceSummary, 0, len(results)),
	}
	manifest.Totals.Sources = len(results)

	for _, result := range results {
		summary := SourceSummary{
			Source: result.Source.Key(),
			Status: result.Status,
		}

		switch result.Status {
		case StatusFound:
			manifest.Totals.Found++
			summary.License = result.Record.LicenseKey()
			summary.Language = result.Record.Language
		case StatusNotFound:
			manifest.Totals.NotFound++
		default:
			manifest.Totals.Failed++
			summary.ErrorType = result.ErrorType
			if result.Error != nil {
				summary.ErrorMessage = result.Error.Error()
			}
		}

		if result.Unresolved {
			manifest.Totals.Unresolved++
			summary.Unresolved = true
		}
		if result.Cached {
			manifest.Totals.Cached++
		}

		manifest.Results = append(manifest.Results, summary)
	}

	return manifest
}
