package build

import (
	"context"

	"github.com/dtnitsch/biblesources/models"
	"github.com/dtnitsch/biblesources/pkg/manifest"
)

// DocumentSource returns the details page of a source and whether it was served from the cache.
type DocumentSource interface {
	Fetch(ctx context.Context, src models.Source) (string, bool, error)
}

// LanguageDetector guesses the language of a vernacular string.
type LanguageDetector interface {
	Detect(text string) (iso string, confidence float64, ok bool)
}

// Job is one source to process. Index is its position in the catalog.
type Job struct {
	Index  int
	Source models.Source
}

// Result holds the outcome of a processed job.
type Result struct {
	Index      int
	Source     models.Source
	Status     string // manifest.StatusFound, StatusNotFound or StatusFailed
	Record     models.MetadataRecord
	Cached     bool
	Unresolved bool
	Error      error
	ErrorType  string
}

// Stats provides summary statistics for the run.
type Stats struct {
	Sources          int      `yaml:"sources"`
	Found            int      `yaml:"found"`
	NotFound         int      `yaml:"not_found"`
	Failed           int      `yaml:"failed"`
	Unresolved       int      `yaml:"unresolved"`
	Rows             int      `yaml:"rows"`
	TotalTimeSeconds float64  `yaml:"total_time_seconds"`
	TopLicenses      []string `yaml:"top_licenses,omitempty"`
}

// Outputs are the files a run wrote.
type Outputs struct {
	CSV      string `yaml:"csv"`
	BibTeX   string `yaml:"bibtex"`
	Manifest string `yaml:"manifest,omitempty"`
}

// FinalOutput is printed to stdout when a run completes.
type FinalOutput struct {
	Status  string  `yaml:"status"`
	RunID   int64   `yaml:"run_id,omitempty"`
	Stats   Stats   `yaml:"stats"`
	Outputs Outputs `yaml:"outputs"`
}

func convertToManifestResults(results []Result) []manifest.SourceResult {
	manifestResults := make([]manifest.SourceResult, len(results))
	for i, r := range results {
		manifestResults[i] = manifest.SourceResult{
			Source:     r.Source,
			Status:     r.Status,
			Record:     r.Record,
			Cached:     r.Cached,
			Unresolved: r.Unresolved,
			Error:      r.Error,
			ErrorType:  r.ErrorType,
		}
	}
	return manifestResults
}
