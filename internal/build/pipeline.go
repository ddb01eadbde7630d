package build

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dtnitsch/biblesources/models"
	"github.com/dtnitsch/biblesources/pkg/dataset"
	"github.com/dtnitsch/biblesources/pkg/db"
	"github.com/dtnitsch/biblesources/pkg/extractor"
	"github.com/dtnitsch/biblesources/pkg/manifest"
	"github.com/dtnitsch/biblesources/pkg/mapreduce"
	"github.com/dtnitsch/biblesources/pkg/registry"
	"github.com/dtnitsch/biblesources/pkg/storage"
)

const (
	CSVFile    = "sources.csv"
	BibTeXFile = "sources.bib"
)

// Pipeline holds everything one build run needs. Database, Resolver and Detector are optional.
type Pipeline struct {
	Logger    *slog.Logger
	Docs      DocumentSource
	Extractor *extractor.Extractor
	Database  *db.DB
	Storage   *storage.Storage
	Resolver  registry.Resolver
	Detector  LanguageDetector

	// DocumentURL turns a source ID into the URL recorded in the dataset.
	DocumentURL func(id string) string
}

// Report is what a finished run produced.
type Report struct {
	Output  FinalOutput
	Results []Result
	Shared  []mapreduce.Count
}

// Run processes the sources and writes the dataset, bibliography and manifest.
func (p *Pipeline) Run(ctx context.Context, config *models.FetchConfig) (*Report, error) {
	startTime := time.Now()
	logger := p.Logger

	var runID int64
	if p.Database != nil {
		var err error
		runID, err = p.Database.CreateRun(p.Storage.BaseDir)
		if err != nil {
			logger.Warn("Failed to create run in DB", "error", err)
		}
	}

	results := run(ctx, logger, config, p.Docs, p.Extractor, p.Database)

	logger.Info("Starting MapReduce phase")
	table := dataset.NewTable()
	var intermediate []map[string]int
	for i := range results {
		result := &results[i]
		if result.Status != manifest.StatusFound {
			continue
		}
		intermediate = append(intermediate, mapreduce.Map(result.Record))

		lang, ok := p.resolve(result.Source, result.Record)
		if !ok {
			logger.Warn("Language not in registry", "source", result.Source.Key(), "iso", result.Source.ISO)
			result.Unresolved = true
			continue
		}

		row := models.Row{
			Source:   result.Source,
			Language: lang,
			Record:   result.Record,
		}
		if p.DocumentURL != nil {
			row.URL = p.DocumentURL(result.Source.ID())
		}
		row.DetectedLanguage = p.detect(result.Record)

		if !table.Add(row) {
			logger.Warn("Duplicate source skipped", "source", result.Source.Key())
		}
	}
	licenseCounts := mapreduce.Reduce(intermediate)

	stats := Stats{Sources: len(results), Rows: table.Len(), TopLicenses: mapreduce.TopLicenses(licenseCounts, 10)}
	for _, r := range results {
		switch r.Status {
		case manifest.StatusFound:
			stats.Found++
		case manifest.StatusNotFound:
			stats.NotFound++
		default:
			stats.Failed++
		}
		if r.Unresolved {
			stats.Unresolved++
		}
	}

	outputs := Outputs{}
	var err error
	if outputs.CSV, err = p.write(CSVFile, table.WriteCSV); err != nil {
		return nil, err
	}
	if outputs.BibTeX, err = p.write(BibTeXFile, table.WriteBibTeX); err != nil {
		return nil, err
	}

	outputs.Manifest, err = manifest.GenerateSummary(runID, convertToManifestResults(results), licenseCounts, p.Storage)
	if err != nil {
		logger.Warn("Error generating summary manifest", "error", err)
	}

	if p.Database != nil && runID > 0 {
		runStats := db.RunStats{Sources: stats.Sources, Found: stats.Found, NotFound: stats.NotFound, Failed: stats.Failed}
		if err := p.Database.UpdateRunStats(runID, runStats); err != nil {
			logger.Warn("Failed to update run stats in DB", "error", err)
		}
	}

	stats.TotalTimeSeconds = time.Since(startTime).Seconds()
	status := "success"
	if stats.Failed > 0 {
		status = "partial_failure"
	}

	return &Report{
		Output: FinalOutput{
			Status:  status,
			RunID:   runID,
			Stats:   stats,
			Outputs: outputs,
		},
		Results: results,
		Shared:  mapreduce.Shared(licenseCounts),
	}, nil
}

// resolve looks the source language up in the registry. Without a registry the record's own
// language name is used.
func (p *Pipeline) resolve(src models.Source, rec models.MetadataRecord) (models.Language, bool) {
	if p.Resolver == nil {
		return models.Language{ISO: src.ISO, Name: rec.Language}, true
	}
	return p.Resolver.Resolve(src.ISO)
}

func (p *Pipeline) detect(rec models.MetadataRecord) string {
	if p.Detector == nil {
		return ""
	}
	text := rec.TitleInSourceLanguage
	if text == "" {
		text = rec.LanguageInSourceLanguage
	}
	iso, _, ok := p.Detector.Detect(text)
	if !ok {
		return ""
	}
	return iso
}

func (p *Pipeline) write(name string, fn func(io.Writer) error) (string, error) {
	f, err := p.Storage.Create(name)
	if err != nil {
		return "", err
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", name, err)
	}
	return f.Name(), nil
}
