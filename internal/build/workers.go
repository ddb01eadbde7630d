package build

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/dtnitsch/biblesources/internal/common"
	"github.com/dtnitsch/biblesources/models"
	"github.com/dtnitsch/biblesources/pkg/db"
	"github.com/dtnitsch/biblesources/pkg/extractor"
	"github.com/dtnitsch/biblesources/pkg/fetcher"
	"github.com/dtnitsch/biblesources/pkg/manifest"
)

// run fans the sources out to config.WorkerCount workers and returns the results in catalog order.
func run(ctx context.Context, logger *slog.Logger, config *models.FetchConfig, docs DocumentSource, ext *extractor.Extractor, database *db.DB) []Result {
	workerCount := config.WorkerCount
	if workerCount <= 0 {
		workerCount = models.DefaultWorkers
	}

	logger.Info("Starting concurrent extraction phase", "source_count", len(config.Sources), "workers", workerCount)
	var wg sync.WaitGroup
	jobs := make(chan Job, len(config.Sources))
	results := make(chan Result, len(config.Sources))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(ctx, w, logger, docs, ext, database, &wg, jobs, results)
	}

	for i, src := range config.Sources {
		jobs <- Job{Index: i, Source: src}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All extraction workers finished")

	allResults := make([]Result, len(config.Sources))
	for result := range results {
		allResults[result.Index] = result
	}
	return allResults
}

func worker(ctx context.Context, id int, logger *slog.Logger, docs DocumentSource, ext *extractor.Extractor, database *db.DB, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		logger.Info("Worker started job", "worker_id", id, "source", job.Source.Key())
		results <- process(ctx, id, logger, docs, ext, database, job)
	}
}

func process(ctx context.Context, id int, logger *slog.Logger, docs DocumentSource, ext *extractor.Extractor, database *db.DB, job Job) Result {
	src := job.Source
	result := Result{Index: job.Index, Source: src}

	var sourceID int64
	if database != nil {
		var err error
		sourceID, err = database.InsertSource(src)
		if err != nil {
			logger.Warn("Failed to insert source to DB", "source", src.Key(), "error", err)
		}
	}
	recordAccess := func(access db.Access) {
		if database == nil || sourceID == 0 {
			return
		}
		if err := database.RecordAccess(sourceID, access); err != nil {
			logger.Warn("Failed to record access to DB", "source", src.Key(), "error", err)
		}
	}

	doc, cached, err := docs.Fetch(ctx, src)
	switch {
	case errors.Is(err, fetcher.ErrNotAvailable):
		logger.Info("Document not available", "worker_id", id, "source", src.Key())
		result.Status = manifest.StatusNotFound
		recordAccess(db.Access{Status: result.Status, Success: true})
		return result
	case err != nil && doc == "":
		logger.Error("Error fetching document", "worker_id", id, "source", src.Key(), "error", err)
		result.Status = manifest.StatusFailed
		result.Error = err
		result.ErrorType = "fetch_error"
		recordAccess(db.Access{Status: result.Status, ErrorType: result.ErrorType})
		return result
	case err != nil:
		// Fetched but could not be cached.
		logger.Warn("Failed to cache document", "source", src.Key(), "error", err)
	}
	result.Cached = cached

	hash := common.ContentHash([]byte(doc))
	rec, ok := ext.Extract(doc)
	if !ok {
		result.Status = manifest.StatusNotFound
		recordAccess(db.Access{Status: result.Status, ContentHash: hash, Cached: cached, Success: true})
		logger.Info("Worker finished job", "worker_id", id, "source", src.Key(), "status", result.Status)
		return result
	}

	result.Status = manifest.StatusFound
	result.Record = rec
	recordAccess(db.Access{Status: result.Status, ContentHash: hash, Cached: cached, Success: true})

	if database != nil && sourceID > 0 {
		if err := database.UpsertRecord(sourceID, rec); err != nil {
			logger.Error("Failed to store record", "source", src.Key(), "error", err)
			result.Status = manifest.StatusFailed
			result.Error = err
			result.ErrorType = "store_error"
			return result
		}
	}

	logger.Info("Worker finished job", "worker_id", id, "source", src.Key(), "status", result.Status, "cached", cached)
	return result
}
