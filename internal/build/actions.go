package build

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/biblesources/internal/common"
	"github.com/dtnitsch/biblesources/internal/licenses"
	"github.com/dtnitsch/biblesources/models"
	"github.com/dtnitsch/biblesources/pkg/caching"
	"github.com/dtnitsch/biblesources/pkg/catalog"
	"github.com/dtnitsch/biblesources/pkg/db"
	"github.com/dtnitsch/biblesources/pkg/extractor"
	"github.com/dtnitsch/biblesources/pkg/fetcher"
	"github.com/dtnitsch/biblesources/pkg/langdetect"
	"github.com/dtnitsch/biblesources/pkg/license"
	"github.com/dtnitsch/biblesources/pkg/registry"
	"github.com/dtnitsch/biblesources/pkg/storage"
)

// BuildAction fetches every listed details page, extracts its record and writes the dataset.
// Source keys given as arguments replace the listing.
func BuildAction(c *cli.Context) error {
	config, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	logger := common.NewLogger(c.Bool("quiet"), c.String("log-format"))
	ctx := c.Context

	database, err := db.Open(config.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	st, err := storage.New(config.OutputDir)
	if err != nil {
		return err
	}

	f := fetcher.NewFetcher(fetcher.Options{
		DetailsURL:    config.DetailsURL,
		RetryAttempts: config.RetryAttempts,
		RetryDelay:    config.RetryDelay,
	})
	cache, err := caching.NewCache(config.CacheDir, config.MaxAge)
	if err != nil {
		return err
	}

	fetchConfig := &models.FetchConfig{WorkerCount: config.Workers}
	if c.NArg() > 0 {
		for _, arg := range c.Args().Slice() {
			src, err := models.ParseSourceKey(common.SanitizeSourceKey(arg))
			if err != nil {
				return err
			}
			fetchConfig.Sources = append(fetchConfig.Sources, src)
		}
	} else {
		var getter catalog.Getter = f
		if config.Offline {
			getter = nil
		}
		fetchConfig.Sources, err = catalog.Load(ctx, config.Listing, getter)
		if err != nil {
			return err
		}
	}
	if len(fetchConfig.Sources) == 0 {
		return cli.Exit("no sources found in listing "+config.Listing, 1)
	}
	logger.Info("Sources loaded", "source_count", len(fetchConfig.Sources), "offline", config.Offline, "max_age", config.MaxAge)

	p := &Pipeline{
		Logger:      logger,
		Docs:        caching.NewSource(cache, f, config.Offline),
		Extractor:   extractor.New(license.Default().Extend(config.Licenses), extractor.Options{NotFoundMarker: config.NotFoundMarker}),
		Database:    database,
		Storage:     st,
		DocumentURL: f.DocumentURL,
	}
	if config.Languages != "" {
		reg, err := registry.Load(config.Languages)
		if err != nil {
			return err
		}
		logger.Info("Language registry loaded", "path", config.Languages, "languages", reg.Len())
		p.Resolver = reg
	}
	if config.DetectLanguage {
		p.Detector = newDetector(logger, config.DetectLanguages)
	}

	report, err := p.Run(ctx, fetchConfig)
	if err != nil {
		return err
	}

	outputData, err := yaml.Marshal(report.Output)
	if err != nil {
		return fmt.Errorf("error marshalling output: %w", err)
	}
	fmt.Print(string(outputData))

	if len(report.Shared) > 0 {
		licenses.RenderTable(os.Stdout, "Licenses used by more than one source", report.Shared)
	}

	if failed := report.Output.Stats.Failed; failed > 0 {
		return cli.Exit(fmt.Sprintf("%d source(s) failed", failed), 1)
	}
	return nil
}

// newDetector builds the title language detector. lingua needs at least two languages to narrow
// detection, so a shorter list falls back to every language.
func newDetector(logger *slog.Logger, codes []string) *langdetect.Detector {
	langs := langdetect.ParseLanguages(codes)
	if len(codes) > 0 && len(langs) < 2 {
		logger.Warn("detect_languages needs at least two known languages, detecting across all languages",
			"configured", codes, "known", len(langs))
		langs = nil
	}
	return langdetect.New(langs...)
}
