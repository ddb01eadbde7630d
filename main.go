package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/biblesources/internal/build"
	"github.com/dtnitsch/biblesources/internal/db"
	"github.com/dtnitsch/biblesources/internal/extract"
	"github.com/dtnitsch/biblesources/internal/licenses"
	"github.com/dtnitsch/biblesources/models"
	"github.com/dtnitsch/biblesources/pkg/help"
)

func main() {
	app := &cli.App{
		Name:  "biblesources",
		Usage: "Extract metadata records from bible translation details pages",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "YAML config file (optional)"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Only log errors"},
			&cli.StringFlag{Name: "log-format", Value: "json", Usage: "Log format: json or text"},
			&cli.StringFlag{Name: "db", Usage: "SQLite database path (default: next to the binary)"},
		},
		Commands: []*cli.Command{
			{
				Name:      "build",
				Usage:     "Fetch every listed source, extract records and write the dataset",
				ArgsUsage: "[iso_EXT ...]",
				Action:    build.BuildAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "listing", Usage: "Scripture directory page (file or URL)", Value: models.DefaultListing},
					&cli.StringFlag{Name: "output-dir", Usage: "Directory for sources.csv, sources.bib and the summary", Value: models.DefaultOutputDir},
					&cli.StringFlag{Name: "cache-dir", Usage: "Directory of cached details pages", Value: models.DefaultCacheDir},
					&cli.StringFlag{Name: "languages", Usage: "Language registry (TSV or CSV)"},
					&cli.IntFlag{Name: "workers", Usage: "Number of concurrent workers", Value: models.DefaultWorkers},
					&cli.StringFlag{Name: "max-age", Usage: "Refetch cached pages older than this (0 = never)", Value: "0"},
					&cli.BoolFlag{Name: "offline", Usage: "Only use cached pages"},
					&cli.BoolFlag{Name: "detect-language", Usage: "Detect the language of vernacular titles"},
				},
			},
			{
				Name:      "extract",
				Usage:     "Extract the record from local details pages",
				ArgsUsage: "<file> [file ...]",
				Action:    extract.ExtractAction,
			},
			{
				Name:   "licenses",
				Usage:  "Tally the licenses of stored records",
				Action: licenses.LicensesAction,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "shared", Usage: "Only licenses used by more than one source"},
				},
			},
			{
				Name:   "quickstart",
				Usage:  "Print a YAML quick reference",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
			{
				Name:  "db",
				Usage: "Inspect the database",
				Subcommands: []*cli.Command{
					{
						Name:   "runs",
						Usage:  "List build runs",
						Action: db.RunsAction,
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Value: 20, Usage: "Maximum runs to show (0 = all)"},
						},
					},
					{
						Name:      "run",
						Usage:     "Show one run (default: latest)",
						ArgsUsage: "[run-id]",
						Action:    db.RunAction,
					},
					{
						Name:      "record",
						Usage:     "Show the stored record of a source",
						ArgsUsage: "<iso_EXT>",
						Action:    db.RecordAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		if _, ok := err.(cli.ExitCoder); ok {
			// urfave/cli has already printed the message and exited.
			return
		}
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).Error("command failed", "error", err)
		os.Exit(1)
	}
}
