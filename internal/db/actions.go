package db

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/biblesources/internal/common"
	"github.com/dtnitsch/biblesources/models"
	dbpkg "github.com/dtnitsch/biblesources/pkg/db"
)

func openDatabase(c *cli.Context) (*dbpkg.DB, error) {
	config, err := common.LoadConfig(c)
	if err != nil {
		return nil, err
	}
	database, err := dbpkg.Open(config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

// RunsAction lists recent build runs.
func RunsAction(c *cli.Context) error {
	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"ID", "Created", "Sources", "Found", "Not Found", "Failed", "Output Dir"})
	for _, r := range runs {
		t.AppendRow(table.Row{
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.SourceCount,
			r.FoundCount,
			r.NotFoundCount,
			r.FailedCount,
			r.OutputDir,
		})
	}
	t.AppendFooter(table.Row{"Total", len(runs)})
	t.Render()

	fmt.Printf("\nTip: Use 'biblesources db record <iso_EXT>' to see a stored record\n")
	return nil
}

// recordOutput is the YAML shape of a stored record.
type recordOutput struct {
	Source    string                `yaml:"source"`
	UpdatedAt string                `yaml:"updated_at"`
	Record    models.MetadataRecord `yaml:"record"`
}

// RecordAction prints the stored record of a source as YAML.
func RecordAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("Error: No source provided\n\nUsage:\n  biblesources db record eng_webp", 1)
	}

	src, err := models.ParseSourceKey(common.SanitizeSourceKey(c.Args().First()))
	if err != nil {
		return err
	}

	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	stored, err := database.GetRecord(src)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(recordOutput{
		Source:    stored.Source.Key(),
		UpdatedAt: stored.UpdatedAt.Format("2006-01-02 15:04:05"),
		Record:    stored.Record,
	})
	if err != nil {
		return fmt.Errorf("error marshalling record: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

// RunAction shows one run; without an argument, the latest.
func RunAction(c *cli.Context) error {
	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRunByID(runID)
	if err != nil {
		return err
	}

	fmt.Printf("Run %d\n", run.RunID)
	fmt.Printf("Created:     %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Output:      %s\n", run.OutputDir)
	fmt.Printf("Sources:     %d total (%d found, %d not found, %d failed)\n",
		run.SourceCount, run.FoundCount, run.NotFoundCount, run.FailedCount)
	return nil
}

// GetRunIDOrLatest returns the run ID from args, or the latest run if not provided
func GetRunIDOrLatest(c *cli.Context, database *dbpkg.DB) (int64, error) {
	if c.NArg() == 0 {
		runs, err := database.ListRuns(1)
		if err != nil {
			return 0, fmt.Errorf("failed to get latest run: %w", err)
		}
		if len(runs) == 0 {
			return 0, fmt.Errorf("no runs found. Run 'biblesources build' first")
		}
		return runs[0].RunID, nil
	}

	runID, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid run ID: %s", c.Args().First())
	}
	return runID, nil
}
