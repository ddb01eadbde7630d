package licenses

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/biblesources/internal/common"
	"github.com/dtnitsch/biblesources/pkg/db"
	"github.com/dtnitsch/biblesources/pkg/mapreduce"
)

// LicensesAction tallies the licenses of every stored record.
func LicensesAction(c *cli.Context) error {
	config, err := common.LoadConfig(c)
	if err != nil {
		return err
	}

	database, err := db.Open(config.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	records, err := database.ListRecords()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No records found. Run 'biblesources build' first")
		return nil
	}

	intermediate := make([]map[string]int, 0, len(records))
	for _, r := range records {
		intermediate = append(intermediate, mapreduce.Map(r.Record))
	}
	counts := mapreduce.Reduce(intermediate)

	tally := mapreduce.Sorted(counts)
	title := "Licenses"
	if c.Bool("shared") {
		tally = mapreduce.Shared(counts)
		title = "Licenses used by more than one source"
	}

	RenderTable(os.Stdout, title, tally)
	return nil
}

// RenderTable prints a license tally.
func RenderTable(w io.Writer, title string, tally []mapreduce.Count) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.SetTitle("%s", title)
	t.AppendHeader(table.Row{"#", "License", "Sources"})

	total := 0
	for i, c := range tally {
		t.AppendRow(table.Row{i + 1, c.License, c.Sources})
		total += c.Sources
	}

	t.AppendFooter(table.Row{"", "Total", total})
	t.Render()
}
