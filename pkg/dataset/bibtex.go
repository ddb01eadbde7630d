package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Publisher is the howpublished value of every citation.
const Publisher = "eBible.org"

var bibtexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
)

// WriteBibTeX writes one @misc entry per row, keyed by the row ID. Empty fields are left out.
func (t *Table) WriteBibTeX(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, row := range t.rows {
		if i > 0 {
			bw.WriteString("\n")
		}

		rec := row.Record
		title := rec.Title
		if title == "" {
			title = "Bible translation " + row.Source.ID()
		}
		fields := [][2]string{
			{"title", title},
			{"author", rec.TranslatorOrContributor},
			{"year", rec.Year},
			{"date", rec.Date},
			{"note", rec.CopyrightNotice},
			{"howpublished", Publisher},
			{"url", row.URL},
			{"language", row.Language.Name},
			{"keywords", rec.LicenseCode},
		}

		fmt.Fprintf(bw, "@misc{%s", row.ID)
		for _, f := range fields {
			if f[1] == "" {
				continue
			}
			value := f[1]
			if f[0] != "url" {
				value = bibtexEscaper.Replace(value)
			}
			fmt.Fprintf(bw, ",\n  %s = {%s}", f[0], value)
		}
		bw.WriteString("\n}\n")
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write BibTeX: %w", err)
	}
	return nil
}
