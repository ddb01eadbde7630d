package dataset

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/dtnitsch/biblesources/models"
)

// Columns is the CSV header, in output order.
var Columns = []string{
	"ID", "Name", "Glottocode", "Family", "ISO639P3code", "Extension",
	"Latitude", "Longitude", "Macroarea", "HasVariant", "URL",
	"Language", "LanguageInSourceLanguage", "Dialect",
	"Title", "TitleInSourceLanguage", "Abbreviation",
	"CopyrightNotice", "Translator", "LicenseRaw", "License",
	"Year", "Date", "DetectedLanguage",
}

func csvRecord(row models.Row) []string {
	hasVariant := ""
	if row.HasVariant {
		hasVariant = "1"
	}
	rec := row.Record
	return []string{
		row.ID, row.Language.Name, row.Language.Glottocode, row.Language.Family,
		row.Source.ISO, row.Source.Extension,
		row.Language.Latitude, row.Language.Longitude, row.Language.Macroarea,
		hasVariant, row.URL,
		rec.Language, rec.LanguageInSourceLanguage, rec.Dialect,
		rec.Title, rec.TitleInSourceLanguage, rec.Abbreviation,
		rec.CopyrightNotice, rec.TranslatorOrContributor, rec.LicenseRaw, rec.LicenseCode,
		rec.Year, rec.Date, row.DetectedLanguage,
	}
}

// WriteCSV writes the header and one line per row.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range t.rows {
		if err := cw.Write(csvRecord(row)); err != nil {
			return fmt.Errorf("failed to write CSV row %s: %w", row.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
