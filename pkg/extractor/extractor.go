// Package extractor recovers a MetadataRecord from a bible translation details page.
//
// Pages are inconsistent: tables vary, license clauses are free text and translators are
// credited in several phrasings. Extraction is therefore a fixed sequence of checks, each a
// pattern paired with the field it fills, evaluated in priority order:
//
//  1. the not-found marker short-circuits everything;
//  2. a page with fewer than two tables yields an all-empty record;
//  3. labelled rows of the first table fill the descriptive fields;
//  4. whole-page scans fill license, year, date and translator.
package extractor

import (
	"strings"

	"github.com/dtnitsch/biblesources/models"
	"github.com/dtnitsch/biblesources/pkg/license"
)

// DefaultNotFoundMarker is the phrase a details page carries when the resource does not exist.
const DefaultNotFoundMarker = "Resource not found"

// Options tunes an Extractor.
type Options struct {
	NotFoundMarker string
}

// Extractor turns one raw document into a MetadataRecord. It holds no mutable state and is safe
// for concurrent use.
type Extractor struct {
	licenses       license.Table
	notFoundMarker string
}

// New creates an Extractor canonicalizing licenses through the given table.
func New(licenses license.Table, opts Options) *Extractor {
	marker := opts.NotFoundMarker
	if marker == "" {
		marker = DefaultNotFoundMarker
	}
	return &Extractor{
		licenses:       licenses,
		notFoundMarker: marker,
	}
}

// Extract parses doc. It returns false when the document signals the resource is unavailable;
// otherwise the record is present, with unknown fields left empty.
func (e *Extractor) Extract(doc string) (models.MetadataRecord, bool) {
	var rec models.MetadataRecord

	if strings.Contains(doc, e.notFoundMarker) {
		return rec, false
	}

	tables := tables(doc, 2)
	if len(tables) < 2 {
		return rec, true
	}

	for _, cells := range rows(tables[0]) {
		applyRow(&rec, cells)
	}

	raw, phrase := detectLicense(doc)
	rec.LicenseRaw = raw
	rec.LicenseCode = e.licenses.Lookup(phrase)

	rec.Year = firstSubmatch(yearPattern, doc)
	rec.Date = datePattern.FindString(doc)
	rec.TranslatorOrContributor = detectTranslator(doc)

	return rec, true
}
