package extractor

import (
	"regexp"
	"strings"

	"github.com/dtnitsch/biblesources/models"
	"github.com/dtnitsch/biblesources/pkg/license"
)

// rowRule fills record fields from a table row whose first cell starts with label.
type rowRule struct {
	label string
	apply func(rec *models.MetadataRecord, cells []string)
}

// rowRules are tried in order against the first cell of every row with two or more cells.
var rowRules = []rowRule{
	{"Language:", func(rec *models.MetadataRecord, cells []string) {
		rec.Language = cells[1]
		rec.LanguageInSourceLanguage = cellAt(cells, 2)
	}},
	{"Dialect:", func(rec *models.MetadataRecord, cells []string) {
		rec.Dialect = cells[1]
	}},
	{"Title:", func(rec *models.MetadataRecord, cells []string) {
		rec.Title = cells[1]
		rec.TitleInSourceLanguage = cellAt(cells, 2)
	}},
	// The abbreviation is read from the third cell, not the second as for the rows above.
	// Whether the source pages really put it there is unconfirmed; see TestAbbreviationUsesThirdCell.
	{"Abbreviation:", func(rec *models.MetadataRecord, cells []string) {
		rec.Abbreviation = cellAt(cells, 2)
	}},
}

func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

// applyRow routes one table row. A single cell is the copyright notice.
func applyRow(rec *models.MetadataRecord, cells []string) {
	switch {
	case len(cells) == 1:
		rec.CopyrightNotice = cells[0]
	case len(cells) >= 2:
		for _, rule := range rowRules {
			if strings.HasPrefix(cells[0], rule.label) {
				rule.apply(rec, cells)
				return
			}
		}
	}
}

// licenseRule applies when marker occurs anywhere in the document and yields the raw text as
// found plus the phrase looked up in the license table.
type licenseRule struct {
	marker *regexp.Regexp
	phrase func(doc, found string) (raw, phrase string)
}

var (
	linkedCreativeCommons = regexp.MustCompile(`(Creative Commons [^<]*)</a>`)
	looseCreativeCommons  = regexp.MustCompile(`(Creative Commons .*)`)
)

// licenseRules are evaluated in order; the first rule whose marker is present decides, even
// when it captures nothing.
var licenseRules = []licenseRule{
	{regexp.MustCompile(`(?i)creative commons`), creativeCommons},
	{regexp.MustCompile(`(?i)all rights reserved`), fixedPhrase(license.PhraseRestricted)},
	{regexp.MustCompile(`(?i)public domain`), fixedPhrase(license.PhrasePublicDomain)},
}

func creativeCommons(doc, _ string) (string, string) {
	for _, re := range []*regexp.Regexp{linkedCreativeCommons, looseCreativeCommons} {
		if text := firstSubmatch(re, doc); text != "" {
			return text, text
		}
	}
	return "", ""
}

func fixedPhrase(phrase string) func(doc, found string) (string, string) {
	return func(_, found string) (string, string) {
		return found, phrase
	}
}

func detectLicense(doc string) (raw, phrase string) {
	for _, rule := range licenseRules {
		found := rule.marker.FindString(doc)
		if found == "" {
			continue
		}
		return rule.phrase(doc, found)
	}
	return "", ""
}

var (
	yearPattern = regexp.MustCompile(`(?:©|&copy;|&#169;).*?([0-9]{4})`)
	datePattern = regexp.MustCompile(`[0-9]{4}-[0-9]{2}-[0-9]{2}`)
)

// attributionRule captures the translator once marker is present in the document.
type attributionRule struct {
	marker  *regexp.Regexp
	capture *regexp.Regexp
}

// attributionRules: only the first rule whose marker is present is consulted. A failed capture
// leaves the translator empty rather than falling through to the next rule.
var attributionRules = []attributionRule{
	{regexp.MustCompile(`(?i)translation by`), regexp.MustCompile(`Translation by:([^<]*)`)},
	{regexp.MustCompile(`(?i)contributor`), regexp.MustCompile(`Contributor:([^<]*)`)},
}

func detectTranslator(doc string) string {
	for _, rule := range attributionRules {
		if rule.marker.MatchString(doc) {
			return firstSubmatch(rule.capture, doc)
		}
	}
	return ""
}
