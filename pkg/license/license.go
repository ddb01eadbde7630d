// Package license canonicalizes license phrases found on details pages into short codes.
package license

import "maps"

// Phrases produced by the extractor for documents without a Creative Commons link.
const (
	PhraseRestricted   = "restricted"
	PhrasePublicDomain = "public domain"
)

var defaultEntries = map[string]string{
	PhrasePublicDomain: "Public Domain",
	PhraseRestricted:   "All rights reserved",

	"Creative Commons Attribution 4.0 License":                                   "CCBY-4.0",
	"Creative Commons Attribution license 4.0.":                                  "CCBY-4.0",
	"Creative Commons Attribution 3.0 License":                                   "CCBY-3.0",
	"Creative Commons Attribution-ShareAlike 4.0 License":                        "CCBY-SA-4.0",
	"Creative Commons Attribution Share-Alike license 4.0.":                      "CCBY-SA-4.0",
	"Creative Commons Attribution-ShareAlike 3.0 License":                        "CCBY-SA-3.0",
	"Creative Commons Attribution-NoDerivatives 4.0 License":                     "CCBY-ND-4.0",
	"Creative Commons Attribution-No Derivatives license 4.0.":                   "CCBY-ND-4.0",
	"Creative Commons Attribution-NonCommercial-NoDerivatives 4.0 License":       "CCBY-NC-ND-4.0",
	"Creative Commons Attribution-Noncommercial-No Derivatives license 4.0.":     "CCBY-NC-ND-4.0",
	"Creative Commons Attribution-Noncommercial-No Derivative Works 3.0 License": "CCBY-NC-ND-3.0",
	"Creative Commons Attribution-NonCommercial-ShareAlike 4.0 License":          "CCBY-NC-SA-4.0",
	"Creative Commons Attribution-NonCommercial 4.0 License":                     "CCBY-NC-4.0",
}

// Table maps canonical license phrases to short codes. A Table is never modified after
// construction; Extend returns a new one.
type Table struct {
	entries map[string]string
}

// Default returns the built-in table.
func Default() Table {
	return New(defaultEntries)
}

// New builds a table holding a copy of entries.
func New(entries map[string]string) Table {
	return Table{entries: maps.Clone(entries)}
}

// Extend returns a table with extra entries layered over t. Extra entries win on conflict.
func (t Table) Extend(extra map[string]string) Table {
	entries := maps.Clone(t.entries)
	if entries == nil {
		entries = make(map[string]string, len(extra))
	}
	maps.Copy(entries, extra)
	return Table{entries: entries}
}

// Lookup returns the code for phrase. Unknown phrases are their own code.
func (t Table) Lookup(phrase string) string {
	if code, ok := t.entries[phrase]; ok {
		return code
	}
	return phrase
}

// Len is the number of entries.
func (t Table) Len() int {
	return len(t.entries)
}
