// Package dataset accumulates output rows and writes them as CSV and BibTeX.
package dataset

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/dtnitsch/biblesources/models"
)

// Table holds rows unique by (ISO, extension), each with a unique ID derived from its language name.
type Table struct {
	rows []models.Row
	keys map[string]struct{}
	ids  map[string]struct{}
}

func NewTable() *Table {
	return &Table{
		keys: make(map[string]struct{}),
		ids:  make(map[string]struct{}),
	}
}

// Add appends row, assigning its ID and HasVariant. It returns false, leaving the table unchanged,
// when a row for the same source was already added.
func (t *Table) Add(row models.Row) bool {
	key := row.Source.Key()
	if _, dup := t.keys[key]; dup {
		return false
	}
	t.keys[key] = struct{}{}

	row.ID, row.HasVariant = t.uniqueID(baseID(row))
	t.ids[row.ID] = struct{}{}

	t.rows = append(t.rows, row)
	return true
}

// fallbackID is the base ID of a row whose name and source key both slug to nothing.
const fallbackID = "source"

// baseID is the first non-empty slug of the language name, the ISO code and the source key.
func baseID(row models.Row) string {
	for _, s := range []string{row.Language.Name, row.Source.ISO, row.Source.Key()} {
		if base := Slug(s); base != "" {
			return base
		}
	}
	return fallbackID
}

// uniqueID returns base if unused, otherwise base with the first free numeric suffix.
func (t *Table) uniqueID(base string) (string, bool) {
	if _, taken := t.ids[base]; !taken {
		return base, false
	}
	for n := 1; ; n++ {
		id := base + strconv.Itoa(n)
		if _, taken := t.ids[id]; !taken {
			return id, true
		}
	}
}

// Rows returns the rows in insertion order.
func (t *Table) Rows() []models.Row {
	return t.rows
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Slug lowercases s and keeps only ASCII letters and digits, after removing diacritics.
func Slug(s string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
