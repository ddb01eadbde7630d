// Package registry resolves ISO 639-3 codes to language entries loaded from a delimited export
// (a Glottolog languoid table or the dataset's own languages.tsv).
package registry

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/biblesources/models"
)

// Resolver maps an ISO code to a language.
type Resolver interface {
	Resolve(iso string) (models.Language, bool)
}

// columnAliases maps lowercased header names to Language fields.
var columnAliases = map[string]string{
	"iso639p3code": "iso",
	"iso":          "iso",
	"iso_code":     "iso",
	"name":         "name",
	"glottocode":   "glottocode",
	"family":       "family",
	"family_name":  "family",
	"latitude":     "latitude",
	"longitude":    "longitude",
	"macroarea":    "macroarea",
	"macroareas":   "macroarea",
}

// Registry is an in-memory ISO index. It is read-only once loaded.
type Registry struct {
	byISO map[string]models.Language
}

// New builds a registry from entries; the first entry per ISO code wins.
func New(languages []models.Language) *Registry {
	r := &Registry{byISO: make(map[string]models.Language, len(languages))}
	for _, l := range languages {
		iso := strings.ToLower(strings.TrimSpace(l.ISO))
		if iso == "" {
			continue
		}
		if _, ok := r.byISO[iso]; ok {
			continue
		}
		l.ISO = iso
		r.byISO[iso] = l
	}
	return r
}

// Load reads a registry file. Files ending in .tsv are tab separated, anything else is CSV.
func Load(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open language registry: %w", err)
	}
	defer f.Close()

	comma := ','
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		comma = '\t'
	}
	languages, err := Read(f, comma)
	if err != nil {
		return nil, fmt.Errorf("failed to read language registry %s: %w", path, err)
	}
	return New(languages), nil
}

// Read parses a delimited table with a header row into language entries.
func Read(r io.Reader, comma rune) ([]models.Language, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	for i, name := range header {
		field, ok := columnAliases[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			continue
		}
		if _, taken := index[field]; !taken {
			index[field] = i
		}
	}
	if _, ok := index["iso"]; !ok {
		return nil, fmt.Errorf("no ISO column in header %v", header)
	}

	get := func(record []string, field string) string {
		i, ok := index[field]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var languages []models.Language
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		languages = append(languages, models.Language{
			ISO:        get(record, "iso"),
			Name:       get(record, "name"),
			Glottocode: get(record, "glottocode"),
			Family:     get(record, "family"),
			Latitude:   get(record, "latitude"),
			Longitude:  get(record, "longitude"),
			Macroarea:  get(record, "macroarea"),
		})
	}
	return languages, nil
}

// Resolve implements Resolver. Lookup is case-insensitive.
func (r *Registry) Resolve(iso string) (models.Language, bool) {
	l, ok := r.byISO[strings.ToLower(strings.TrimSpace(iso))]
	return l, ok
}

// Len is the number of distinct ISO codes.
func (r *Registry) Len() int {
	return len(r.byISO)
}
