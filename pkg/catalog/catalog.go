// Package catalog reads the scripture directory page into the list of sources to process.
package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dtnitsch/biblesources/models"
)

// archivePattern matches "<iso><extension>_html.zip"; the ISO code is the first three characters.
var archivePattern = regexp.MustCompile(`^(...)([^_]*)_html\.zip$`)

// Getter fetches a remote listing.
type Getter interface {
	GetBytes(ctx context.Context, url string) ([]byte, error)
}

// ParseListing extracts the sources linked from a directory page, in page order, without duplicates.
func ParseListing(r io.Reader) ([]models.Source, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing: %w", err)
	}

	var sources []models.Source
	seen := make(map[string]struct{})
	doc.Find("a[href]").Each(func(i int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		m := archivePattern.FindStringSubmatch(path.Base(strings.TrimSpace(href)))
		if m == nil {
			return
		}
		src := models.Source{ISO: m[1], Extension: m[2]}
		if _, dup := seen[src.Key()]; dup {
			return
		}
		seen[src.Key()] = struct{}{}
		sources = append(sources, src)
	})

	return sources, nil
}

// Load reads the listing from a local file or, for http(s) locations, through getter.
func Load(ctx context.Context, location string, getter Getter) ([]models.Source, error) {
	var data []byte
	var err error
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		if getter == nil {
			return nil, fmt.Errorf("cannot fetch listing %s offline", location)
		}
		data, err = getter.GetBytes(ctx, location)
	} else {
		data, err = os.ReadFile(location)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read listing %s: %w", location, err)
	}
	return ParseListing(bytes.NewReader(data))
}
