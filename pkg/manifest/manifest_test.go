package manifest

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtnitsch/biblesources/models"
	"github.com/dtnitsch/biblesources/pkg/storage"
)

func sampleResults() []SourceResult {
	return []SourceResult{
		{
			Source: models.Source{ISO: "eng", Extension: "webp"},
			Status: StatusFound,
			Record: models.MetadataRecord{Language: "English", LicenseCode: "Public Domain"},
			Cached: true,
		},
		{
			Source:     models.Source{ISO: "xyz"},
			Status:     StatusFound,
			Record:     models.MetadataRecord{LicenseRaw: "odd"},
			Unresolved: true,
		},
		{Source: models.Source{ISO: "abc"}, Status: StatusNotFound},
		{Source: models.Source{ISO: "fra"}, Status: StatusFailed, Error: errors.New("boom"), ErrorType: "fetch_error"},
	}
}

func TestBuild(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	m := Build(7, sampleResults(), map[string]int{"Public Domain": 1, "odd": 1}, now)

	assert.Equal(t, "2024-03-01T12:00:00Z", m.GeneratedAt)
	assert.Equal(t, int64(7), m.RunID)
	assert.Equal(t, Totals{Sources: 4, Found: 2, NotFound: 1, Failed: 1, Unresolved: 1, Cached: 1}, m.Totals)
	assert.Equal(t, []string{"Public Domain:1", "odd:1"}, m.TopLicenses)

	require.Len(t, m.Results, 4)
	assert.Equal(t, SourceSummary{Source: "eng_webp", Status: StatusFound, License: "Public Domain", Language: "English"}, m.Results[0])
	assert.True(t, m.Results[1].Unresolved)
	assert.Equal(t, "abc_NONE", m.Results[2].Source)
	assert.Equal(t, "fetch_error", m.Results[3].ErrorType)
	assert.Equal(t, "boom", m.Results[3].ErrorMessage)
}

func TestGenerateSummary(t *testing.T) {
	s, err := storage.New(t.TempDir())
	require.NoError(t, err)

	path, err := GenerateSummary(1, sampleResults(), nil, s)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "summary-"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var m SummaryManifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, 4, m.Totals.Sources)
	assert.Empty(t, m.TopLicenses)
}
