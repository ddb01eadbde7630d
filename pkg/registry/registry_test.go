package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtnitsch/biblesources/models"
)

const glottologCSV = `ID,Name,Macroarea,Latitude,Longitude,Glottocode,ISO639P3code,Family
stan1293,English,Eurasia,53,-1,stan1293,eng,Indo-European
stan1290,French,Eurasia,48,2,stan1290,fra,Indo-European
aaka1234,Dup English,Eurasia,0,0,aaka1234,ENG,Other
bookkeeping,Unclassified,,,,book1242,,
`

func TestRead_GlottologHeader(t *testing.T) {
	languages, err := Read(strings.NewReader(glottologCSV), ',')
	require.NoError(t, err)
	require.Len(t, languages, 4)

	assert.Equal(t, models.Language{
		ISO:        "eng",
		Name:       "English",
		Glottocode: "stan1293",
		Family:     "Indo-European",
		Latitude:   "53",
		Longitude:  "-1",
		Macroarea:  "Eurasia",
	}, languages[0])
}

func TestNew_FirstEntryWinsAndBlankISOSkipped(t *testing.T) {
	languages, err := Read(strings.NewReader(glottologCSV), ',')
	require.NoError(t, err)
	r := New(languages)

	assert.Equal(t, 2, r.Len())
	l, ok := r.Resolve("ENG")
	require.True(t, ok)
	assert.Equal(t, "English", l.Name)
	assert.Equal(t, "eng", l.ISO)

	_, ok = r.Resolve("xyz")
	assert.False(t, ok)
}

func TestLoad_TSV(t *testing.T) {
	p := filepath.Join(t.TempDir(), "languages.tsv")
	data := "ID\tName\tHasVariant\tGlottocode\tFamily\tISO639P3Code\n" +
		"english\tEnglish\t\tstan1293\tIndo-European\teng\n"
	require.NoError(t, os.WriteFile(p, []byte(data), 0644))

	r, err := Load(p)
	require.NoError(t, err)
	l, ok := r.Resolve("eng")
	require.True(t, ok)
	assert.Equal(t, "stan1293", l.Glottocode)
	assert.Equal(t, "Indo-European", l.Family)
}

func TestRead_RequiresISOColumn(t *testing.T) {
	_, err := Read(strings.NewReader("Name,Glottocode\nEnglish,stan1293\n"), ',')
	assert.Error(t, err)
}

func TestRead_Empty(t *testing.T) {
	languages, err := Read(strings.NewReader(""), ',')
	require.NoError(t, err)
	assert.Empty(t, languages)
}
