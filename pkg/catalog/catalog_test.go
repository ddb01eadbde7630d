package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtnitsch/biblesources/models"
)

const listing = `<html><body><table>
<tr><td><a href="aak_html.zip">aak_html.zip</a></td></tr>
<tr><td><a href="engwebp_html.zip">engwebp_html.zip</a></td></tr>
<tr><td><a href="/Scriptures/engkjv2006_html.zip">engkjv2006_html.zip</a></td></tr>
<tr><td><a href="engwebp_html.zip">duplicate</a></td></tr>
<tr><td><a href="engwebp_usfm.zip">usfm</a></td></tr>
<tr><td><a href="details.php?id=engwebp">details</a></td></tr>
<tr><td><a>no href</a></td></tr>
</table></body></html>`

type stubGetter struct{ body string }

func (s stubGetter) GetBytes(_ context.Context, url string) ([]byte, error) {
	return []byte(s.body), nil
}

func TestParseListing(t *testing.T) {
	sources, err := ParseListing(strings.NewReader(listing))
	require.NoError(t, err)

	assert.Equal(t, []models.Source{
		{ISO: "aak", Extension: ""},
		{ISO: "eng", Extension: "webp"},
		{ISO: "eng", Extension: "kjv2006"},
	}, sources)
}

func TestParseListing_Empty(t *testing.T) {
	sources, err := ParseListing(strings.NewReader("<html></html>"))
	require.NoError(t, err)
	assert.Empty(t, sources)
}

func TestLoad_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bible-sources.html")
	require.NoError(t, os.WriteFile(p, []byte(listing), 0644))

	sources, err := Load(context.Background(), p, nil)
	require.NoError(t, err)
	assert.Len(t, sources, 3)
}

func TestLoad_URL(t *testing.T) {
	sources, err := Load(context.Background(), "https://ebible.org/Scriptures/dir.php", stubGetter{body: listing})
	require.NoError(t, err)
	assert.Len(t, sources, 3)

	_, err = Load(context.Background(), "https://ebible.org/Scriptures/dir.php", nil)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.html"), nil)
	assert.Error(t, err)
}
