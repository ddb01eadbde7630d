package caching

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtnitsch/biblesources/models"
	"github.com/dtnitsch/biblesources/pkg/fetcher"
)

type stubUpstream struct {
	docs  map[string]string
	calls int
}

func (s *stubUpstream) GetDocument(_ context.Context, id string) (string, error) {
	s.calls++
	doc, ok := s.docs[id]
	if !ok {
		return "", fetcher.ErrNotAvailable
	}
	return doc, nil
}

func TestCacheGetSet(t *testing.T) {
	c, err := NewCache(t.TempDir(), 0)
	require.NoError(t, err)

	_, ok := c.Get("eng_webp")
	assert.False(t, ok)
	assert.False(t, c.Has("eng_webp"))

	require.NoError(t, c.Set("eng_webp", []byte("<html/>")))
	data, ok := c.Get("eng_webp")
	assert.True(t, ok)
	assert.Equal(t, "<html/>", string(data))
	assert.True(t, c.Has("eng_webp"))
}

func TestCacheExpiry(t *testing.T) {
	c, err := NewCache(t.TempDir(), time.Hour)
	require.NoError(t, err)
	require.NoError(t, c.Set("deu_NONE", []byte("old")))

	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(c.Path("deu_NONE"), old, old))

	_, ok := c.Get("deu_NONE")
	assert.False(t, ok)
	assert.True(t, c.Has("deu_NONE"))
}

func TestCachePathSanitizesKey(t *testing.T) {
	c, err := NewCache(t.TempDir(), 0)
	require.NoError(t, err)
	assert.Equal(t, "eng_x.html", filepath.Base(c.Path("eng/../x")))
	assert.Equal(t, "aak_NONE.html", filepath.Base(c.Path("aak_NONE")))
}

func TestSourceFetchesOnceThenServesCache(t *testing.T) {
	c, err := NewCache(t.TempDir(), 0)
	require.NoError(t, err)
	up := &stubUpstream{docs: map[string]string{"engwebp": "<p>web</p>"}}
	src := NewSource(c, up, false)

	doc, cached, err := src.Fetch(context.Background(), models.Source{ISO: "eng", Extension: "webp"})
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, "<p>web</p>", doc)

	doc, cached, err = src.Fetch(context.Background(), models.Source{ISO: "eng", Extension: "webp"})
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, "<p>web</p>", doc)
	assert.Equal(t, 1, up.calls)
}

func TestSourceOfflineMissIsNotAvailable(t *testing.T) {
	c, err := NewCache(t.TempDir(), 0)
	require.NoError(t, err)
	src := NewSource(c, nil, true)

	_, _, err = src.Fetch(context.Background(), models.Source{ISO: "fra"})
	assert.True(t, errors.Is(err, fetcher.ErrNotAvailable))

	require.NoError(t, c.Set("fra_NONE", []byte("cached")))
	doc, cached, err := src.Fetch(context.Background(), models.Source{ISO: "fra"})
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, "cached", doc)
}

func TestSourceOfflineServesStaleEntry(t *testing.T) {
	c, err := NewCache(t.TempDir(), time.Hour)
	require.NoError(t, err)
	require.NoError(t, c.Set("eng_webp", []byte("<p>old</p>")))

	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(c.Path("eng_webp"), old, old))

	_, fresh := c.Get("eng_webp")
	require.False(t, fresh)

	doc, cached, err := NewSource(c, nil, true).Fetch(context.Background(), models.Source{ISO: "eng", Extension: "webp"})
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, "<p>old</p>", doc)
}

func TestSourceOnlineRefetchesStaleEntry(t *testing.T) {
	c, err := NewCache(t.TempDir(), time.Hour)
	require.NoError(t, err)
	require.NoError(t, c.Set("eng_webp", []byte("<p>old</p>")))

	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(c.Path("eng_webp"), old, old))

	up := &stubUpstream{docs: map[string]string{"engwebp": "<p>new</p>"}}
	doc, cached, err := NewSource(c, up, false).Fetch(context.Background(), models.Source{ISO: "eng", Extension: "webp"})
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, "<p>new</p>", doc)
	assert.Equal(t, 1, up.calls)
}
