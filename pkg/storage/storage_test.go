package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_SaveAndRead(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	s, err := New(dir)
	require.NoError(t, err)

	assert.False(t, s.HasFile("a.txt"))

	path, err := s.SaveFile("a.txt", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a.txt"), path)
	assert.True(t, s.HasFile("a.txt"))

	data, err := s.ReadFile("a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	stats, err := s.GetFileStats("a.txt")
	require.NoError(t, err)
	assert.EqualValues(t, 5, stats.SizeBytes)
}

func TestStorage_Create(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	f, err := s.Create("b.csv")
	require.NoError(t, err)
	_, err = f.WriteString("x,y\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	data, err := s.ReadFile("b.csv")
	require.NoError(t, err)
	assert.Equal(t, "x,y\n", string(data))
}

func TestStorage_ReadMissing(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = s.ReadFile("missing")
	assert.Error(t, err)
}
