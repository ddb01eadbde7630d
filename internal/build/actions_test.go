package build

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDetector_WarnsOnSingleLanguage(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	d := newDetector(logger, []string{"eng"})
	require.NotNil(t, d)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "detect_languages")
}

func TestNewDetector_QuietForValidList(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	require.NotNil(t, newDetector(logger, []string{"eng", "fra"}))
	require.NotNil(t, newDetector(logger, nil))
	assert.Empty(t, buf.String())
}
