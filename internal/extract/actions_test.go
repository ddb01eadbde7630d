package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/biblesources/pkg/extractor"
	"github.com/dtnitsch/biblesources/pkg/license"
)

func TestRun(t *testing.T) {
	ext := extractor.New(license.Default(), extractor.Options{})

	missing := Run(ext, "a.html", "<p>Resource not found</p>")
	assert.True(t, missing.NotFound)
	assert.Nil(t, missing.Record)

	empty := Run(ext, "b.html", "<table></table>")
	assert.False(t, empty.NotFound)
	require.NotNil(t, empty.Record)
	assert.True(t, empty.Record.IsEmpty())

	data, err := yaml.Marshal(missing)
	require.NoError(t, err)
	assert.Equal(t, "file: a.html\nnot_found: true\n", string(data))
}
