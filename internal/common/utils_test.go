package common

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentHash(t *testing.T) {
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		ContentHash(nil))
	assert.NotEqual(t, ContentHash([]byte("a")), ContentHash([]byte("b")))
}

func TestSanitizeSourceKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"eng_webp", "eng_webp"},
		{"  eng_webp  ", "eng_webp"},
		{"\"eng_webp\",", "eng_webp"},
		{"raw/info/eng_NONE.html", "eng_NONE"},
		{"engkjv", "engkjv"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeSourceKey(tt.in), tt.in)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	newLogger(&buf, false, "json").Info("hello", "source", "eng_webp")
	assert.True(t, strings.HasPrefix(buf.String(), "{"))
	assert.Contains(t, buf.String(), `"source":"eng_webp"`)

	buf.Reset()
	newLogger(&buf, false, "text").Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")

	buf.Reset()
	newLogger(&buf, true, "json").Warn("dropped")
	assert.Empty(t, buf.String())
}
