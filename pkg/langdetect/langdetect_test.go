package langdetect

import (
	"testing"

	"github.com/pemistahl/lingua-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	d := New(lingua.English, lingua.French, lingua.German)

	tests := []struct {
		text string
		want string
	}{
		{"The Holy Bible in the language of the people", "eng"},
		{"La Sainte Bible dans la langue du peuple", "fra"},
		{"Die Heilige Schrift in der Sprache des Volkes", "deu"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			iso, confidence, ok := d.Detect(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.want, iso)
			assert.Greater(t, confidence, 0.0)
		})
	}
}

func TestDetect_Blank(t *testing.T) {
	d := New(lingua.English, lingua.French)

	_, _, ok := d.Detect("   ")
	assert.False(t, ok)
}

func TestParseLanguages(t *testing.T) {
	langs := ParseLanguages([]string{"eng", "FRA", "zzz", " deu "})
	assert.Equal(t, []lingua.Language{lingua.English, lingua.French, lingua.German}, langs)
}
