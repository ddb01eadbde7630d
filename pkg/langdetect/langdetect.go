// Package langdetect guesses the language of short vernacular strings such as translation titles.
package langdetect

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Detector wraps a lingua detector. Building one loads language models, so build it once per run.
type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a detector restricted to langs. With fewer than two languages it covers every
// supported language instead.
func New(langs ...lingua.Language) *Detector {
	builder := lingua.NewLanguageDetectorBuilder()
	var configured lingua.LanguageDetectorBuilder
	if len(langs) >= 2 {
		configured = builder.FromLanguages(langs...)
	} else {
		configured = builder.FromAllLanguages()
	}
	return &Detector{detector: configured.Build()}
}

// Detect returns the lowercase ISO 639-3 code of the most likely language of text and its confidence.
// ok is false when text is blank or the language cannot be told reliably.
func (d *Detector) Detect(text string) (string, float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", 0, false
	}

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", 0, false
	}

	confidence := d.detector.ComputeLanguageConfidence(text, lang)
	return strings.ToLower(lang.IsoCode639_3().String()), confidence, true
}

// ParseLanguages maps ISO 639-3 codes (any case) to lingua languages, skipping unknown codes.
func ParseLanguages(codes []string) []lingua.Language {
	var langs []lingua.Language
	for _, code := range codes {
		iso := lingua.GetIsoCode639_3FromValue(strings.ToUpper(strings.TrimSpace(code)))
		lang := lingua.GetLanguageFromIsoCode639_3(iso)
		if lang == lingua.Unknown {
			continue
		}
		langs = append(langs, lang)
	}
	return langs
}
