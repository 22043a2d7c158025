// Package detector identifies the source language of input text so the UI
// can offer an auto-detect option.
package detector

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

// Detector wraps a lingua language detector restricted to the studio's five
// supported languages. Building the detector is expensive; reuse the
// instance.
type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English,
			lingua.French,
			lingua.German,
			lingua.Spanish,
			lingua.Swedish,
		).
		Build()

	return &Detector{detector: detector}
}

// DetectISO returns the lowercase ISO 639-1 code of the detected language,
// or false when the text is empty or too ambiguous to classify.
func (d *Detector) DetectISO(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}
