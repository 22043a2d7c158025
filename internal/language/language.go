// Package language holds the fixed set of languages the studio supports,
// together with the tone and domain hint vocabularies offered in the UI.
package language

import (
	"errors"
	"fmt"
)

var ErrUnknownLanguage = errors.New("unknown language")

// AutoDetect is the sentinel source-language choice that asks the studio to
// detect the source language from the text itself.
const AutoDetect = "Auto-detect"

const (
	DefaultTone   = "Neutral"
	DefaultDomain = "General"
)

// Tones are the tone hints offered to steer translation output.
// The first entry is the default.
var Tones = []string{"Neutral", "Formal", "Informal", "Simplified"}

// Domains are the domain/context hints offered to steer translation output.
// The first entry is the default.
var Domains = []string{"General", "Business", "Technical", "Casual"}

// Registry maps display names to ISO 639-1 codes and back. The set is fixed
// at process start; there is no registration at runtime.
type Registry struct {
	codes map[string]string
	names map[string]string
	order []string
}

// NewRegistry returns the registry of the five supported languages.
func NewRegistry() *Registry {
	pairs := []struct{ name, code string }{
		{"English", "en"},
		{"French", "fr"},
		{"German", "de"},
		{"Spanish", "es"},
		{"Swedish", "sv"},
	}

	r := &Registry{
		codes: make(map[string]string, len(pairs)),
		names: make(map[string]string, len(pairs)),
	}
	for _, p := range pairs {
		r.codes[p.name] = p.code
		r.names[p.code] = p.name
		r.order = append(r.order, p.name)
	}
	return r
}

// CodeOf returns the ISO 639-1 code for a display name.
func (r *Registry) CodeOf(displayName string) (string, error) {
	code, ok := r.codes[displayName]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, displayName)
	}
	return code, nil
}

// NameOf returns the display name for an ISO 639-1 code.
func (r *Registry) NameOf(code string) (string, error) {
	name, ok := r.names[code]
	if !ok {
		return "", fmt.Errorf("%w: code %q", ErrUnknownLanguage, code)
	}
	return name, nil
}

// Names returns the display names in a stable order suitable for dropdowns.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Codes returns the ISO 639-1 codes in the same order as Names.
func (r *Registry) Codes() []string {
	out := make([]string, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.codes[name])
	}
	return out
}
