// Package model maps language pairs to translation models and owns the
// process-wide cache of loaded capabilities.
package model

import (
	"errors"
	"fmt"
)

var ErrUnsupportedPair = errors.New("unsupported language pair")

// Pair is an ordered (source, target) combination of ISO 639-1 codes.
type Pair struct {
	Source string
	Target string
}

func (p Pair) String() string {
	return fmt.Sprintf("%s->%s", p.Source, p.Target)
}

// supportMatrix enumerates every direction that has a configured model:
// English paired bidirectionally with French, German, Spanish and Swedish.
// Identity pairs are short-circuited upstream and never looked up here.
var supportMatrix = map[Pair]string{
	{Source: "en", Target: "fr"}: "Helsinki-NLP/opus-mt-en-fr",
	{Source: "fr", Target: "en"}: "Helsinki-NLP/opus-mt-fr-en",
	{Source: "en", Target: "de"}: "Helsinki-NLP/opus-mt-en-de",
	{Source: "de", Target: "en"}: "Helsinki-NLP/opus-mt-de-en",
	{Source: "en", Target: "es"}: "Helsinki-NLP/opus-mt-en-es",
	{Source: "es", Target: "en"}: "Helsinki-NLP/opus-mt-es-en",
	{Source: "en", Target: "sv"}: "Helsinki-NLP/opus-mt-en-sv",
	{Source: "sv", Target: "en"}: "Helsinki-NLP/opus-mt-sv-en",
}

// Resolve returns the model identifier for a language pair.
func Resolve(p Pair) (string, error) {
	modelID, ok := supportMatrix[p]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPair, p)
	}
	return modelID, nil
}

// SupportedPairs returns every direction in the support matrix.
func SupportedPairs() []Pair {
	pairs := make([]Pair, 0, len(supportMatrix))
	for p := range supportMatrix {
		pairs = append(pairs, p)
	}
	return pairs
}
