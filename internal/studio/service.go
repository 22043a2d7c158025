// Package studio orchestrates the registry, model cache, style hints, and
// text generation into the three studio features: translation,
// back-translation checks, and learning-mode feedback.
package studio

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/amansinghal116/polyglotlab/internal/generator"
	"github.com/amansinghal116/polyglotlab/internal/language"
	"github.com/amansinghal116/polyglotlab/internal/model"
	"github.com/amansinghal116/polyglotlab/internal/stylehint"
)

const translateMaxLength = 512

// GlossarySource supplies terminology for a language pair. Terms are folded
// into generation prompts; an empty map changes nothing.
type GlossarySource interface {
	Terms(ctx context.Context, sourceLang, targetLang string) (map[string]string, error)
}

// SourceDetector identifies the language of input text for the auto-detect
// source option.
type SourceDetector interface {
	DetectISO(text string) (string, bool)
}

// Service is the orchestration layer behind all three studio views. The
// model cache is the only shared mutable state; everything else is
// request-scoped.
type Service struct {
	registry *language.Registry
	cache    *model.Cache
	gen      generator.Generator
	det      SourceDetector
	glossary GlossarySource
}

// Option configures optional service collaborators.
type Option func(*Service)

// WithDetector enables the auto-detect source option.
func WithDetector(d SourceDetector) Option {
	return func(s *Service) { s.det = d }
}

// WithGlossary injects persisted terminology into generation prompts.
func WithGlossary(g GlossarySource) Option {
	return func(s *Service) { s.glossary = g }
}

func New(registry *language.Registry, cache *model.Cache, gen generator.Generator, opts ...Option) *Service {
	s := &Service{
		registry: registry,
		cache:    cache,
		gen:      gen,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Translate produces one translated string from one input string.
//
// Empty input and unsupported pairs are soft failures carried in the
// outcome; only infrastructure problems (model load or invocation failures,
// unknown language names) surface as errors.
func (s *Service) Translate(ctx context.Context, text, srcName, tgtName, tone, domain string) (Outcome, error) {
	text = normalizeInput(text)
	if text == "" {
		return Outcome{Kind: OutcomeEmptyInput}, nil
	}

	srcName = s.resolveSourceName(text, srcName)
	if srcName == tgtName {
		// Trivial case, no model call.
		return Outcome{Kind: OutcomeOK, Text: text}, nil
	}

	srcCode, err := s.registry.CodeOf(srcName)
	if err != nil {
		return Outcome{}, err
	}
	tgtCode, err := s.registry.CodeOf(tgtName)
	if err != nil {
		return Outcome{}, err
	}

	pair := model.Pair{Source: srcCode, Target: tgtCode}
	capability, err := s.cache.GetOrLoad(ctx, pair)
	if errors.Is(err, model.ErrUnsupportedPair) {
		return Outcome{Kind: OutcomeUnsupportedPair, Source: srcCode, Target: tgtCode}, nil
	}
	if err != nil {
		return Outcome{}, err
	}

	styled := stylehint.Apply(text, tone, domain, tgtName)

	translated, err := capability.Translate(ctx, styled, translateMaxLength)
	if err != nil {
		return Outcome{}, fmt.Errorf("translation failed: %w", err)
	}
	return Outcome{Kind: OutcomeOK, Text: strings.TrimSpace(translated)}, nil
}

// BackTranslate translates forward with the caller's hints and then back
// with neutral hints. The reverse leg deliberately ignores the caller's tone
// and domain: it exists to test raw meaning preservation, not to compound
// style steering.
func (s *Service) BackTranslate(ctx context.Context, text, srcName, tgtName, tone, domain string) (Outcome, Outcome, error) {
	text = normalizeInput(text)
	if text == "" {
		empty := Outcome{Kind: OutcomeEmptyInput}
		return empty, empty, nil
	}

	srcName = s.resolveSourceName(text, srcName)
	if srcName == tgtName {
		same := Outcome{Kind: OutcomeOK, Text: text}
		return same, same, nil
	}

	forward, err := s.Translate(ctx, text, srcName, tgtName, tone, domain)
	if err != nil || forward.Kind != OutcomeOK {
		return forward, forward, err
	}

	backward, err := s.Translate(ctx, forward.Text, tgtName, srcName, language.DefaultTone, language.DefaultDomain)
	return forward, backward, err
}

// resolveSourceName maps the auto-detect sentinel to a concrete language
// name. Detection failures fall back to English rather than blocking the
// request.
func (s *Service) resolveSourceName(text, srcName string) string {
	if srcName != language.AutoDetect {
		return srcName
	}
	if s.det != nil {
		if code, ok := s.det.DetectISO(text); ok {
			if name, err := s.registry.NameOf(code); err == nil {
				return name
			}
		}
	}
	return "English"
}

// glossaryTerms returns the pair's terminology, or nil when no glossary is
// configured or the names don't resolve. Glossary problems never fail a
// request.
func (s *Service) glossaryTerms(ctx context.Context, srcName, tgtName string) map[string]string {
	if s.glossary == nil {
		return nil
	}
	srcCode, err := s.registry.CodeOf(srcName)
	if err != nil {
		return nil
	}
	tgtCode, err := s.registry.CodeOf(tgtName)
	if err != nil {
		return nil
	}
	terms, err := s.glossary.Terms(ctx, srcCode, tgtCode)
	if err != nil {
		return nil
	}
	return terms
}

// normalizeInput trims whitespace and applies Unicode NFC normalization
// before the empty check.
func normalizeInput(text string) string {
	return norm.NFC.String(strings.TrimSpace(text))
}
