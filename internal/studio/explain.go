package studio

import (
	"context"
	"fmt"
)

const (
	explainMaxNewTokens   = 256
	feedbackMaxNewTokens  = 320
	generationTemperature = 0.4

	emptyExplainMessage  = "Provide both the original text and the translation to get an explanation."
	emptyFeedbackMessage = "Please provide both the original text and your translation."
)

// Explain asks the text-generation capability for learner-level commentary
// on a translation. Empty inputs soft-fail with a guidance string; the
// generated output is commentary, not validated content.
func (s *Service) Explain(ctx context.Context, sourceText, translatedText, srcName, tgtName string) (string, error) {
	sourceText = normalizeInput(sourceText)
	translatedText = normalizeInput(translatedText)

	if sourceText == "" || translatedText == "" {
		return emptyExplainMessage, nil
	}

	srcName = s.resolveSourceName(sourceText, srcName)
	prompt := buildExplainPrompt(sourceText, translatedText, srcName, tgtName, s.glossaryTerms(ctx, srcName, tgtName))

	out, err := s.gen.Generate(ctx, prompt, explainMaxNewTokens, generationTemperature)
	if err != nil {
		return "", fmt.Errorf("explanation failed: %w", err)
	}
	return out, nil
}

// Feedback runs learning mode: it computes the service's own reference
// translation with neutral hints, asks the generation capability to critique
// the user's attempt against it, and returns both parts separated by a
// divider.
func (s *Service) Feedback(ctx context.Context, sourceText, userTranslation, srcName, tgtName string) (string, error) {
	sourceText = normalizeInput(sourceText)
	userTranslation = normalizeInput(userTranslation)

	if sourceText == "" || userTranslation == "" {
		return emptyFeedbackMessage, nil
	}

	srcName = s.resolveSourceName(sourceText, srcName)
	reference, err := s.Translate(ctx, sourceText, srcName, tgtName, "Neutral", "General")
	if err != nil {
		return "", fmt.Errorf("reference translation failed: %w", err)
	}
	referenceText := reference.Display()

	prompt := buildFeedbackPrompt(sourceText, userTranslation, referenceText, srcName, tgtName, s.glossaryTerms(ctx, srcName, tgtName))

	critique, err := s.gen.Generate(ctx, prompt, feedbackMaxNewTokens, generationTemperature)
	if err != nil {
		return "", fmt.Errorf("feedback generation failed: %w", err)
	}

	return fmt.Sprintf("**Model translation:**\n\n%s\n\n---\n\n**Feedback:**\n\n%s", referenceText, critique), nil
}
