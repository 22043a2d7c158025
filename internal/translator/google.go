package translator

import (
	"context"
	"fmt"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleLoader creates translation capabilities backed by the Google Cloud
// Translation API. The model identifier resolved for the pair is ignored;
// Google selects its own model from the language codes.
type GoogleLoader struct {
	credentials string
}

func NewGoogleLoader(credentials string) *GoogleLoader {
	return &GoogleLoader{credentials: credentials}
}

func (l *GoogleLoader) Name() string {
	return "google"
}

// Load creates the API client and parses the language tags up front, so that
// per-call work is a single Translate request.
func (l *GoogleLoader) Load(ctx context.Context, sourceCode, targetCode, modelID string) (Capability, error) {
	sourceTag, err := language.Parse(sourceCode)
	if err != nil {
		return nil, fmt.Errorf("invalid source language %q: %w", sourceCode, err)
	}
	targetTag, err := language.Parse(targetCode)
	if err != nil {
		return nil, fmt.Errorf("invalid target language %q: %w", targetCode, err)
	}

	opts := []option.ClientOption{}
	if l.credentials != "" {
		opts = append(opts, option.WithCredentialsFile(l.credentials))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &googleCapability{
		client: client,
		source: sourceTag,
		target: targetTag,
	}, nil
}

type googleCapability struct {
	client *translate.Client
	source language.Tag
	target language.Tag
}

// Translate sends one text to the Translation API. The API has no output
// length parameter, so maxLength is ignored.
func (c *googleCapability) Translate(ctx context.Context, text string, maxLength int) (string, error) {
	translations, err := c.client.Translate(ctx, []string{text}, c.target, &translate.Options{
		Source: c.source,
	})
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}
	if len(translations) == 0 {
		return "", fmt.Errorf("no translation returned")
	}
	return translations[0].Text, nil
}
