// Package generator provides the text-generation capability used for
// translation explanations and learning-mode feedback.
package generator

import "context"

// Generator produces free-form commentary from an instructional prompt.
// Output is natural language and is never validated against ground truth;
// callers treat failures as degraded but non-fatal.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string, maxNewTokens int, temperature float64) (string, error)
}
