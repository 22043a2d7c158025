// Package stylehint prepends tone/domain context to text before translation.
//
// MarianMT models are not instruction-tuned, so the hint is stuffed into the
// input as a bracketed natural-language prefix. This is a best-effort signal
// to the model, not a guarantee of semantic effect.
package stylehint

import (
	"fmt"
	"strings"
)

const (
	defaultTone   = "Neutral"
	defaultDomain = "General"
)

// Apply returns text with a bracketed style prefix when either hint deviates
// from its default, and text unchanged otherwise. The prefix has the form
// "[<domain> context, <tone> tone in <targetLangName>] "; each clause appears
// only when its axis is non-default.
func Apply(text, tone, domain, targetLangName string) string {
	var hints []string
	if domain != defaultDomain && domain != "" {
		hints = append(hints, fmt.Sprintf("%s context", domain))
	}
	if tone != defaultTone && tone != "" {
		hints = append(hints, fmt.Sprintf("%s tone", tone))
	}

	if len(hints) == 0 {
		return text
	}
	return fmt.Sprintf("[%s in %s] %s", strings.Join(hints, ", "), targetLangName, text)
}
