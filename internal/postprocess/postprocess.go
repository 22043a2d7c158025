// Package postprocess strips common LLM artifacts from generated text before
// it is shown in the studio.
package postprocess

import (
	"regexp"
	"strings"
)

// Clean removes reasoning blocks, prompt echoes, and quote wrapping, then
// trims the result.
func Clean(text string) string {
	text = stripReasoningBlocks(text)
	text = stripPromptEchoes(text)
	text = stripQuoteWrapping(text)
	return strings.TrimSpace(text)
}

// reasoningBlockRe matches complete <think>…</think> style blocks. Each tag
// variant is listed explicitly because RE2 has no backreferences.
var reasoningBlockRe = regexp.MustCompile(
	`(?is)<thinking>.*?</thinking>|<think>.*?</think>|<reasoning>.*?</reasoning>`,
)

// openReasoningRe matches a reasoning tag that was never closed (the model
// was cut off mid-thought).
var openReasoningRe = regexp.MustCompile(
	`(?is)(?:<thinking>|<think>|<reasoning>).*$`,
)

func stripReasoningBlocks(text string) string {
	text = reasoningBlockRe.ReplaceAllString(text, "")
	text = openReasoningRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// echoRes match introductory phrases models sometimes prepend even when told
// not to. Anchored to the start and requiring a colon to limit false
// positives on legitimate commentary.
var echoRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^here(?:'s| is)(?: the)? (?:explanation|feedback|translation|text)\s*:`),
	regexp.MustCompile(`(?i)^(?:the )?(?:explanation|feedback|translation)\s*:`),
	regexp.MustCompile(`(?i)^(?:certainly|sure|of course)[,.]? here(?:'s| is)(?: the)? (?:explanation|feedback|translation|text)\s*:`),
}

func stripPromptEchoes(text string) string {
	text = strings.TrimSpace(text)
	for _, re := range echoRes {
		if loc := re.FindStringIndex(text); loc != nil && loc[0] == 0 {
			text = strings.TrimSpace(text[loc[1]:])
		}
	}
	return text
}

// quotePairs are the opening/closing quote runes stripped when the whole
// text is wrapped in exactly one pair.
var quotePairs = map[rune]rune{
	'"': '"',
	'\'': '\'',
	'«': '»',
	'“': '”',
	'‘': '’',
}

func stripQuoteWrapping(text string) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) < 2 {
		return text
	}
	closing, ok := quotePairs[runes[0]]
	if !ok || runes[len(runes)-1] != closing {
		return text
	}
	inner := string(runes[1 : len(runes)-1])
	// Do not strip when the closing rune also appears inside; the wrapping
	// is then part of the content.
	if strings.ContainsRune(inner, closing) && closing != '\'' {
		return text
	}
	return strings.TrimSpace(inner)
}
