package studio

import (
	"fmt"
	"strings"
)

// buildExplainPrompt produces the fixed instructional template for the
// explanation view, embedding both texts and both language names.
func buildExplainPrompt(sourceText, translatedText, srcName, tgtName string, glossary map[string]string) string {
	var sb strings.Builder

	sb.WriteString("You are a helpful language teacher. ")
	sb.WriteString("Explain this translation to a learner in simple terms. ")
	sb.WriteString("Mention important word choices, tone, and any interesting grammar.\n\n")
	fmt.Fprintf(&sb, "Source language: %s\n", srcName)
	fmt.Fprintf(&sb, "Target language: %s\n\n", tgtName)
	fmt.Fprintf(&sb, "Original text:\n%s\n\n", sourceText)
	fmt.Fprintf(&sb, "Translation:\n%s\n\n", translatedText)
	writeGlossarySection(&sb, glossary)
	sb.WriteString("Explanation (in English, 1-2 short paragraphs):")

	return sb.String()
}

// buildFeedbackPrompt produces the comparison template for learning mode.
func buildFeedbackPrompt(sourceText, userTranslation, modelTranslation, srcName, tgtName string, glossary map[string]string) string {
	var sb strings.Builder

	sb.WriteString("You are a friendly language teacher. ")
	sb.WriteString("Compare the student's translation to the model translation. ")
	sb.WriteString("Explain what is good, what could be improved, and give 2-4 concrete suggestions. ")
	sb.WriteString("Be encouraging, not harsh.\n\n")
	fmt.Fprintf(&sb, "Source language: %s\n", srcName)
	fmt.Fprintf(&sb, "Target language: %s\n\n", tgtName)
	fmt.Fprintf(&sb, "Original text:\n%s\n\n", sourceText)
	fmt.Fprintf(&sb, "Student's translation:\n%s\n\n", userTranslation)
	fmt.Fprintf(&sb, "Model's translation:\n%s\n\n", modelTranslation)
	writeGlossarySection(&sb, glossary)
	sb.WriteString("Feedback (in English, short and structured):")

	return sb.String()
}

// writeGlossarySection appends a terminology block when the pair has
// glossary entries; with an empty glossary the prompt is unchanged.
func writeGlossarySection(sb *strings.Builder, glossary map[string]string) {
	if len(glossary) == 0 {
		return
	}
	sb.WriteString("Terminology expected in the translation:\n")
	for src, tgt := range glossary {
		fmt.Fprintf(sb, "  %s -> %s\n", src, tgt)
	}
	sb.WriteString("\n")
}
