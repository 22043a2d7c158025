package studio

import "fmt"

// OutcomeKind tags the result of a translation call so internal callers can
// branch on it while the presentation layer renders every non-OK variant as
// a fixed user-facing string. Nothing here is ever surfaced as a fault to
// the UI shell.
type OutcomeKind int

const (
	OutcomeOK OutcomeKind = iota
	OutcomeEmptyInput
	OutcomeUnsupportedPair
)

// Outcome is the tagged result of one translation.
type Outcome struct {
	Kind OutcomeKind
	// Text holds the translated text when Kind is OutcomeOK.
	Text string
	// Source and Target hold the language codes of a rejected pair when
	// Kind is OutcomeUnsupportedPair.
	Source string
	Target string
}

const emptyInputMessage = "Please enter some text to translate."

// Display renders the outcome the way the UI shows it: the translation
// itself, or the fixed message for the soft-failure variants.
func (o Outcome) Display() string {
	switch o.Kind {
	case OutcomeEmptyInput:
		return emptyInputMessage
	case OutcomeUnsupportedPair:
		return fmt.Sprintf("Language pair %s->%s not supported yet.", o.Source, o.Target)
	default:
		return o.Text
	}
}
