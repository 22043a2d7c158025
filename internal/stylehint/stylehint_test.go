package stylehint

import (
	"strings"
	"testing"
)

func TestApply_DefaultsAreNoOp(t *testing.T) {
	texts := []string{"Hello", "", "  padded  ", "Bonjour le monde"}
	for _, text := range texts {
		if got := Apply(text, "Neutral", "General", "French"); got != text {
			t.Errorf("Apply(%q, Neutral, General) = %q, want unchanged", text, got)
		}
	}
}

func TestApply_BothHints(t *testing.T) {
	got := Apply("Hi", "Formal", "Business", "French")

	if !strings.Contains(got, "Business context") {
		t.Errorf("expected domain clause in %q", got)
	}
	if !strings.Contains(got, "Formal tone") {
		t.Errorf("expected tone clause in %q", got)
	}
	if !strings.Contains(got, "Hi") {
		t.Errorf("expected original text in %q", got)
	}
	if strings.Index(got, "Business context") > strings.Index(got, "Hi") {
		t.Errorf("hint content must precede the original text: %q", got)
	}
	if got != "[Business context, Formal tone in French] Hi" {
		t.Errorf("unexpected prefix format: %q", got)
	}
}

func TestApply_SingleAxis(t *testing.T) {
	tests := []struct {
		tone, domain string
		want         string
	}{
		{"Formal", "General", "[Formal tone in German] Hi"},
		{"Neutral", "Technical", "[Technical context in German] Hi"},
		{"Simplified", "Casual", "[Casual context, Simplified tone in German] Hi"},
	}

	for _, tt := range tests {
		if got := Apply("Hi", tt.tone, tt.domain, "German"); got != tt.want {
			t.Errorf("Apply(Hi, %s, %s) = %q, want %q", tt.tone, tt.domain, got, tt.want)
		}
	}
}
