package language

import (
	"errors"
	"testing"
)

func TestRegistry_CodeOf(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name string
		code string
	}{
		{"English", "en"},
		{"French", "fr"},
		{"German", "de"},
		{"Spanish", "es"},
		{"Swedish", "sv"},
	}

	for _, tt := range tests {
		code, err := r.CodeOf(tt.name)
		if err != nil {
			t.Errorf("CodeOf(%q): unexpected error: %v", tt.name, err)
		}
		if code != tt.code {
			t.Errorf("CodeOf(%q) = %q, want %q", tt.name, code, tt.code)
		}
	}
}

func TestRegistry_CodeOf_Unknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.CodeOf("Klingon")
	if err == nil {
		t.Fatal("expected error for unknown language")
	}
	if !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("expected ErrUnknownLanguage, got %v", err)
	}
}

func TestRegistry_NameOf(t *testing.T) {
	r := NewRegistry()

	name, err := r.NameOf("sv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Swedish" {
		t.Errorf("NameOf(sv) = %q, want Swedish", name)
	}

	if _, err := r.NameOf("xx"); !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("expected ErrUnknownLanguage for unknown code, got %v", err)
	}
}

func TestRegistry_Names_StableOrder(t *testing.T) {
	r := NewRegistry()

	want := []string{"English", "French", "German", "Spanish", "Swedish"}
	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHintVocabularies(t *testing.T) {
	if Tones[0] != DefaultTone {
		t.Errorf("first tone should be the default, got %q", Tones[0])
	}
	if Domains[0] != DefaultDomain {
		t.Errorf("first domain should be the default, got %q", Domains[0])
	}
}
