package store

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "glossary.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_AddAndGetTerms(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.AddTerm(ctx, "en", "fr", "board", "conseil"); err != nil {
		t.Fatalf("failed to add term: %v", err)
	}
	if err := s.AddTerm(ctx, "en", "fr", "quarterly report", "rapport trimestriel"); err != nil {
		t.Fatalf("failed to add term: %v", err)
	}
	if err := s.AddTerm(ctx, "en", "de", "board", "Vorstand"); err != nil {
		t.Fatalf("failed to add term: %v", err)
	}

	terms, err := s.Terms(ctx, "en", "fr")
	if err != nil {
		t.Fatalf("failed to get terms: %v", err)
	}
	if len(terms) != 2 {
		t.Fatalf("expected 2 en->fr terms, got %d", len(terms))
	}
	if terms["board"] != "conseil" {
		t.Errorf("expected board -> conseil, got %q", terms["board"])
	}
}

func TestStore_AddTerm_ReplacesExisting(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.AddTerm(ctx, "en", "es", "cloud", "nube"); err != nil {
		t.Fatalf("failed to add term: %v", err)
	}
	// Same normalized source term replaces the earlier translation.
	if err := s.AddTerm(ctx, "en", "es", "  cloud ", "la nube"); err != nil {
		t.Fatalf("failed to replace term: %v", err)
	}

	terms, err := s.Terms(ctx, "en", "es")
	if err != nil {
		t.Fatalf("failed to get terms: %v", err)
	}
	if len(terms) != 1 {
		t.Fatalf("expected 1 term after replace, got %d", len(terms))
	}
	if terms["cloud"] != "la nube" {
		t.Errorf("expected replaced translation, got %q", terms["cloud"])
	}
}

func TestStore_Terms_EmptyPair(t *testing.T) {
	s := newTestStore(t)

	terms, err := s.Terms(context.Background(), "en", "sv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(terms) != 0 {
		t.Errorf("expected empty glossary, got %d terms", len(terms))
	}
}

func TestStore_ListAndDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.AddTerm(ctx, "en", "fr", "ledger", "grand livre"); err != nil {
		t.Fatalf("failed to add term: %v", err)
	}

	entries, err := s.List(ctx, "", "")
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].SourceTerm != "ledger" {
		t.Errorf("expected source term 'ledger', got %q", entries[0].SourceTerm)
	}

	if err := s.DeleteTerm(ctx, entries[0].ID); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}

	entries, err = s.List(ctx, "", "")
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty glossary after delete, got %d entries", len(entries))
	}
}
