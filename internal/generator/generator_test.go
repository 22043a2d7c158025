package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHFGenerator_Generate(t *testing.T) {
	var gotBody struct {
		Inputs     string `json:"inputs"`
		Parameters struct {
			MaxNewTokens int     `json:"max_new_tokens"`
			Temperature  float64 `json:"temperature"`
		} `json:"parameters"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/google/flan-t5-small" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		json.NewEncoder(w).Encode([]map[string]string{{"generated_text": "  The translation keeps the greeting.  "}})
	}))
	defer srv.Close()

	g := NewHFGenerator("", "", srv.URL)
	out, err := g.Generate(context.Background(), "Explain this translation.", 256, 0.4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "The translation keeps the greeting." {
		t.Errorf("expected trimmed output, got %q", out)
	}
	if gotBody.Inputs != "Explain this translation." {
		t.Errorf("prompt not forwarded, got %q", gotBody.Inputs)
	}
	if gotBody.Parameters.MaxNewTokens != 256 {
		t.Errorf("expected max_new_tokens 256, got %d", gotBody.Parameters.MaxNewTokens)
	}
	if gotBody.Parameters.Temperature != 0.4 {
		t.Errorf("expected temperature 0.4, got %v", gotBody.Parameters.Temperature)
	}
}

func TestHFGenerator_Generate_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]string{"error": "rate limited"})
	}))
	defer srv.Close()

	g := NewHFGenerator("", "", srv.URL)
	if _, err := g.Generate(context.Background(), "prompt", 64, 0.4); err == nil {
		t.Fatal("expected error from API failure")
	}
}

func TestOllamaGenerator_Generate(t *testing.T) {
	var gotReq ollamaRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		json.NewEncoder(w).Encode(ollamaResponse{Response: `"Good word choice overall."`})
	}))
	defer srv.Close()

	g := NewOllamaGenerator("llama3.2", srv.URL)
	out, err := g.Generate(context.Background(), "Compare these translations.", 320, 0.4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// postprocess strips the quote wrapping.
	if out != "Good word choice overall." {
		t.Errorf("expected cleaned output, got %q", out)
	}
	if gotReq.Model != "llama3.2" {
		t.Errorf("expected model llama3.2, got %q", gotReq.Model)
	}
	if gotReq.Stream {
		t.Error("expected stream disabled")
	}
	if gotReq.Options["num_predict"] != float64(320) {
		t.Errorf("expected num_predict 320, got %v", gotReq.Options["num_predict"])
	}
}

func TestGeneratorNames(t *testing.T) {
	if NewHFGenerator("", "", "").Name() != "huggingface" {
		t.Error("expected name 'huggingface'")
	}
	if NewOllamaGenerator("", "").Name() != "ollama" {
		t.Error("expected name 'ollama'")
	}
}
