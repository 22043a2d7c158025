package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/amansinghal116/polyglotlab/internal/postprocess"
)

const (
	defaultHFBaseURL = "https://api-inference.huggingface.co"
	defaultHFModel   = "google/flan-t5-small"
)

// HFGenerator calls a text2text-generation model on the Hugging Face
// Inference API.
type HFGenerator struct {
	model   string
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewHFGenerator(model, apiKey, baseURL string) *HFGenerator {
	if model == "" {
		model = defaultHFModel
	}
	if baseURL == "" {
		baseURL = defaultHFBaseURL
	}
	return &HFGenerator{
		model:   model,
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

func (g *HFGenerator) Name() string {
	return "huggingface"
}

func (g *HFGenerator) Generate(ctx context.Context, prompt string, maxNewTokens int, temperature float64) (string, error) {
	body := map[string]interface{}{
		"inputs": prompt,
		"parameters": map[string]interface{}{
			"max_new_tokens": maxNewTokens,
			"temperature":    temperature,
		},
		"options": map[string]interface{}{
			"wait_for_model": true,
		},
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", g.baseURL, g.model)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", g.apiKey))
	}

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error string `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&errResp)
		if errResp.Error != "" {
			return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, errResp.Error)
		}
		return "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var hfResp []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&hfResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(hfResp) == 0 {
		return "", fmt.Errorf("empty response from API")
	}

	return postprocess.Clean(hfResp[0].GeneratedText), nil
}
