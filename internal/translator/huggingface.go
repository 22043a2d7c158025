package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultHFBaseURL = "https://api-inference.huggingface.co"

// HFLoader creates translation capabilities backed by the Hugging Face
// Inference API, one MarianMT model per language direction.
type HFLoader struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewHFLoader(apiKey, baseURL string) *HFLoader {
	if baseURL == "" {
		baseURL = defaultHFBaseURL
	}
	return &HFLoader{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

func (l *HFLoader) Name() string {
	return "huggingface"
}

// Load binds a capability to modelID and asks the inference API to bring the
// model weights into memory. The warm-up call blocks until the model is
// ready, which mirrors the slow first-use load of a local pipeline.
func (l *HFLoader) Load(ctx context.Context, sourceCode, targetCode, modelID string) (Capability, error) {
	c := &hfCapability{
		modelID: modelID,
		apiKey:  l.apiKey,
		baseURL: l.baseURL,
		client:  l.client,
	}
	if _, err := c.request(ctx, ".", 8); err != nil {
		return nil, fmt.Errorf("failed to warm up %s: %w", modelID, err)
	}
	return c, nil
}

type hfCapability struct {
	modelID string
	apiKey  string
	baseURL string
	client  *http.Client
}

func (c *hfCapability) Translate(ctx context.Context, text string, maxLength int) (string, error) {
	out, err := c.request(ctx, text, maxLength)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (c *hfCapability) request(ctx context.Context, text string, maxLength int) (string, error) {
	body := map[string]interface{}{
		"inputs": text,
		"parameters": map[string]interface{}{
			"max_length": maxLength,
		},
		"options": map[string]interface{}{
			"wait_for_model": true,
		},
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", c.baseURL, c.modelID)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}

	resp, err := c.client.Do(httpReq)
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
		TranslationText string `json:"translation_text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&hfResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(hfResp) == 0 {
		return "", fmt.Errorf("empty response from API")
	}

	return hfResp[0].TranslationText, nil
}
