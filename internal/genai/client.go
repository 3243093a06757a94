package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the Gemini API endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	// DefaultModel is used when the config doesn't name one.
	DefaultModel = "gemini-2.0-flash"
)

// Client is a thin HTTP client for the Gemini generateContent API.
// A zero api key means the backend is unconfigured, never an error.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	httpc   *http.Client
}

func NewClient(apiKey, model, baseURL string) *Client {
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Ready reports whether the client has an API key to work with.
func (c *Client) Ready() bool { return c.apiKey != "" }

// Generate sends the prompt and returns the joined candidate text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.Ready() {
		return "", fmt.Errorf("gemini API key not configured")
	}

	reqBody := generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: &generationConfig{
			Temperature:     0.7,
			MaxOutputTokens: 1000,
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("gemini API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("gemini API error: status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if len(out.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	var text string
	for _, p := range out.Candidates[0].Content.Parts {
		text += p.Text
	}
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}
	return text, nil
}
