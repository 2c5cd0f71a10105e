// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// ErrEmptyImageResponse is returned when the provider answered without any
// inline image data. Empty responses are transient and worth a quick retry.
var ErrEmptyImageResponse = errors.New("image response contained no inline data")

// GeminiClient generates illustrative images through the Gemini
// generateContent API, requesting an IMAGE response modality.
type GeminiClient struct {
	// BaseURL may be overridden for tests; defaults to the public API.
	BaseURL string

	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiClient returns nil when apiKey is empty: a nil client is the
// "image generation disabled" state and must never be called.
func NewGeminiClient(apiKey, model string) *GeminiClient {
	if apiKey == "" {
		return nil
	}
	return &GeminiClient{
		BaseURL:    defaultGeminiBaseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type generateContentRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		ResponseModalities []string `json:"responseModalities"`
	} `json:"generationConfig"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GenerateImage performs a single image-generation call and returns the
// image as a data URI. A response with no inline data yields
// ErrEmptyImageResponse; HTTP 429 maps to ErrQuotaExceeded.
func (c *GeminiClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	var request generateContentRequest
	request.Contents = []geminiContent{
		{Role: "user", Parts: []geminiPart{{Text: prompt}}},
	}
	request.GenerationConfig.ResponseModalities = []string{"IMAGE"}

	payload, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to encode image request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.BaseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build image request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("image request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("gemini: %w: %s", ErrQuotaExceeded, truncate(body, 200))
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: unexpected status %d: %s", resp.StatusCode, truncate(body, 200))
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse image response: %w", err)
	}

	for _, candidate := range parsed.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				return fmt.Sprintf("data:%s;base64,%s", part.InlineData.MimeType, part.InlineData.Data), nil
			}
		}
	}

	return "", ErrEmptyImageResponse
}
