// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ia-local/revendications/cliparse"
	"github.com/ia-local/revendications/models"
)

// WriteDoc writes one raw JSON document into a data directory.
func WriteDoc(t *testing.T, dir, filename, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", filename, err)
	}
}

// SeedDataDir creates a temp data directory with the standard two-category
// fixture: two demands in democratie, one in ecologie.
func SeedDataDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	WriteDoc(t, dir, "democratie.json", `[
  {
    "id": "democratie-0",
    "revendication": "Instaurer le référendum d'initiative citoyenne",
    "votes": { "oui": 3, "non": 1, "abstention": 0 },
    "totalScore": 10,
    "ric_type": "Constituant",
    "priority": "Élevé"
  },
  {
    "id": "democratie-1",
    "revendication": "Reconnaître le vote blanc",
    "votes": { "oui": 1, "non": 0, "abstention": 1 },
    "totalScore": 4,
    "priority": "Moyen"
  }
]`)
	WriteDoc(t, dir, "ecologie.json", `[
  {
    "revendication": "Interdire les pesticides de synthèse",
    "priority": "Faible"
  }
]`)

	return dir
}

// GetTestConfig returns a standard test configuration over dataDir
func GetTestConfig(dataDir string) cliparse.Config {
	return cliparse.Config{
		Port:        3144,
		DataDir:     dataDir,
		GroqAPIKey:  "gsk-test",
		GroqModel:   "llama-3.1-8b-instant",
		GeminiModel: "gemini-2.5-flash-image-preview",
		Ranking:     models.RankingScore,
	}
}

// ChatCompletionBody builds a Groq-shaped chat-completion response body.
func ChatCompletionBody(content string) string {
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(body)
}

// InlineImageBody builds a Gemini-shaped generateContent response body
// carrying inline image data.
func InlineImageBody(mimeType, base64Data string) string {
	body, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{
				"role": "model",
				"parts": []map[string]any{
					{"inlineData": map[string]any{"mimeType": mimeType, "data": base64Data}},
				},
			}},
		},
	})
	return string(body)
}

// FakeProvider runs an httptest server whose responses are scripted per
// call: one (status, body) pair per expected request, the last pair
// repeating forever. Calls() reports how many requests arrived.
type FakeProvider struct {
	Server *httptest.Server

	mu        sync.Mutex
	calls     int
	responses []ScriptedResponse
}

type ScriptedResponse struct {
	Status int
	Body   string
}

func NewFakeProvider(t *testing.T, responses ...ScriptedResponse) *FakeProvider {
	t.Helper()

	if len(responses) == 0 {
		t.Fatal("FakeProvider needs at least one scripted response")
	}

	p := &FakeProvider{responses: responses}
	p.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		i := p.calls
		if i >= len(p.responses) {
			i = len(p.responses) - 1
		}
		p.calls++
		resp := p.responses[i]
		p.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.Status)
		fmt.Fprint(w, resp.Body)
	}))
	t.Cleanup(p.Server.Close)

	return p
}

func (p *FakeProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
