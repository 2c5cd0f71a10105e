package ai

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/ia-local/revendications/testutil"
)

func TestNewGeminiClientWithoutKey(t *testing.T) {
	if client := NewGeminiClient("", "gemini-2.5-flash-image-preview"); client != nil {
		t.Error("Expected nil client when no API key is configured")
	}
}

func TestGenerateImageDataURI(t *testing.T) {
	fake := testutil.NewFakeProvider(t, testutil.ScriptedResponse{
		Status: http.StatusOK,
		Body:   testutil.InlineImageBody("image/png", "aGVsbG8="),
	})

	client := NewGeminiClient("test-key", "gemini-2.5-flash-image-preview")
	client.BaseURL = fake.Server.URL

	got, err := client.GenerateImage(context.Background(), "une illustration")
	if err != nil {
		t.Fatalf("GenerateImage failed: %v", err)
	}
	expected := "data:image/png;base64,aGVsbG8="
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestGenerateImageEmptyResponse(t *testing.T) {
	fake := testutil.NewFakeProvider(t, testutil.ScriptedResponse{
		Status: http.StatusOK,
		Body:   `{"candidates": [{"content": {"role": "model", "parts": [{"text": "pas d'image"}]}}]}`,
	})

	client := NewGeminiClient("test-key", "gemini-2.5-flash-image-preview")
	client.BaseURL = fake.Server.URL

	_, err := client.GenerateImage(context.Background(), "une illustration")
	if !errors.Is(err, ErrEmptyImageResponse) {
		t.Errorf("Expected ErrEmptyImageResponse, got %v", err)
	}
}

func TestGenerateImageQuotaError(t *testing.T) {
	fake := testutil.NewFakeProvider(t, testutil.ScriptedResponse{
		Status: http.StatusTooManyRequests,
		Body:   `{"error": {"message": "quota"}}`,
	})

	client := NewGeminiClient("test-key", "gemini-2.5-flash-image-preview")
	client.BaseURL = fake.Server.URL

	_, err := client.GenerateImage(context.Background(), "une illustration")
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("Expected ErrQuotaExceeded for HTTP 429, got %v", err)
	}
}
