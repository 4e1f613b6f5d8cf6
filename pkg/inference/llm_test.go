package inference

import (
	"context"
	"testing"

	"github.com/leafsense/leafreport/pkg/errors"
)

func TestNewLLMClientRejectsUnknownProvider(t *testing.T) {
	_, err := NewLLMClient(ClientConfig{Provider: "carrier-pigeon"})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestNewLLMClientRejectsEmptyProvider(t *testing.T) {
	_, err := NewLLMClient(ClientConfig{})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestNewLLMClientOllama(t *testing.T) {
	// Ollama needs no credentials, so construction succeeds offline.
	c, err := NewLLMClient(ClientConfig{
		Provider: "ollama",
		Model:    "llava",
		BaseURL:  "http://localhost:11434",
	})
	if err != nil {
		t.Fatalf("NewLLMClient: %v", err)
	}
	if c.prompt != DefaultPrompt {
		t.Error("empty prompt should fall back to DefaultPrompt")
	}
}

func TestAnalyzeValidatesInput(t *testing.T) {
	c, err := NewLLMClient(ClientConfig{Provider: "ollama", Model: "llava"})
	if err != nil {
		t.Fatalf("NewLLMClient: %v", err)
	}

	if _, err := c.Analyze(context.Background(), nil, "image/png"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("empty payload: error = %v, want INVALID_INPUT", err)
	}
	if _, err := c.Analyze(context.Background(), []byte{1}, "bogus"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("bad mime: error = %v, want INVALID_INPUT", err)
	}
}
