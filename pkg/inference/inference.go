// Package inference calls the external image-understanding service.
//
// The engine consumes the result as an opaque string: whatever the vision
// model says about the plant photo becomes the report text. Provider
// selection, prompts, and credentials live in the client configuration;
// there is no retry or backoff here — a failed call is surfaced as-is and
// the caller decides what to do.
package inference

import "context"

// Service converts an image into descriptive text.
type Service interface {
	// Analyze sends the image bytes with their mime tag and returns the
	// model's plain-text description.
	Analyze(ctx context.Context, imageData []byte, mimeType string) (string, error)
}

// DefaultPrompt is used when the client configuration leaves the prompt empty.
const DefaultPrompt = "You are a plant pathologist. Describe the plant in this photo: species if identifiable, overall health, and any visible signs of disease, pests, or nutrient deficiency. Answer in plain text."
