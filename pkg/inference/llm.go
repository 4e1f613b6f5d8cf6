package inference

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/leafsense/leafreport/pkg/errors"
	"github.com/leafsense/leafreport/pkg/observability"
)

// Supported provider names.
const (
	ProviderOpenAI    = "openai"
	ProviderOllama    = "ollama"
	ProviderAnthropic = "anthropic"
)

// ClientConfig selects and configures the vision model behind Analyze.
type ClientConfig struct {
	// Provider is one of "openai", "ollama", "anthropic".
	Provider string

	// Model is the provider's model name (e.g. "gpt-4o", "llava").
	Model string

	// BaseURL overrides the provider endpoint, for self-hosted gateways.
	BaseURL string

	// APIKey authenticates against hosted providers.
	APIKey string

	// Prompt is the instruction sent alongside the image.
	// Empty means DefaultPrompt.
	Prompt string

	// MaxTokens caps the response length; zero means provider default.
	MaxTokens int
}

// LLMClient implements Service using a vision-capable LLM.
type LLMClient struct {
	provider  string
	modelName string
	model     llms.Model
	prompt    string
	maxTok    int
}

// NewLLMClient builds a client for the configured provider.
func NewLLMClient(cfg ClientConfig) (*LLMClient, error) {
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	provider := strings.ToLower(cfg.Provider)
	var (
		model llms.Model
		err   error
	)
	switch provider {
	case ProviderOpenAI:
		var opts []openai.Option
		if cfg.Model != "" {
			opts = append(opts, openai.WithModel(cfg.Model))
		}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		if cfg.APIKey != "" {
			opts = append(opts, openai.WithToken(cfg.APIKey))
		}
		model, err = openai.New(opts...)
	case ProviderOllama:
		var opts []ollama.Option
		if cfg.Model != "" {
			opts = append(opts, ollama.WithModel(cfg.Model))
		}
		if cfg.BaseURL != "" {
			opts = append(opts, ollama.WithServerURL(cfg.BaseURL))
		}
		model, err = ollama.New(opts...)
	case ProviderAnthropic:
		var opts []anthropic.Option
		if cfg.Model != "" {
			opts = append(opts, anthropic.WithModel(cfg.Model))
		}
		if cfg.APIKey != "" {
			opts = append(opts, anthropic.WithToken(cfg.APIKey))
		}
		model, err = anthropic.New(opts...)
	case "":
		return nil, errors.New(errors.ErrCodeInvalidInput, "inference provider is not configured")
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unsupported inference provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInference, err, "create %s client", provider)
	}

	return &LLMClient{
		provider:  provider,
		modelName: cfg.Model,
		model:     model,
		prompt:    prompt,
		maxTok:    cfg.MaxTokens,
	}, nil
}

// Analyze sends the image to the vision model and returns its description.
func (c *LLMClient) Analyze(ctx context.Context, imageData []byte, mimeType string) (string, error) {
	if err := errors.ValidateMimeType(mimeType); err != nil {
		return "", err
	}
	if len(imageData) == 0 {
		return "", errors.New(errors.ErrCodeInvalidInput, "image payload is empty")
	}

	// OpenAI-compatible endpoints want data URIs; the rest take raw bytes.
	var imagePart llms.ContentPart
	if c.provider == ProviderOpenAI {
		uri := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(imageData))
		imagePart = llms.ImageURLPart(uri)
	} else {
		imagePart = llms.BinaryPart(mimeType, imageData)
	}

	var callOpts []llms.CallOption
	if c.maxTok > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(c.maxTok))
	}

	observability.Inference().OnRequest(ctx, c.provider, c.modelName, len(imageData))
	start := time.Now()
	completion, err := c.model.GenerateContent(ctx, []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{imagePart, llms.TextPart(c.prompt)},
		},
	}, callOpts...)
	if err != nil {
		observability.Inference().OnError(ctx, c.provider, c.modelName, err)
		return "", errors.Wrap(errors.ErrCodeInference, err, "vision model call failed")
	}
	if len(completion.Choices) == 0 {
		return "", errors.New(errors.ErrCodeInference, "vision model returned no choices")
	}

	text := strings.TrimSpace(completion.Choices[0].Content)
	if text == "" {
		return "", errors.New(errors.ErrCodeInference, "vision model returned empty text")
	}
	observability.Inference().OnResponse(ctx, c.provider, c.modelName, len(text), time.Since(start))
	return text, nil
}

var _ Service = (*LLMClient)(nil)
