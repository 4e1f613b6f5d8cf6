package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/leafsense/leafreport/pkg/errors"
	"github.com/leafsense/leafreport/pkg/inference"
	"github.com/leafsense/leafreport/pkg/layout"
)

// Config holds the user-editable settings loaded from config.toml.
// Every field has a working default so the CLI runs without any config file.
type Config struct {
	Page      PageConfig      `toml:"page"`
	Inference InferenceConfig `toml:"inference"`
	Storage   StorageConfig   `toml:"storage"`
}

// PageConfig controls page geometry and typography. All lengths are in points.
type PageConfig struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Margin     float64 `toml:"margin"`
	FontSize   float64 `toml:"font_size"`
	LineHeight float64 `toml:"line_height"`
	ImageGap   float64 `toml:"image_gap"`
	ImageScale float64 `toml:"image_scale"`
}

// InferenceConfig selects the language model used by the analyze command.
// The API key is never stored in the file; APIKeyEnv names the environment
// variable to read it from.
type InferenceConfig struct {
	Provider  string `toml:"provider"`
	Model     string `toml:"model"`
	BaseURL   string `toml:"base_url"`
	APIKeyEnv string `toml:"api_key_env"`
	Prompt    string `toml:"prompt"`
	MaxTokens int    `toml:"max_tokens"`
}

// StorageConfig controls where report files are written while being assembled.
type StorageConfig struct {
	Dir string `toml:"dir"`
}

// DefaultConfig returns the built-in settings: A4 pages with one-inch margins,
// 12pt Helvetica on an 18pt leading, and Ollama as the local model provider.
func DefaultConfig() Config {
	lc := layout.DefaultConfig()
	return Config{
		Page: PageConfig{
			Width:      lc.PageWidth,
			Height:     lc.PageHeight,
			Margin:     lc.MarginLeft,
			FontSize:   lc.FontSize,
			LineHeight: lc.LineHeight,
			ImageGap:   lc.ImageGap,
			ImageScale: 0.5,
		},
		Inference: InferenceConfig{
			Provider:  inference.ProviderOllama,
			Model:     "llava",
			MaxTokens: 1024,
		},
	}
}

// LoadConfig reads the config file at path, layered over the defaults.
// A missing file is not an error; the defaults are returned as-is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config file")
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config file")
	}
	return cfg, nil
}

// LayoutConfig converts the page settings into a layout configuration.
func (c *Config) LayoutConfig() layout.Config {
	lc := layout.DefaultConfig()
	if c.Page.Width > 0 {
		lc.PageWidth = c.Page.Width
	}
	if c.Page.Height > 0 {
		lc.PageHeight = c.Page.Height
	}
	if c.Page.Margin > 0 {
		lc.MarginLeft = c.Page.Margin
		lc.MarginRight = c.Page.Margin
		lc.MarginTop = c.Page.Margin
		lc.MarginBottom = c.Page.Margin
	}
	if c.Page.FontSize > 0 {
		lc.FontSize = c.Page.FontSize
	}
	if c.Page.LineHeight > 0 {
		lc.LineHeight = c.Page.LineHeight
	}
	if c.Page.ImageGap > 0 {
		lc.ImageGap = c.Page.ImageGap
	}
	return lc
}

// ClientConfig converts the inference settings into a client configuration,
// resolving the API key from the configured environment variable.
func (c *Config) ClientConfig() inference.ClientConfig {
	apiKey := ""
	if c.Inference.APIKeyEnv != "" {
		apiKey = os.Getenv(c.Inference.APIKeyEnv)
	}
	return inference.ClientConfig{
		Provider:  c.Inference.Provider,
		Model:     c.Inference.Model,
		BaseURL:   c.Inference.BaseURL,
		APIKey:    apiKey,
		Prompt:    c.Inference.Prompt,
		MaxTokens: c.Inference.MaxTokens,
	}
}
