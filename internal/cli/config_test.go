package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leafsense/leafreport/pkg/inference"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Page.Width != 595.28 || cfg.Page.Height != 841.89 {
		t.Errorf("default page = %gx%g, want A4 in points", cfg.Page.Width, cfg.Page.Height)
	}
	if cfg.Inference.Provider != inference.ProviderOllama {
		t.Errorf("default provider = %q, want %q", cfg.Inference.Provider, inference.ProviderOllama)
	}
	if cfg.Page.ImageScale != 0.5 {
		t.Errorf("default image scale = %g, want 0.5", cfg.Page.ImageScale)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfig on missing file: %v", err)
	}
	if cfg.Page.Width != DefaultConfig().Page.Width {
		t.Error("missing file should yield defaults")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[page]
margin = 54.0
font_size = 10.0

[inference]
provider = "openai"
model = "gpt-4o"
api_key_env = "TEST_LEAFREPORT_KEY"

[storage]
dir = "/tmp/leafreport-test"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Page.Margin != 54 {
		t.Errorf("margin = %g, want 54", cfg.Page.Margin)
	}
	if cfg.Page.FontSize != 10 {
		t.Errorf("font size = %g, want 10", cfg.Page.FontSize)
	}
	// Unset fields keep their defaults.
	if cfg.Page.Width != 595.28 {
		t.Errorf("width = %g, want default", cfg.Page.Width)
	}
	if cfg.Inference.Provider != "openai" || cfg.Inference.Model != "gpt-4o" {
		t.Errorf("inference = %+v, want openai/gpt-4o", cfg.Inference)
	}
	if cfg.Storage.Dir != "/tmp/leafreport-test" {
		t.Errorf("storage dir = %q", cfg.Storage.Dir)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[page\nwidth="), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig should reject malformed toml")
	}
}

func TestLayoutConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Page.Margin = 36
	cfg.Page.LineHeight = 14

	lc := cfg.LayoutConfig()
	if lc.MarginLeft != 36 || lc.MarginRight != 36 || lc.MarginTop != 36 || lc.MarginBottom != 36 {
		t.Errorf("margins not applied uniformly: %+v", lc)
	}
	if lc.LineHeight != 14 {
		t.Errorf("line height = %g, want 14", lc.LineHeight)
	}
	if err := lc.Validate(); err != nil {
		t.Errorf("derived layout config should validate: %v", err)
	}
}

func TestClientConfigResolvesAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Inference.Provider = inference.ProviderOpenAI
	cfg.Inference.APIKeyEnv = "TEST_LEAFREPORT_KEY"
	t.Setenv("TEST_LEAFREPORT_KEY", "sk-test")

	cc := cfg.ClientConfig()
	if cc.APIKey != "sk-test" {
		t.Errorf("api key = %q, want value from env", cc.APIKey)
	}
	if cc.Provider != inference.ProviderOpenAI {
		t.Errorf("provider = %q", cc.Provider)
	}
}
