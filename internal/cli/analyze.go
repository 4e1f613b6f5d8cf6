package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/leafsense/leafreport/pkg/inference"
	"github.com/leafsense/leafreport/pkg/report"
)

// analyzeOpts holds the command-line flags for the analyze command.
type analyzeOpts struct {
	provider string  // inference provider override
	model    string  // model name override
	baseURL  string  // endpoint override, for self-hosted gateways
	prompt   string  // instruction override sent with the image
	scale    float64 // image scale factor in the report
	noImage  bool    // omit the photo from the generated report
	output   string  // output file path
	config   string  // config file path override
}

// analyzeCommand creates the analyze command, which sends a leaf photo to a
// vision model and renders the returned diagnosis as a PDF report.
func (c *CLI) analyzeCommand() *cobra.Command {
	var opts analyzeOpts

	cmd := &cobra.Command{
		Use:   "analyze <image>",
		Short: "Analyze a leaf photo and render the diagnosis as a PDF report",
		Long: `Analyze a plant leaf photo with a vision-capable language model and
lay out the diagnosis, together with the photo, as a paginated PDF report.

The provider, model, and endpoint come from the config file and can be
overridden with flags. Hosted providers read their API key from the
environment variable named by api_key_env in the config.

Examples:
  leafreport analyze leaf.jpg
  leafreport analyze leaf.jpg --provider ollama --model llava
  leafreport analyze leaf.jpg --provider openai --model gpt-4o -o report.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAnalyze(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.provider, "provider", "", "inference provider: openai, ollama, anthropic")
	cmd.Flags().StringVar(&opts.model, "model", "", "model name (e.g. gpt-4o, llava)")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "provider endpoint override")
	cmd.Flags().StringVar(&opts.prompt, "prompt", "", "instruction sent with the image")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "image scale factor in the report (default 0.5)")
	cmd.Flags().BoolVar(&opts.noImage, "no-image", false, "omit the photo from the report")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default plant_analysis_report_<timestamp>.pdf)")
	cmd.Flags().StringVar(&opts.config, "config", "", "config file (default ~/.config/leafreport/config.toml)")

	return cmd
}

// runAnalyze sends the photo through the vision model, then hands the
// diagnosis and the photo to the report engine.
func (c *CLI) runAnalyze(ctx context.Context, imagePath string, opts *analyzeOpts) error {
	cfg, err := resolveConfig(opts.config)
	if err != nil {
		return err
	}
	applyAnalyzeOverrides(&cfg, opts)

	img, err := readImage(imagePath)
	if err != nil {
		return err
	}

	client, err := inference.NewLLMClient(cfg.ClientConfig())
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Analyzing leaf photo...")
	spinner.Start()
	text, err := client.Analyze(ctx, img.Data, img.MimeType)
	if err != nil {
		spinner.StopWithError("Analysis failed")
		return err
	}
	if spinner.Cancelled() {
		spinner.Stop()
		return ctx.Err()
	}
	spinner.StopWithSuccess("Analysis complete")

	in := report.Input{Text: text, Scale: imageScale(&cfg, opts.scale)}
	if !opts.noImage {
		in.Image = img
	}

	result, err := c.newRunner(&cfg).Execute(ctx, in)
	if err != nil {
		return err
	}

	return c.deliver(ctx, &cfg, result, opts.output, in.Image != nil)
}

// applyAnalyzeOverrides layers flag values over the loaded config.
func applyAnalyzeOverrides(cfg *Config, opts *analyzeOpts) {
	if opts.provider != "" {
		cfg.Inference.Provider = opts.provider
	}
	if opts.model != "" {
		cfg.Inference.Model = opts.model
	}
	if opts.baseURL != "" {
		cfg.Inference.BaseURL = opts.baseURL
	}
	if opts.prompt != "" {
		cfg.Inference.Prompt = opts.prompt
	}
}
