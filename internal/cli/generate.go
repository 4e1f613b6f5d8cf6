package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	"github.com/leafsense/leafreport/pkg/report"
	"github.com/leafsense/leafreport/pkg/storage"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	image  string  // path to the analyzed photo, empty for text-only reports
	scale  float64 // image scale factor, 0 uses the engine default
	output string  // output file path, empty derives a timestamped name
	config string  // config file path override
}

// generateCommand creates the generate command, which lays out analysis text
// (and optionally the analyzed photo) as a paginated PDF report.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [text-file]",
		Short: "Generate a PDF report from analysis text",
		Long: `Generate a paginated PDF report from plant analysis text.

The text is read from the given file, or from stdin when the argument is
omitted or "-". An analyzed photo can be appended after the text with --image.

Examples:
  leafreport generate analysis.txt
  leafreport generate analysis.txt --image leaf.jpg
  cat analysis.txt | leafreport generate -o report.pdf`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			textPath := ""
			if len(args) == 1 {
				textPath = args[0]
			}
			return c.runGenerate(cmd.Context(), textPath, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.image, "image", "i", "", "analyzed photo to append (jpeg or png)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "image scale factor (default 0.5)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default plant_analysis_report_<timestamp>.pdf)")
	cmd.Flags().StringVar(&opts.config, "config", "", "config file (default ~/.config/leafreport/config.toml)")

	return cmd
}

// runGenerate reads the inputs, executes the report engine, and delivers the
// document to the output path.
func (c *CLI) runGenerate(ctx context.Context, textPath string, opts *generateOpts) error {
	cfg, err := resolveConfig(opts.config)
	if err != nil {
		return err
	}

	text, err := readText(textPath)
	if err != nil {
		return err
	}

	in := report.Input{Text: text, Scale: imageScale(&cfg, opts.scale)}
	if opts.image != "" {
		img, err := readImage(opts.image)
		if err != nil {
			return err
		}
		in.Image = img
	}

	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	result, err := c.newRunner(&cfg).Execute(ctx, in)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d pages", result.Pages))

	return c.deliver(ctx, &cfg, result, opts.output, in.Image != nil)
}

// deliver stages the finished document in working storage and copies it to
// its final path. The staged copy is removed once the hand-off completes.
func (c *CLI) deliver(ctx context.Context, cfg *Config, result *report.Result, output string, hasImage bool) error {
	store, err := newStore(cfg)
	if err != nil {
		return err
	}
	if output == "" {
		output = result.Filename
	}

	err = storage.WithTemp(ctx, store, result.Filename, result.Data, func(path string) error {
		c.Logger.Debug("staged report", "path", path)
		return os.WriteFile(output, result.Data, 0o644)
	})
	if err != nil {
		return err
	}

	printSuccess("Report written")
	printFile(output)
	printReportStats(result.Pages, result.Stats.Lines, hasImage)
	return nil
}

// readText reads the analysis text from path, or from stdin when path is
// empty or "-".
func readText(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text file: %w", err)
	}
	return string(data), nil
}

// readImage loads the photo at path and detects its mime tag from content.
// Format acceptance is decided later by the layout engine from this tag.
func readImage(path string) (*report.ImageInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image file: %w", err)
	}
	mt := mimetype.Detect(data)
	return &report.ImageInput{Data: data, MimeType: mt.String()}, nil
}

// imageScale resolves the effective scale factor: the flag wins, then the
// config file, then the engine default.
func imageScale(cfg *Config, flag float64) float64 {
	if flag != 0 {
		return flag
	}
	return cfg.Page.ImageScale
}

// resolveConfig loads the config file from the explicit path, or from the
// default location when none is given.
func resolveConfig(path string) (Config, error) {
	if path == "" {
		var err error
		path, err = configPath()
		if err != nil {
			return DefaultConfig(), nil
		}
	}
	return LoadConfig(path)
}
