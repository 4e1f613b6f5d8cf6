package layout

import (
	"github.com/leafsense/leafreport/pkg/errors"
	"github.com/leafsense/leafreport/pkg/fonts"
)

// Default page geometry, in points (1 point = 1/72 inch).
const (
	// DefaultPageWidth is the A4 page width.
	DefaultPageWidth = 595.28

	// DefaultPageHeight is the A4 page height.
	DefaultPageHeight = 841.89

	// DefaultMargin is the 1-inch margin applied on all four sides.
	DefaultMargin = 72.0

	// DefaultFontSize is the body text size.
	DefaultFontSize = 12.0

	// DefaultLineHeight is the vertical distance between consecutive
	// text baselines.
	DefaultLineHeight = 18.0

	// DefaultImageGap is the vertical gap between the last text line and
	// an image placed below it.
	DefaultImageGap = 12.0
)

// Config describes the page geometry and type settings for one report.
// Each request gets its own Config value; there is no package-level state.
type Config struct {
	PageWidth  float64
	PageHeight float64

	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64

	FontSize   float64
	LineHeight float64
	ImageGap   float64

	// Metrics supplies per-rune advance widths for wrapping.
	Metrics *fonts.Metrics
}

// DefaultConfig returns an A4 configuration with 1-inch margins and the
// built-in Helvetica metrics.
func DefaultConfig() Config {
	return Config{
		PageWidth:    DefaultPageWidth,
		PageHeight:   DefaultPageHeight,
		MarginTop:    DefaultMargin,
		MarginRight:  DefaultMargin,
		MarginBottom: DefaultMargin,
		MarginLeft:   DefaultMargin,
		FontSize:     DefaultFontSize,
		LineHeight:   DefaultLineHeight,
		ImageGap:     DefaultImageGap,
		Metrics:      fonts.Helvetica(),
	}
}

// MaxLineWidth returns the horizontal space available to a text line.
func (c Config) MaxLineWidth() float64 {
	return c.PageWidth - c.MarginLeft - c.MarginRight
}

// TopY returns the y position of the first text baseline on a fresh page.
func (c Config) TopY() float64 {
	return c.PageHeight - c.MarginTop
}

// UsableHeight returns the full vertical space available on an empty page.
func (c Config) UsableHeight() float64 {
	return c.TopY() - c.MarginBottom
}

// MaxImageWidth returns the horizontal space available to an image.
func (c Config) MaxImageWidth() float64 {
	return c.PageWidth - c.MarginLeft - c.MarginRight
}

// Validate checks that the configuration describes a usable page.
func (c Config) Validate() error {
	if c.PageWidth <= 0 || c.PageHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "page size must be positive, got %gx%g", c.PageWidth, c.PageHeight)
	}
	if c.MaxLineWidth() <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "horizontal margins leave no room for text")
	}
	if c.UsableHeight() < c.LineHeight {
		return errors.New(errors.ErrCodeInvalidInput, "vertical margins leave no room for a single line")
	}
	if c.FontSize <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "font size must be positive, got %g", c.FontSize)
	}
	if c.LineHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "line height must be positive, got %g", c.LineHeight)
	}
	if c.ImageGap < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "image gap cannot be negative, got %g", c.ImageGap)
	}
	if c.Metrics == nil {
		return errors.New(errors.ErrCodeInvalidInput, "font metrics are required")
	}
	return nil
}
