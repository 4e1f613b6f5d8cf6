// Package report generates plant-analysis report documents.
//
// This is the request-scoped engine: one Input produces one document in a
// single synchronous pass through plan → place → render. A Runner carries
// only configuration and a logger, so any number of requests can execute
// concurrently against the same Runner without shared mutable state.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/leafsense/leafreport/pkg/errors"
	"github.com/leafsense/leafreport/pkg/layout"
)

// DefaultScale is the image scale factor applied when the input leaves it zero.
const DefaultScale = 0.5

// ImageInput is an uploaded photo: raw bytes plus the explicit mime tag
// supplied with them. The tag decides the format; bytes are never sniffed.
type ImageInput struct {
	Data     []byte
	MimeType string
}

// Input is one report request.
type Input struct {
	// Text is the analysis result to lay out, possibly spanning many pages.
	Text string

	// Image is the optional analyzed photo, appended after the text.
	Image *ImageInput

	// Scale resizes the image; zero means DefaultScale.
	Scale float64
}

// validate checks the request and applies defaults.
func (in *Input) validate() error {
	if in.Scale == 0 {
		in.Scale = DefaultScale
	}
	if err := errors.ValidateScale(in.Scale); err != nil {
		return err
	}
	if strings.TrimSpace(in.Text) == "" && in.Image == nil {
		return errors.New(errors.ErrCodeEmptyInput, "nothing to render: no text and no image")
	}
	if in.Image != nil {
		if err := errors.ValidateMimeType(in.Image.MimeType); err != nil {
			return err
		}
	}
	return nil
}

// Result is a finished report.
type Result struct {
	// Data is the serialized document.
	Data []byte

	// Filename is the suggested name for the document.
	Filename string

	// Pages is the number of pages in the document.
	Pages int

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains engine execution statistics.
type Stats struct {
	Lines      int
	PlanTime   time.Duration
	RenderTime time.Duration
}

// Filename builds the report filename for the given generation time,
// following the plant_analysis_report_<timestamp>.pdf pattern.
func Filename(t time.Time) string {
	return fmt.Sprintf("plant_analysis_report_%d.pdf", t.UnixMilli())
}

// plan lays out the whole request without touching any writer.
func plan(in Input, cfg layout.Config) (*layout.Plan, error) {
	p, err := layout.PlanText(in.Text, cfg)
	if err != nil {
		return nil, err
	}
	if in.Image != nil {
		info, err := layout.InspectImage(in.Image.Data, in.Image.MimeType)
		if err != nil {
			return nil, err
		}
		placement, err := layout.PlaceImage(info.Width, info.Height, in.Scale, p.Cursor, cfg)
		if err != nil {
			return nil, err
		}
		p.AddImage(placement, in.Image.Data, info.Format)
	}
	if p.Empty() {
		// Text of only whitespace plans to nothing; treat it like no input.
		return nil, errors.New(errors.ErrCodeEmptyInput, "nothing to render: text produced no lines")
	}
	return p, nil
}
