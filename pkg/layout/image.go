package layout

import (
	"bytes"
	"image"

	// Registered for image.DecodeConfig; only these two formats are accepted.
	_ "image/jpeg"
	_ "image/png"

	"github.com/leafsense/leafreport/pkg/errors"
)

// ImageFormat identifies an accepted raster encoding.
type ImageFormat string

// Accepted image encodings. Anything else is rejected at the boundary
// before a decode is attempted.
const (
	FormatJPEG ImageFormat = "JPEG"
	FormatPNG  ImageFormat = "PNG"
)

// mimeFormats maps explicit mime tags to formats. Detection is tag-driven:
// the payload is never sniffed to pick a format.
var mimeFormats = map[string]ImageFormat{
	"image/jpeg": FormatJPEG,
	"image/jpg":  FormatJPEG,
	"image/png":  FormatPNG,
}

// decodeNames maps the format names reported by image.DecodeConfig back to
// the accepted formats, used to verify the payload agrees with its tag.
var decodeNames = map[string]ImageFormat{
	"jpeg": FormatJPEG,
	"png":  FormatPNG,
}

// ParseImageFormat validates a mime tag and maps it to a format.
func ParseImageFormat(mime string) (ImageFormat, error) {
	if err := errors.ValidateMimeType(mime); err != nil {
		return "", err
	}
	format, ok := mimeFormats[mime]
	if !ok {
		return "", errors.New(errors.ErrCodeUnsupportedImageFormat, "unsupported image format: %q (accepted: image/jpeg, image/png)", mime)
	}
	return format, nil
}

// ImageInfo describes a validated image payload.
type ImageInfo struct {
	Format ImageFormat
	Width  int // natural width in pixels
	Height int // natural height in pixels
}

// InspectImage validates the mime tag, then reads the payload header for the
// natural pixel dimensions. A payload that cannot be decoded, or whose actual
// encoding disagrees with its tag, is an IMAGE_DECODE error.
func InspectImage(data []byte, mime string) (ImageInfo, error) {
	format, err := ParseImageFormat(mime)
	if err != nil {
		return ImageInfo{}, err
	}
	if len(data) == 0 {
		return ImageInfo{}, errors.New(errors.ErrCodeImageDecode, "image payload is empty")
	}

	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ImageInfo{}, errors.Wrap(errors.ErrCodeImageDecode, err, "undecodable %s payload", format)
	}
	if decodeNames[name] != format {
		return ImageInfo{}, errors.New(errors.ErrCodeImageDecode, "payload is %s but was tagged %q", name, mime)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return ImageInfo{}, errors.New(errors.ErrCodeImageDecode, "image has no pixels (%dx%d)", cfg.Width, cfg.Height)
	}
	return ImageInfo{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

// ImagePlacement is the resolved page and draw rectangle for an image.
// X and Y address the bottom-left corner of the rectangle.
type ImagePlacement struct {
	Page   int
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// PlaceImage decides where an image of the given natural pixel size lands,
// given the cursor the text planner ended on.
//
// The draw size is natural dimensions times scale, shrunk further if needed
// to fit between the horizontal margins. If the scaled height fits in the
// space remaining under the cursor, the image goes on the cursor's page,
// separated from the text above by cfg.ImageGap. Otherwise it starts a new
// page at the top margin; if it cannot fit even a fresh page, the caller
// gets an IMAGE_TOO_TALL error and should reduce the scale.
func PlaceImage(naturalW, naturalH int, scale float64, cur Cursor, cfg Config) (ImagePlacement, error) {
	if err := cfg.Validate(); err != nil {
		return ImagePlacement{}, err
	}
	if err := errors.ValidateScale(scale); err != nil {
		return ImagePlacement{}, err
	}
	if naturalW <= 0 || naturalH <= 0 {
		return ImagePlacement{}, errors.New(errors.ErrCodeImageDecode, "image has no pixels (%dx%d)", naturalW, naturalH)
	}

	width := float64(naturalW) * scale
	height := float64(naturalH) * scale

	// Clip to the horizontal margins, preserving aspect ratio.
	if maxW := cfg.MaxImageWidth(); width > maxW {
		height *= maxW / width
		width = maxW
	}

	if height > cfg.UsableHeight() {
		return ImagePlacement{}, errors.New(errors.ErrCodeImageTooTall,
			"image %.0fx%.0fpt exceeds usable page height %.0fpt; reduce scale", width, height, cfg.UsableHeight())
	}

	// Fresh page position: no text above, no gap needed.
	if cur.Y >= cfg.TopY() {
		return ImagePlacement{
			Page:   cur.Page,
			X:      cfg.MarginLeft,
			Y:      cfg.TopY() - height,
			Width:  width,
			Height: height,
		}, nil
	}

	if height+cfg.ImageGap <= cur.Remaining(cfg) {
		return ImagePlacement{
			Page:   cur.Page,
			X:      cfg.MarginLeft,
			Y:      cur.Y - height - cfg.ImageGap,
			Width:  width,
			Height: height,
		}, nil
	}

	return ImagePlacement{
		Page:   cur.Page + 1,
		X:      cfg.MarginLeft,
		Y:      cfg.TopY() - height,
		Width:  width,
		Height: height,
	}, nil
}
