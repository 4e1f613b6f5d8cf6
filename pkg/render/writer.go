package render

import "github.com/leafsense/leafreport/pkg/layout"

// PageRef identifies a page previously created in the writer.
type PageRef int

// FontRef identifies a font previously embedded in the writer.
type FontRef int

// ImageRef identifies an image previously embedded in the writer.
type ImageRef int

// Color is an RGB text color.
type Color struct {
	R, G, B uint8
}

// Black is the default text color.
var Black = Color{}

// Writer is the document writer consumed by the driver.
//
// Coordinates passed to draw calls use the page's bottom-left corner as
// origin with y increasing upward, in points — the same convention the
// layout package plans in. Implementations convert to their native system.
//
// A Writer instance belongs to exactly one document: it is not reusable
// after Save and not safe for concurrent use.
type Writer interface {
	// AddPage appends a page of the given size and makes it current.
	AddPage(width, height float64) (PageRef, error)

	// EmbedFont registers a font family for use by DrawText.
	EmbedFont(family string) (FontRef, error)

	// DrawText draws a single line of text with its baseline at (x, y).
	DrawText(page PageRef, font FontRef, x, y, size float64, color Color, text string) error

	// EmbedImage registers encoded image data for use by DrawImage.
	EmbedImage(data []byte, format layout.ImageFormat) (ImageRef, error)

	// DrawImage draws a registered image into the rectangle whose
	// bottom-left corner is (x, y).
	DrawImage(page PageRef, img ImageRef, x, y, width, height float64) error

	// Save serializes the whole document and returns its bytes.
	Save() ([]byte, error)
}
