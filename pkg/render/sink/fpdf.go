// Package sink provides document writer implementations for the render driver.
package sink

import (
	"bytes"
	"fmt"
	"time"

	"codeberg.org/go-pdf/fpdf"

	"github.com/leafsense/leafreport/pkg/layout"
	"github.com/leafsense/leafreport/pkg/render"
)

// Option configures the PDF writer.
type Option func(*pdfWriter)

// WithCreationDate pins the document's creation and modification dates.
// The embedded timestamp is the only source of nondeterminism in the
// output, so fixing it makes serialization reproducible.
func WithCreationDate(t time.Time) Option {
	return func(w *pdfWriter) { w.created = t }
}

// pdfWriter implements render.Writer on top of fpdf.
//
// fpdf addresses pages from the top-left corner with y increasing downward;
// the render.Writer contract is bottom-left with y increasing upward, so
// every draw call flips y against the page height.
type pdfWriter struct {
	pdf     *fpdf.Fpdf
	pageH   float64
	fonts   []string
	images  []embeddedImage
	created time.Time
	saved   bool
}

type embeddedImage struct {
	name   string
	format layout.ImageFormat
}

// NewPDF creates a PDF document writer with the given page size in points.
func NewPDF(pageW, pageH float64, opts ...Option) render.Writer {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	// The planner owns pagination; fpdf must never break pages on its own.
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)

	w := &pdfWriter{pdf: pdf, pageH: pageH}
	for _, opt := range opts {
		opt(w)
	}
	if !w.created.IsZero() {
		pdf.SetCreationDate(w.created)
		pdf.SetModificationDate(w.created)
	}
	return w
}

func (w *pdfWriter) AddPage(width, height float64) (render.PageRef, error) {
	w.pdf.AddPageFormat("P", fpdf.SizeType{Wd: width, Ht: height})
	if err := w.err(); err != nil {
		return 0, err
	}
	return render.PageRef(w.pdf.PageNo()), nil
}

func (w *pdfWriter) EmbedFont(family string) (render.FontRef, error) {
	w.pdf.SetFont(family, "", layout.DefaultFontSize)
	if err := w.err(); err != nil {
		return 0, fmt.Errorf("font %q: %w", family, err)
	}
	w.fonts = append(w.fonts, family)
	return render.FontRef(len(w.fonts) - 1), nil
}

func (w *pdfWriter) DrawText(page render.PageRef, font render.FontRef, x, y, size float64, color render.Color, text string) error {
	if int(font) >= len(w.fonts) {
		return fmt.Errorf("unknown font ref %d", font)
	}
	if err := w.setPage(page); err != nil {
		return err
	}
	w.pdf.SetFont(w.fonts[font], "", size)
	w.pdf.SetTextColor(int(color.R), int(color.G), int(color.B))
	w.pdf.Text(x, w.pageH-y, text)
	return w.err()
}

func (w *pdfWriter) EmbedImage(data []byte, format layout.ImageFormat) (render.ImageRef, error) {
	name := fmt.Sprintf("report-image-%d", len(w.images))
	opts := fpdf.ImageOptions{ImageType: string(format)}
	info := w.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if err := w.err(); err != nil {
		return 0, fmt.Errorf("register %s image: %w", format, err)
	}
	if info == nil {
		return 0, fmt.Errorf("register %s image: no image info", format)
	}
	w.images = append(w.images, embeddedImage{name: name, format: format})
	return render.ImageRef(len(w.images) - 1), nil
}

func (w *pdfWriter) DrawImage(page render.PageRef, img render.ImageRef, x, y, width, height float64) error {
	if int(img) >= len(w.images) {
		return fmt.Errorf("unknown image ref %d", img)
	}
	if err := w.setPage(page); err != nil {
		return err
	}
	emb := w.images[img]
	top := w.pageH - y - height
	w.pdf.ImageOptions(emb.name, x, top, width, height, false, fpdf.ImageOptions{ImageType: string(emb.format)}, 0, "")
	return w.err()
}

func (w *pdfWriter) Save() ([]byte, error) {
	if w.saved {
		return nil, fmt.Errorf("document already serialized")
	}
	var buf bytes.Buffer
	if err := w.pdf.Output(&buf); err != nil {
		return nil, err
	}
	w.saved = true
	return buf.Bytes(), nil
}

// setPage makes the referenced page current. Pages are created by AddPage
// in order, so the reference must be a page fpdf already knows.
func (w *pdfWriter) setPage(page render.PageRef) error {
	n := int(page)
	if n < 1 || n > w.pdf.PageCount() {
		return fmt.Errorf("unknown page ref %d", page)
	}
	if w.pdf.PageNo() != n {
		w.pdf.SetPage(n)
	}
	return w.err()
}

func (w *pdfWriter) err() error {
	if w.pdf.Err() {
		return w.pdf.Error()
	}
	return nil
}

var _ render.Writer = (*pdfWriter)(nil)
