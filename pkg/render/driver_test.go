package render

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/leafsense/leafreport/pkg/errors"
	"github.com/leafsense/leafreport/pkg/fonts"
	"github.com/leafsense/leafreport/pkg/layout"
)

// fakeWriter records every call in order and can be told to fail at any step.
type fakeWriter struct {
	calls     []string
	pages     int
	saved     []byte
	failEmbed bool
	failPage  bool
	failText  bool
	failImage bool
	failSave  bool
}

func (f *fakeWriter) AddPage(w, h float64) (PageRef, error) {
	if f.failPage {
		return 0, stderrors.New("page failure")
	}
	f.pages++
	f.calls = append(f.calls, fmt.Sprintf("AddPage(%g,%g)", w, h))
	return PageRef(f.pages), nil
}

func (f *fakeWriter) EmbedFont(family string) (FontRef, error) {
	if f.failEmbed {
		return 0, stderrors.New("font failure")
	}
	f.calls = append(f.calls, "EmbedFont("+family+")")
	return 1, nil
}

func (f *fakeWriter) DrawText(page PageRef, font FontRef, x, y, size float64, color Color, text string) error {
	if f.failText {
		return stderrors.New("text failure")
	}
	f.calls = append(f.calls, fmt.Sprintf("DrawText(p%d,%q)", page, text))
	return nil
}

func (f *fakeWriter) EmbedImage(data []byte, format layout.ImageFormat) (ImageRef, error) {
	if f.failImage {
		return 0, stderrors.New("image failure")
	}
	f.calls = append(f.calls, fmt.Sprintf("EmbedImage(%s)", format))
	return 1, nil
}

func (f *fakeWriter) DrawImage(page PageRef, img ImageRef, x, y, w, h float64) error {
	f.calls = append(f.calls, fmt.Sprintf("DrawImage(p%d)", page))
	return nil
}

func (f *fakeWriter) Save() ([]byte, error) {
	if f.failSave {
		return nil, stderrors.New("save failure")
	}
	f.calls = append(f.calls, "Save")
	f.saved = []byte("%DOC%")
	return f.saved, nil
}

func testConfig() layout.Config {
	cfg := layout.DefaultConfig()
	cfg.Metrics = fonts.Helvetica()
	return cfg
}

func textAndImagePlan(t *testing.T, cfg layout.Config) *layout.Plan {
	t.Helper()
	plan, err := layout.PlanText("first line\nsecond line", cfg)
	if err != nil {
		t.Fatalf("PlanText: %v", err)
	}
	placement, err := layout.PlaceImage(100, 80, 1.0, plan.Cursor, cfg)
	if err != nil {
		t.Fatalf("PlaceImage: %v", err)
	}
	plan.AddImage(placement, []byte{0xFF, 0xD8}, layout.FormatJPEG)
	return plan
}

func TestRenderCallOrder(t *testing.T) {
	cfg := testConfig()
	w := &fakeWriter{}
	data, err := NewDriver(w, cfg).Render(textAndImagePlan(t, cfg))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if string(data) != "%DOC%" {
		t.Errorf("unexpected bytes: %q", data)
	}

	want := []string{
		"EmbedFont(Helvetica)",
		fmt.Sprintf("AddPage(%g,%g)", cfg.PageWidth, cfg.PageHeight),
		`DrawText(p1,"first line")`,
		`DrawText(p1,"second line")`,
		"EmbedImage(JPEG)",
		"DrawImage(p1)",
		"Save",
	}
	if len(w.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", w.calls, want)
	}
	for i := range want {
		if w.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, w.calls[i], want[i])
		}
	}
}

func TestRenderFontEmbeddedOnce(t *testing.T) {
	cfg := testConfig()
	text := ""
	for i := 0; i < 200; i++ {
		text += "a line of body text that spans pages\n"
	}
	plan, err := layout.PlanText(text, cfg)
	if err != nil {
		t.Fatalf("PlanText: %v", err)
	}

	w := &fakeWriter{}
	if _, err := NewDriver(w, cfg).Render(plan); err != nil {
		t.Fatalf("Render: %v", err)
	}

	embeds := 0
	for _, c := range w.calls {
		if c == "EmbedFont(Helvetica)" {
			embeds++
		}
	}
	if embeds != 1 {
		t.Errorf("font embedded %d times, want once per document", embeds)
	}
	if w.pages < 2 {
		t.Errorf("expected a multi-page document, got %d pages", w.pages)
	}
}

func TestRenderDriverNotReusable(t *testing.T) {
	cfg := testConfig()
	plan, err := layout.PlanText("once", cfg)
	if err != nil {
		t.Fatalf("PlanText: %v", err)
	}

	d := NewDriver(&fakeWriter{}, cfg)
	if _, err := d.Render(plan); err != nil {
		t.Fatalf("first Render: %v", err)
	}
	if _, err := d.Render(plan); !errors.Is(err, errors.ErrCodeRender) {
		t.Errorf("second Render error = %v, want RENDER", err)
	}
}

func TestRenderFailures(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name   string
		writer *fakeWriter
	}{
		{"font", &fakeWriter{failEmbed: true}},
		{"page", &fakeWriter{failPage: true}},
		{"text", &fakeWriter{failText: true}},
		{"image", &fakeWriter{failImage: true}},
		{"save", &fakeWriter{failSave: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := NewDriver(tt.writer, cfg).Render(textAndImagePlan(t, cfg))
			if !errors.Is(err, errors.ErrCodeRender) {
				t.Errorf("error = %v, want RENDER", err)
			}
			if data != nil {
				t.Error("no bytes may escape a failed render")
			}
		})
	}
}
