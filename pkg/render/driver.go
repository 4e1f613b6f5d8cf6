package render

import (
	"github.com/leafsense/leafreport/pkg/errors"
	"github.com/leafsense/leafreport/pkg/layout"
)

// driverState tracks the driver's lifecycle.
// Transitions are one-way: empty → building → serialized.
type driverState int

const (
	stateEmpty driverState = iota
	stateBuilding
	stateSerialized
)

// Driver renders a layout plan through a document writer.
// A Driver serves exactly one render: after Render returns, successfully or
// not, the Driver is spent and a fresh one (with a fresh writer) is needed.
type Driver struct {
	writer Writer
	cfg    layout.Config
	color  Color
	state  driverState
}

// NewDriver creates a driver over the given writer.
func NewDriver(w Writer, cfg layout.Config) *Driver {
	return &Driver{writer: w, cfg: cfg, color: Black, state: stateEmpty}
}

// Render walks the plan's pages in order, issues one writer call per
// command, and serializes the document.
//
// The font is embedded once and shared by every text command. Any writer
// failure aborts the render with a RENDER error; no bytes are returned for
// a partial document.
func (d *Driver) Render(plan *layout.Plan) ([]byte, error) {
	if d.state != stateEmpty {
		return nil, errors.New(errors.ErrCodeRender, "driver already used; a fresh render needs a fresh driver")
	}
	d.state = stateBuilding

	font, err := d.writer.EmbedFont(d.cfg.Metrics.Family())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "embed font %q", d.cfg.Metrics.Family())
	}

	for i, page := range plan.Pages {
		ref, err := d.writer.AddPage(d.cfg.PageWidth, d.cfg.PageHeight)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRender, err, "add page %d", i)
		}
		for _, cmd := range page.Commands {
			if err := d.draw(ref, font, cmd); err != nil {
				return nil, err
			}
		}
	}

	data, err := d.writer.Save()
	d.state = stateSerialized
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "serialize document")
	}
	return data, nil
}

func (d *Driver) draw(page PageRef, font FontRef, cmd layout.Command) error {
	switch c := cmd.(type) {
	case layout.TextLine:
		if err := d.writer.DrawText(page, font, c.X, c.Y, c.FontSize, d.color, c.Content); err != nil {
			return errors.Wrap(errors.ErrCodeRender, err, "draw text at (%g, %g)", c.X, c.Y)
		}
	case layout.Image:
		img, err := d.writer.EmbedImage(c.Data, c.Format)
		if err != nil {
			return errors.Wrap(errors.ErrCodeRender, err, "embed %s image", c.Format)
		}
		if err := d.writer.DrawImage(page, img, c.X, c.Y, c.Width, c.Height); err != nil {
			return errors.Wrap(errors.ErrCodeRender, err, "draw image at (%g, %g)", c.X, c.Y)
		}
	default:
		return errors.New(errors.ErrCodeInternal, "unknown draw command %T", cmd)
	}
	return nil
}
