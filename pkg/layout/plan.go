package layout

// Command is one drawing instruction placed on a page.
// The two variants are TextLine and Image. Commands are immutable once
// appended to a Plan.
type Command interface {
	command()
}

// TextLine places one wrapped line of text at a baseline position.
type TextLine struct {
	X        float64
	Y        float64
	Content  string
	FontSize float64
}

func (TextLine) command() {}

// Image places decoded raster data inside a draw rectangle.
// X and Y address the bottom-left corner of the rectangle.
type Image struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Data   []byte
	Format ImageFormat
}

func (Image) command() {}

// Page is an ordered list of commands for one physical page.
type Page struct {
	Commands []Command
}

// Cursor tracks the planner's position: the page index and the y where the
// next line of text would be placed.
type Cursor struct {
	Page int
	Y    float64
}

// Remaining returns the vertical space left below the cursor on its page.
// The result is negative when the cursor has fallen past the bottom margin.
func (c Cursor) Remaining(cfg Config) float64 {
	return c.Y - cfg.MarginBottom
}

// Plan is the ordered set of pages produced by planning, plus the cursor
// the planner ended on.
type Plan struct {
	Pages  []Page
	Cursor Cursor
}

// append adds cmd to the given page, growing the page list as needed.
// Pages are created lazily so a trailing cursor position never produces
// an empty page.
func (p *Plan) append(page int, cmd Command) {
	for len(p.Pages) <= page {
		p.Pages = append(p.Pages, Page{})
	}
	p.Pages[page].Commands = append(p.Pages[page].Commands, cmd)
}

// AddImage appends an image command on the placement's page, after any text
// already planned there. The page is created if the placement overflowed
// past the last text page.
func (p *Plan) AddImage(placement ImagePlacement, data []byte, format ImageFormat) {
	p.append(placement.Page, Image{
		X:      placement.X,
		Y:      placement.Y,
		Width:  placement.Width,
		Height: placement.Height,
		Data:   data,
		Format: format,
	})
	if placement.Page > p.Cursor.Page {
		p.Cursor = Cursor{Page: placement.Page, Y: placement.Y}
	} else {
		p.Cursor.Y = placement.Y
	}
}

// LineCount returns the total number of TextLine commands across all pages.
func (p *Plan) LineCount() int {
	n := 0
	for _, pg := range p.Pages {
		for _, cmd := range pg.Commands {
			if _, ok := cmd.(TextLine); ok {
				n++
			}
		}
	}
	return n
}

// Empty reports whether the plan contains no commands at all.
func (p *Plan) Empty() bool {
	for _, pg := range p.Pages {
		if len(pg.Commands) > 0 {
			return false
		}
	}
	return true
}
