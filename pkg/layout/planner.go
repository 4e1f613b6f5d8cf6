package layout

import "strings"

// PlanText flows text into positioned line commands.
//
// The input is split into logical lines at newline characters; each logical
// line is greedily word-wrapped against cfg.MaxLineWidth() using the font
// metrics. Lines are placed top to bottom starting at cfg.TopY(); when less
// than a full line height remains above the bottom margin, planning
// continues at the top of a new page. No input is ever dropped.
//
// Empty text produces a plan with no commands and the cursor at the top of
// page zero. Blank logical lines consume vertical space but emit no command.
func PlanText(text string, cfg Config) (*Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	plan := &Plan{Cursor: Cursor{Page: 0, Y: cfg.TopY()}}
	if text == "" {
		return plan, nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, logical := range strings.Split(text, "\n") {
		wrapped := wrapLine(logical, cfg)
		if len(wrapped) == 0 {
			// Blank line: keep the paragraph gap without drawing anything.
			advance(plan, cfg)
			continue
		}
		for _, content := range wrapped {
			if plan.Cursor.Y-cfg.LineHeight < cfg.MarginBottom {
				breakPage(plan, cfg)
			}
			plan.append(plan.Cursor.Page, TextLine{
				X:        cfg.MarginLeft,
				Y:        plan.Cursor.Y,
				Content:  content,
				FontSize: cfg.FontSize,
			})
			plan.Cursor.Y -= cfg.LineHeight
		}
	}
	return plan, nil
}

// wrapLine splits one logical line into physical lines no wider than the
// configured maximum. Words are accumulated greedily; a single word wider
// than the maximum is placed on its own line without hyphenation.
func wrapLine(logical string, cfg Config) []string {
	words := strings.Fields(logical)
	if len(words) == 0 {
		return nil
	}

	maxWidth := cfg.MaxLineWidth()
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if cfg.Metrics.StringWidth(candidate, cfg.FontSize) > maxWidth {
			lines = append(lines, current)
			current = word
		} else {
			current = candidate
		}
	}
	return append(lines, current)
}

// advance moves the cursor down one line, breaking the page first when the
// remaining space is less than a line height.
func advance(plan *Plan, cfg Config) {
	if plan.Cursor.Y-cfg.LineHeight < cfg.MarginBottom {
		breakPage(plan, cfg)
	}
	plan.Cursor.Y -= cfg.LineHeight
}

// breakPage moves the cursor to the top of the next page.
func breakPage(plan *Plan, cfg Config) {
	plan.Cursor.Page++
	plan.Cursor.Y = cfg.TopY()
}
