// Package fonts provides glyph advance metrics for the report typeface.
//
// The text flow planner needs per-character advance widths to wrap lines
// without asking the document writer to measure anything. Metrics are kept
// in the standard 1/1000-em units used by Type1 font programs, so a string
// width in points is sum(advances) * size / 1000.
package fonts

// Metrics holds per-rune advance widths for a font family.
type Metrics struct {
	family       string
	widths       map[rune]int
	defaultWidth int
}

// Family returns the font family name, as understood by the document writer.
func (m *Metrics) Family() string {
	return m.family
}

// Advance returns the advance width of r in 1/1000-em units.
// Unknown runes fall back to the font's default width so that wrapping
// stays conservative rather than overflowing the line.
func (m *Metrics) Advance(r rune) int {
	if w, ok := m.widths[r]; ok {
		return w
	}
	return m.defaultWidth
}

// StringWidth returns the width of s in points when set at the given size.
func (m *Metrics) StringWidth(s string, size float64) float64 {
	total := 0
	for _, r := range s {
		total += m.Advance(r)
	}
	return float64(total) * size / 1000
}
