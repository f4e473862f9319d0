package docrender

import "strings"

// PageGeometry describes the printable area in points.
type PageGeometry struct {
	Width        float64
	Height       float64
	MarginTop    float64
	MarginBottom float64
	MarginLeft   float64
	MarginRight  float64
	SafetyMargin float64
}

// A4 is the default geometry: 210×297 mm expressed in points, with 2 cm
// margins and a small safety band above the footer.
var A4 = PageGeometry{
	Width:        595.28,
	Height:       841.89,
	MarginTop:    56.69,
	MarginBottom: 56.69,
	MarginLeft:   56.69,
	MarginRight:  56.69,
	SafetyMargin: 14.17,
}

// UsableWidth is the horizontal space available to a text line.
func (g PageGeometry) UsableWidth() float64 {
	return g.Width - g.MarginLeft - g.MarginRight
}

// Floor is the lowest vertical offset a baseline may occupy.
func (g PageGeometry) Floor() float64 {
	return g.Height - g.MarginBottom - g.SafetyMargin
}

// Cursor is the renderer's position during pagination: current page (1-based)
// and the vertical offset of the next baseline.
type Cursor struct {
	Page int
	Y    float64
}

// Advance consumes vertical space h and returns the resulting cursor. When
// the projected baseline would cross the floor the cursor moves to the top
// of a fresh page; the second return reports that break so the caller can
// emit the page before drawing.
func (g PageGeometry) Advance(c Cursor, h float64) (Cursor, bool) {
	projected := c.Y + h
	if projected > g.Floor() {
		return Cursor{Page: c.Page + 1, Y: g.MarginTop + h}, true
	}
	return Cursor{Page: c.Page, Y: projected}, false
}

// Measurer returns the rendered width of a string in the current font.
type Measurer func(text string) float64

// Wrap splits text into lines no wider than width, breaking on spaces. A
// single word wider than the line is emitted on its own rather than split.
func Wrap(text string, width float64, measure Measurer) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(candidate) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}
