package docrender

import "strings"

// LineKind classifies one markdown source line. The scanner is a
// deliberately minimal single-pass line classifier, not a markdown AST:
// composed documents only ever use this subset.
type LineKind int

const (
	LineBlank LineKind = iota
	LineTitle
	LineHeading
	LineSubheading
	LineBullet
	LineNumbered
	LineBoldRun
	LineParagraph
)

// Segment is a run of text with a single weight, produced by splitting a
// line on ** markers.
type Segment struct {
	Text string
	Bold bool
}

// Line is one classified markdown line with its markers stripped.
type Line struct {
	Kind     LineKind
	Text     string
	Number   string    // set for LineNumbered ("1.", "12.")
	Segments []Segment // set for LineBoldRun and for list items containing ** runs
}

// Scan classifies every line of the markdown document.
func Scan(markdown string) []Line {
	raw := strings.Split(strings.ReplaceAll(markdown, "\r\n", "\n"), "\n")
	lines := make([]Line, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, ScanLine(l))
	}
	return lines
}

// ScanLine classifies a single line.
func ScanLine(raw string) Line {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		return Line{Kind: LineBlank}
	case strings.HasPrefix(trimmed, "### "):
		return Line{Kind: LineSubheading, Text: strings.TrimSpace(trimmed[4:])}
	case strings.HasPrefix(trimmed, "## "):
		return Line{Kind: LineHeading, Text: strings.TrimSpace(trimmed[3:])}
	case strings.HasPrefix(trimmed, "# "):
		return Line{Kind: LineTitle, Text: strings.TrimSpace(trimmed[2:])}
	case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
		return itemLine(LineBullet, "", strings.TrimSpace(trimmed[2:]))
	}

	if number, rest, ok := splitNumbered(trimmed); ok {
		return itemLine(LineNumbered, number, rest)
	}

	if strings.Contains(trimmed, "**") {
		return Line{Kind: LineBoldRun, Text: stripBold(trimmed), Segments: splitBold(trimmed)}
	}

	return Line{Kind: LineParagraph, Text: trimmed}
}

// itemLine builds a list item, carrying bold segments through so inline
// ** markers are never drawn literally.
func itemLine(kind LineKind, number, text string) Line {
	line := Line{Kind: kind, Number: number, Text: text}
	if strings.Contains(text, "**") {
		line.Text = stripBold(text)
		line.Segments = splitBold(text)
	}
	return line
}

// splitNumbered matches a leading "N. " ordinal.
func splitNumbered(s string) (number, rest string, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(s) || s[i] != '.' {
		return "", "", false
	}
	if i+1 >= len(s) || s[i+1] != ' ' {
		return "", "", false
	}
	return s[:i+1], strings.TrimSpace(s[i+2:]), true
}

// splitBold toggles weight on every ** marker, preserving line continuity.
func splitBold(s string) []Segment {
	parts := strings.Split(s, "**")
	segments := make([]Segment, 0, len(parts))
	for i, part := range parts {
		if part == "" {
			continue
		}
		segments = append(segments, Segment{Text: part, Bold: i%2 == 1})
	}
	return segments
}

func stripBold(s string) string {
	return strings.ReplaceAll(s, "**", "")
}
