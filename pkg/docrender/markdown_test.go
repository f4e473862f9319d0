package docrender

import (
	"reflect"
	"testing"
)

func TestScanLine(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Line
	}{
		{"blank", "   ", Line{Kind: LineBlank}},
		{"title", "# ARRÊTÉ N° 12", Line{Kind: LineTitle, Text: "ARRÊTÉ N° 12"}},
		{"heading", "## VISAS", Line{Kind: LineHeading, Text: "VISAS"}},
		{"subheading", "### Détails", Line{Kind: LineSubheading, Text: "Détails"}},
		{"dash bullet", "- Vu la Constitution ;", Line{Kind: LineBullet, Text: "Vu la Constitution ;"}},
		{"star bullet", "* premier point", Line{Kind: LineBullet, Text: "premier point"}},
		{"numbered", "12. douzième point", Line{Kind: LineNumbered, Number: "12.", Text: "douzième point"}},
		{
			"bold bullet",
			"- **Vu** la Constitution ;",
			Line{
				Kind: LineBullet,
				Text: "Vu la Constitution ;",
				Segments: []Segment{
					{Text: "Vu", Bold: true},
					{Text: " la Constitution ;", Bold: false},
				},
			},
		},
		{
			"bold numbered",
			"1. **Article 1er:** Il est créé une commission.",
			Line{
				Kind:   LineNumbered,
				Number: "1.",
				Text:   "Article 1er: Il est créé une commission.",
				Segments: []Segment{
					{Text: "Article 1er:", Bold: true},
					{Text: " Il est créé une commission.", Bold: false},
				},
			},
		},
		{"paragraph", "Le présent arrêté prend effet.", Line{Kind: LineParagraph, Text: "Le présent arrêté prend effet."}},
		{
			"bold run",
			"**Article 1er:** Il est créé une commission.",
			Line{
				Kind: LineBoldRun,
				Text: "Article 1er: Il est créé une commission.",
				Segments: []Segment{
					{Text: "Article 1er:", Bold: true},
					{Text: " Il est créé une commission.", Bold: false},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScanLine(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ScanLine(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestScanLineNumberedRequiresSpace(t *testing.T) {
	got := ScanLine("3.14 est une approximation")
	if got.Kind != LineParagraph {
		t.Errorf("decimal number classified as %v, want paragraph", got.Kind)
	}
}

func TestScanHandlesWindowsLineEndings(t *testing.T) {
	lines := Scan("# Titre\r\n\r\ncorps")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0].Kind != LineTitle || lines[1].Kind != LineBlank || lines[2].Kind != LineParagraph {
		t.Errorf("kinds = %v %v %v", lines[0].Kind, lines[1].Kind, lines[2].Kind)
	}
}

func TestSplitBoldAlternatesWeights(t *testing.T) {
	segments := splitBold("début **gras** milieu **encore** fin")
	want := []Segment{
		{Text: "début ", Bold: false},
		{Text: "gras", Bold: true},
		{Text: " milieu ", Bold: false},
		{Text: "encore", Bold: true},
		{Text: " fin", Bold: false},
	}
	if !reflect.DeepEqual(segments, want) {
		t.Errorf("splitBold() = %+v, want %+v", segments, want)
	}
}
