package docrender

import "testing"

func TestAdvanceStaysOnPage(t *testing.T) {
	c, broke := A4.Advance(Cursor{Page: 1, Y: A4.MarginTop}, 16)
	if broke {
		t.Fatal("unexpected page break near the top of the page")
	}
	if c.Page != 1 || c.Y != A4.MarginTop+16 {
		t.Errorf("cursor = %+v", c)
	}
}

func TestAdvanceBreaksAtFloor(t *testing.T) {
	start := Cursor{Page: 2, Y: A4.Floor() - 1}
	c, broke := A4.Advance(start, 16)
	if !broke {
		t.Fatal("expected a page break when crossing the floor")
	}
	if c.Page != 3 {
		t.Errorf("page = %d, want 3", c.Page)
	}
	if c.Y != A4.MarginTop+16 {
		t.Errorf("y = %f, want %f", c.Y, A4.MarginTop+16)
	}
}

// The cursor invariant: however many lines are emitted, Y never exceeds the
// floor after an advance.
func TestAdvanceNeverExceedsFloor(t *testing.T) {
	c := Cursor{Page: 1, Y: A4.MarginTop}
	const lineHeight = 15.95
	for i := 0; i < 500; i++ {
		c, _ = A4.Advance(c, lineHeight)
		if c.Y > A4.Floor() {
			t.Fatalf("line %d: y = %f exceeds floor %f", i, c.Y, A4.Floor())
		}
	}
	if c.Page < 2 {
		t.Errorf("500 lines fit on %d page(s), pagination never triggered", c.Page)
	}
}

func TestWrap(t *testing.T) {
	// Fake measurer: every rune is 1 unit wide.
	measure := func(s string) float64 { return float64(len([]rune(s))) }

	tests := []struct {
		name  string
		text  string
		width float64
		want  []string
	}{
		{"fits on one line", "un deux trois", 20, []string{"un deux trois"}},
		{"breaks on spaces", "un deux trois", 7, []string{"un deux", "trois"}},
		{"oversized word kept whole", "anticonstitutionnellement oui", 10, []string{"anticonstitutionnellement", "oui"}},
		{"empty", "   ", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.width, measure)
			if len(got) != len(tt.want) {
				t.Fatalf("Wrap() = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
