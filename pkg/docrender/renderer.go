package docrender

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"hr-assistant-be/internal/constant"
)

const fontFamily = "Helvetica"

// Metadata is the descriptive header of a rendered document. Type drives
// which header and footer conventions apply.
type Metadata struct {
	Title     string
	Type      string
	Author    string
	Date      string
	Reference string
}

// Style holds the font sizes and spacing of a rendering. Zero values are
// replaced by DefaultStyle at render time.
type Style struct {
	BodyFontSize       float64
	TitleFontSize      float64
	HeadingFontSize    float64
	SubheadingFontSize float64
	FooterFontSize     float64
	LineSpacing        float64
}

func DefaultStyle() Style {
	return Style{
		BodyFontSize:       11,
		TitleFontSize:      14,
		HeadingFontSize:    12,
		SubheadingFontSize: 11.5,
		FooterFontSize:     9,
		LineSpacing:        1.45,
	}
}

// Renderer lays out composed markdown into a paginated official document.
type Renderer struct {
	Geometry PageGeometry
	Style    Style
}

func NewRenderer() *Renderer {
	return &Renderer{Geometry: A4, Style: DefaultStyle()}
}

// Render produces the PDF bytes for the document. Layout is driven by an
// explicit cursor; pages break whenever a projected baseline would cross
// the floor. Footers are stamped in a second pass once the total page
// count is known.
func (r *Renderer) Render(markdown string, meta Metadata) (out []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("render panic: %v", rec)
		}
	}()

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(meta.Title, true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	st := &emitState{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		geo:    r.Geometry,
		style:  r.Style.withDefaults(),
		cursor: Cursor{Page: 1, Y: r.Geometry.MarginTop},
	}

	st.masthead()
	st.genreHeader(meta)
	st.title(meta.Title)
	st.body(Scan(markdown))
	if meta.Type == constant.DocumentTypeDecree {
		st.signatureBlock()
	}
	st.footers()

	if pdf.Err() {
		return nil, fmt.Errorf("render document: %w", pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write document: %w", err)
	}
	return buf.Bytes(), nil
}

func (s Style) withDefaults() Style {
	def := DefaultStyle()
	if s.BodyFontSize <= 0 {
		s.BodyFontSize = def.BodyFontSize
	}
	if s.TitleFontSize <= 0 {
		s.TitleFontSize = def.TitleFontSize
	}
	if s.HeadingFontSize <= 0 {
		s.HeadingFontSize = def.HeadingFontSize
	}
	if s.SubheadingFontSize <= 0 {
		s.SubheadingFontSize = def.SubheadingFontSize
	}
	if s.FooterFontSize <= 0 {
		s.FooterFontSize = def.FooterFontSize
	}
	if s.LineSpacing <= 0 {
		s.LineSpacing = def.LineSpacing
	}
	return s
}

// emitState carries the cursor and drawing helpers through one rendering.
type emitState struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	geo    PageGeometry
	style  Style
	cursor Cursor
}

func (s *emitState) lineHeight(size float64) float64 {
	return size * s.style.LineSpacing
}

// advance moves the cursor down by h, emitting a fresh page first when the
// projected baseline would cross the floor.
func (s *emitState) advance(h float64) {
	next, broke := s.geo.Advance(s.cursor, h)
	if broke {
		s.pdf.AddPage()
	}
	s.cursor = next
}

func (s *emitState) blank() {
	s.advance(s.lineHeight(s.style.BodyFontSize) / 2)
}

func (s *emitState) centered(text string, size float64, fontStyle string) {
	s.pdf.SetFont(fontFamily, fontStyle, size)
	translated := s.tr(text)
	for _, line := range Wrap(translated, s.geo.UsableWidth(), s.pdf.GetStringWidth) {
		s.advance(s.lineHeight(size))
		w := s.pdf.GetStringWidth(line)
		s.pdf.Text((s.geo.Width-w)/2, s.cursor.Y, line)
	}
}

func (s *emitState) left(text string, size float64, fontStyle string, indent float64) {
	s.pdf.SetFont(fontFamily, fontStyle, size)
	translated := s.tr(text)
	for _, line := range Wrap(translated, s.geo.UsableWidth()-indent, s.pdf.GetStringWidth) {
		s.advance(s.lineHeight(size))
		s.pdf.Text(s.geo.MarginLeft+indent, s.cursor.Y, line)
	}
}

func (s *emitState) right(text string, size float64, fontStyle string) {
	s.pdf.SetFont(fontFamily, fontStyle, size)
	translated := s.tr(text)
	s.advance(s.lineHeight(size))
	w := s.pdf.GetStringWidth(translated)
	s.pdf.Text(s.geo.Width-s.geo.MarginRight-w, s.cursor.Y, translated)
}

// masthead emits the fixed country header shared by every genre.
func (s *emitState) masthead() {
	s.centered(constant.MastheadCountry, 12, "B")
	s.centered(constant.MastheadMotto, 10, "I")
}

// genreHeader emits the block between the masthead and the title. Decrees
// center the ministry and act number; the other genres use a left-aligned
// administrative block with a right-aligned date line.
func (s *emitState) genreHeader(meta Metadata) {
	s.blank()
	if meta.Type == constant.DocumentTypeDecree {
		s.centered(constant.MastheadMinistry, 11, "B")
		reference := meta.Reference
		if reference == "" {
			reference = "N° ______/MFP/SG"
		}
		s.centered(reference, 10, "")
		s.blank()
		return
	}

	s.left(constant.MastheadMinistry, 10, "B", 0)
	if meta.Author != "" {
		s.left(meta.Author, 10, "", 0)
	}
	if meta.Reference != "" {
		s.left("Réf. : "+meta.Reference, 10, "", 0)
	}
	if meta.Date != "" {
		s.right("Libreville, le "+meta.Date, 10, "")
	}
	s.blank()
}

func (s *emitState) title(title string) {
	s.blank()
	s.centered(title, s.style.TitleFontSize, "B")
	s.blank()
}

func (s *emitState) body(lines []Line) {
	for _, line := range lines {
		switch line.Kind {
		case LineBlank:
			s.blank()
		case LineTitle:
			s.blank()
			s.centered(line.Text, s.style.TitleFontSize, "B")
		case LineHeading:
			s.blank()
			s.left(line.Text, s.style.HeadingFontSize, "B", 0)
		case LineSubheading:
			s.left(line.Text, s.style.SubheadingFontSize, "B", 0)
		case LineBullet:
			s.marker("•", line)
		case LineNumbered:
			s.marker(line.Number, line)
		case LineBoldRun:
			s.boldRun(line.Segments)
		default:
			s.left(line.Text, s.style.BodyFontSize, "", 0)
		}
	}
}

// marker draws a bullet glyph or ordinal, then the item text indented past
// it with a hanging indent on wrapped lines. Items carrying bold segments
// are flowed per segment instead of wrapped as plain text.
func (s *emitState) marker(glyph string, line Line) {
	const indent = 18.0
	size := s.style.BodyFontSize

	if len(line.Segments) > 0 {
		s.advance(s.lineHeight(size))
		s.pdf.SetFont(fontFamily, "", size)
		s.pdf.Text(s.geo.MarginLeft, s.cursor.Y, s.tr(glyph))
		s.flow(line.Segments, s.geo.MarginLeft+indent)
		return
	}

	s.pdf.SetFont(fontFamily, "", size)
	translated := s.tr(line.Text)
	lines := Wrap(translated, s.geo.UsableWidth()-indent, s.pdf.GetStringWidth)
	for i, wrapped := range lines {
		s.advance(s.lineHeight(size))
		if i == 0 {
			s.pdf.Text(s.geo.MarginLeft, s.cursor.Y, s.tr(glyph))
		}
		s.pdf.Text(s.geo.MarginLeft+indent, s.cursor.Y, wrapped)
	}
}

// boldRun draws a mixed-weight line starting at the left margin.
func (s *emitState) boldRun(segments []Segment) {
	s.advance(s.lineHeight(s.style.BodyFontSize))
	s.flow(segments, s.geo.MarginLeft)
}

// flow draws segments word by word from leftX, toggling the font weight per
// segment and wrapping back to leftX at the right margin. The caller has
// already advanced onto the first writing line.
func (s *emitState) flow(segments []Segment, leftX float64) {
	size := s.style.BodyFontSize
	h := s.lineHeight(size)
	x := leftX
	limit := s.geo.Width - s.geo.MarginRight

	for _, segment := range segments {
		fontStyle := ""
		if segment.Bold {
			fontStyle = "B"
		}
		s.pdf.SetFont(fontFamily, fontStyle, size)
		for _, word := range strings.Fields(s.tr(segment.Text)) {
			chunk := word + " "
			w := s.pdf.GetStringWidth(chunk)
			if x+w > limit {
				s.advance(h)
				x = leftX
			}
			s.pdf.Text(x, s.cursor.Y, chunk)
			x += w
		}
	}
}

// signatureBlock closes a decree with the minister's signature space and
// the distribution list.
func (s *emitState) signatureBlock() {
	s.blank()
	s.blank()
	s.right(constant.DecreeSignatureTitle, s.style.BodyFontSize, "B")
	for i := 0; i < 4; i++ {
		s.blank()
	}
	s.left(constant.DecreeDistribution, s.style.FooterFontSize, "", 0)
}

// footers stamps "Page i / N" centered at the bottom of every page. The
// total is only known once the body is laid out, hence the second pass.
func (s *emitState) footers() {
	total := s.pdf.PageCount()
	s.pdf.SetFont(fontFamily, "I", s.style.FooterFontSize)
	for page := 1; page <= total; page++ {
		s.pdf.SetPage(page)
		label := fmt.Sprintf("Page %d / %d", page, total)
		w := s.pdf.GetStringWidth(label)
		s.pdf.Text((s.geo.Width-w)/2, s.geo.Height-s.geo.MarginBottom/2, label)
	}
}
