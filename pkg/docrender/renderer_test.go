package docrender

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"strings"
	"testing"

	"hr-assistant-be/internal/constant"
)

// decodedStreams inflates every compressed stream of a rendered PDF so
// tests can assert on the drawn text. Streams that are not zlib data are
// skipped.
func decodedStreams(t *testing.T, raw []byte) string {
	t.Helper()
	marker := []byte(">>\nstream\n")
	var out bytes.Buffer
	rest := raw
	for {
		start := bytes.Index(rest, marker)
		if start < 0 {
			break
		}
		rest = rest[start+len(marker):]
		end := bytes.Index(rest, []byte("endstream"))
		if end < 0 {
			break
		}
		data := bytes.TrimSuffix(rest[:end], []byte("\n"))
		rest = rest[end:]

		r, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			continue
		}
		if _, err := io.Copy(&out, r); err != nil {
			t.Fatalf("inflate content stream: %v", err)
		}
		r.Close()
	}
	return out.String()
}

const sampleDecree = `# ARRÊTÉ N° 001/MFP/SG portant nomination

## VISAS
- Vu la Constitution ;
- Vu le statut général de la Fonction Publique ;

## ARRÊTE

**Article 1er:** Monsieur Ondo est nommé directeur.

**Article 2:** Le présent arrêté prend effet à compter de sa signature.`

func TestRenderProducesPDF(t *testing.T) {
	renderer := NewRenderer()
	out, err := renderer.Render(sampleDecree, Metadata{
		Title: "ARRÊTÉ N° 001/MFP/SG portant nomination",
		Type:  constant.DocumentTypeDecree,
		Date:  "12/03/2026",
	})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.HasPrefix(string(out), "%PDF") {
		t.Errorf("output does not start with a PDF header: %q", string(out[:8]))
	}
}

func TestRenderAllGenres(t *testing.T) {
	genres := []string{
		constant.DocumentTypeDecree,
		constant.DocumentTypeLetter,
		constant.DocumentTypeReport,
		constant.DocumentTypeNote,
	}
	renderer := NewRenderer()
	for _, genre := range genres {
		t.Run(genre, func(t *testing.T) {
			out, err := renderer.Render("## Objet\n\nCorps du document.", Metadata{
				Title:     "Document de test",
				Type:      genre,
				Author:    "Direction des Ressources Humaines",
				Date:      "12/03/2026",
				Reference: "N° 042/MFP/DRH",
			})
			if err != nil {
				t.Fatalf("Render(%s) error: %v", genre, err)
			}
			if len(out) == 0 {
				t.Fatalf("Render(%s) returned no bytes", genre)
			}
		})
	}
}

func TestRenderLongDocumentPaginates(t *testing.T) {
	var b strings.Builder
	b.WriteString("# RAPPORT sur les effectifs\n\n")
	for i := 0; i < 120; i++ {
		b.WriteString("Paragraphe décrivant la situation des effectifs du ministère, ")
		b.WriteString("avec suffisamment de texte pour occuper plusieurs lignes une fois replié.\n\n")
	}

	renderer := NewRenderer()
	out, err := renderer.Render(b.String(), Metadata{
		Title: "RAPPORT sur les effectifs",
		Type:  constant.DocumentTypeReport,
		Date:  "12/03/2026",
	})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	// A multi-hundred-line body cannot fit one A4 page; the PDF page tree
	// must hold more than one page object.
	raw := string(out)
	pages := strings.Count(raw, "/Type /Page") - strings.Count(raw, "/Type /Pages")
	if pages < 2 {
		t.Errorf("expected a paginated document, found %d page object(s)", pages)
	}
}

func TestRenderListItemsDropBoldMarkers(t *testing.T) {
	markdown := `## VISAS
- **Vu** la Constitution ;
- **Vu** le statut général de la Fonction Publique ;

1. **Article 1er:** Il est créé une commission.`

	renderer := NewRenderer()
	out, err := renderer.Render(markdown, Metadata{
		Title: "ARRÊTÉ N° 001/MFP/SG",
		Type:  constant.DocumentTypeDecree,
		Date:  "12/03/2026",
	})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	text := decodedStreams(t, out)
	if text == "" {
		t.Fatal("no content streams decoded")
	}
	if strings.Contains(text, "*") {
		t.Error("bold markers drawn literally into the page content")
	}
	for _, want := range []string{"Vu", "Constitution", "1er:", "commission."} {
		if !strings.Contains(text, want) {
			t.Errorf("item text %q missing from the page content", want)
		}
	}
}

func TestRenderStampsFooterOnEveryPage(t *testing.T) {
	var b strings.Builder
	b.WriteString("# RAPPORT sur les effectifs\n\n")
	for i := 0; i < 120; i++ {
		b.WriteString("Paragraphe décrivant la situation des effectifs du ministère, ")
		b.WriteString("avec suffisamment de texte pour occuper plusieurs lignes une fois replié.\n\n")
	}

	renderer := NewRenderer()
	out, err := renderer.Render(b.String(), Metadata{
		Title: "RAPPORT sur les effectifs",
		Type:  constant.DocumentTypeReport,
		Date:  "12/03/2026",
	})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	raw := string(out)
	total := strings.Count(raw, "/Type /Page") - strings.Count(raw, "/Type /Pages")
	if total < 2 {
		t.Fatalf("expected a paginated document, found %d page object(s)", total)
	}

	text := decodedStreams(t, out)
	for page := 1; page <= total; page++ {
		label := fmt.Sprintf("Page %d / %d", page, total)
		if !strings.Contains(text, label) {
			t.Errorf("footer %q missing", label)
		}
	}
	if strings.Contains(text, fmt.Sprintf("Page %d / %d", total+1, total)) {
		t.Error("footer stamped past the last page")
	}
}
