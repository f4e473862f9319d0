package contextual

import (
	"context"
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	entries := []Entry{
		{
			Title:       "Avancement d'échelon",
			Category:    "carrière",
			Description: "Règles d'avancement automatique.",
			Content:     "L'avancement d'échelon intervient tous les deux ans.",
		},
		{
			Title:    "Congés annuels",
			Category: "absences",
			Content:  "Trente jours ouvrables par an.",
		},
	}

	got := Format(entries)
	want := "## Avancement d'échelon [carrière]\n" +
		"Règles d'avancement automatique.\n" +
		"L'avancement d'échelon intervient tous les deux ans.\n\n" +
		"## Congés annuels [absences]\n" +
		"Trente jours ouvrables par an."
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
}

func TestKnowledgeBlockCachesLoads(t *testing.T) {
	calls := 0
	load := func(ctx context.Context) ([]Entry, error) {
		calls++
		return []Entry{{Title: "Primes", Category: "rémunération", Content: "Liste des primes."}}, nil
	}
	assembler := NewAssembler(load, 15)

	first, err := assembler.KnowledgeBlock(context.Background())
	if err != nil {
		t.Fatalf("KnowledgeBlock() error: %v", err)
	}
	second, err := assembler.KnowledgeBlock(context.Background())
	if err != nil {
		t.Fatalf("KnowledgeBlock() second call error: %v", err)
	}

	if first != second {
		t.Errorf("cached block differs: %q vs %q", first, second)
	}
	if calls != 1 {
		t.Errorf("loader called %d times, want 1", calls)
	}
}

func TestKnowledgeBlockBoundsEntries(t *testing.T) {
	load := func(ctx context.Context) ([]Entry, error) {
		return []Entry{
			{Title: "A", Category: "c", Content: "a"},
			{Title: "B", Category: "c", Content: "b"},
			{Title: "C", Category: "c", Content: "c"},
		}, nil
	}
	assembler := NewAssembler(load, 2)

	got, err := assembler.KnowledgeBlock(context.Background())
	if err != nil {
		t.Fatalf("KnowledgeBlock() error: %v", err)
	}
	want := "## A [c]\na\n\n## B [c]\nb"
	if got != want {
		t.Errorf("KnowledgeBlock() = %q, want %q", got, want)
	}
}

func TestKnowledgeBlockPropagatesLoaderError(t *testing.T) {
	load := func(ctx context.Context) ([]Entry, error) {
		return nil, errors.New("store unavailable")
	}
	assembler := NewAssembler(load, 15)

	if _, err := assembler.KnowledgeBlock(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
}
