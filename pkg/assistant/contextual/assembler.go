package contextual

import (
	"context"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Entry is one knowledge fact made available to the language model.
type Entry struct {
	Title       string
	Category    string
	Description string
	Content     string
}

const knowledgeCacheKey = "knowledge-block"

// Assembler builds the knowledge context block for a turn. The knowledge
// store changes rarely, so the formatted block is cached briefly instead of
// re-reading on every turn.
type Assembler struct {
	load       func(ctx context.Context) ([]Entry, error)
	maxEntries int
	cache      *gocache.Cache
}

func NewAssembler(load func(ctx context.Context) ([]Entry, error), maxEntries int) *Assembler {
	return &Assembler{
		load:       load,
		maxEntries: maxEntries,
		cache:      gocache.New(60*time.Second, 5*time.Minute),
	}
}

// KnowledgeBlock returns the formatted knowledge context. An empty store is
// a valid state and yields an empty string, never an error.
func (a *Assembler) KnowledgeBlock(ctx context.Context) (string, error) {
	if cached, found := a.cache.Get(knowledgeCacheKey); found {
		return cached.(string), nil
	}

	entries, err := a.load(ctx)
	if err != nil {
		return "", fmt.Errorf("load knowledge entries: %w", err)
	}
	if len(entries) > a.maxEntries {
		entries = entries[:a.maxEntries]
	}

	block := Format(entries)
	a.cache.Set(knowledgeCacheKey, block, gocache.DefaultExpiration)
	return block, nil
}

// Format concatenates entries into the prompt context block.
func Format(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(entries))
	for _, entry := range entries {
		var b strings.Builder
		b.WriteString(fmt.Sprintf("## %s [%s]\n", entry.Title, entry.Category))
		if entry.Description != "" {
			b.WriteString(entry.Description)
			b.WriteString("\n")
		}
		b.WriteString(entry.Content)
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}
