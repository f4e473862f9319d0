package composer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hr-assistant-be/internal/constant"
	"hr-assistant-be/pkg/llm"
)

// BudgetDocument is the completion budget for document composition.
// Documents are long; conversational budgets would truncate them.
const BudgetDocument = 4096

// Composer fills the genre template and asks the language model for the
// full markdown document.
type Composer struct{}

func NewComposer() *Composer {
	return &Composer{}
}

// Compose returns the raw generated markdown for the requested genre.
func (c *Composer) Compose(
	ctx context.Context,
	provider llm.LLMProvider,
	documentType string,
	request string,
	knowledge string,
	now time.Time,
) (string, error) {
	template, ok := constant.DocumentTemplates[documentType]
	if !ok {
		template = constant.DocumentTemplates[constant.DocumentTypeLetter]
	}
	if knowledge == "" {
		knowledge = "(aucune entrée pertinente)"
	}

	prompt := fmt.Sprintf(template, request, knowledge, now.Format("02/01/2006"))

	markdown, err := provider.Generate(ctx, prompt,
		llm.WithMaxTokens(BudgetDocument),
		llm.WithTemperature(0.3),
	)
	if err != nil {
		return "", fmt.Errorf("compose %s: %w", documentType, err)
	}
	return strings.TrimSpace(markdown), nil
}

// ExtractTitle returns the document's first top-level heading, falling back
// to the genre's conventional title when the model omitted one.
func ExtractTitle(markdown, documentType string) string {
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
		}
	}
	if title, ok := constant.DocumentTitles[documentType]; ok {
		return title
	}
	return constant.DocumentTitles[constant.DocumentTypeLetter]
}
