package responder

import (
	"context"
	"fmt"

	"hr-assistant-be/internal/constant"
	"hr-assistant-be/pkg/assistant/intent"
	"hr-assistant-be/pkg/llm"
)

// Token budgets per response mode. Concise replies are capped hard;
// detailed replies get room for context and sources.
const (
	BudgetConcise  = 256
	BudgetDetailed = 2048
	BudgetAdaptive = 1024
)

// Responder produces the conversational reply for non-document turns.
type Responder struct {
	historyLimit int
}

func NewResponder(historyLimit int) *Responder {
	return &Responder{historyLimit: historyLimit}
}

// BuildSystemPrompt appends the mode instruction and the knowledge block to
// the shared conversational frame.
func BuildSystemPrompt(mode intent.ResponseMode, knowledge string) string {
	prompt := constant.ConversationSystemPromptBase
	switch mode {
	case intent.ModeConcise:
		prompt += constant.ConversationInstructionConcise
	case intent.ModeDetailed:
		prompt += constant.ConversationInstructionDetailed
	default:
		prompt += constant.ConversationInstructionAdaptive
	}
	if knowledge != "" {
		prompt += "\n\nBase de connaissances:\n" + knowledge
	}
	return prompt
}

// TokenBudget returns the completion budget for the given mode.
func TokenBudget(mode intent.ResponseMode) int {
	switch mode {
	case intent.ModeConcise:
		return BudgetConcise
	case intent.ModeDetailed:
		return BudgetDetailed
	default:
		return BudgetAdaptive
	}
}

// Reply invokes the provider with the mode-specific system prompt, the most
// recent history turns and the transcript as the final user message.
func (r *Responder) Reply(
	ctx context.Context,
	provider llm.LLMProvider,
	transcript string,
	mode intent.ResponseMode,
	knowledge string,
	history []llm.Message,
) (string, error) {
	if len(history) > r.historyLimit {
		history = history[len(history)-r.historyLimit:]
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: "system", Content: BuildSystemPrompt(mode, knowledge)})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: "user", Content: transcript})

	reply, err := provider.Chat(ctx, messages, llm.WithMaxTokens(TokenBudget(mode)))
	if err != nil {
		return "", fmt.Errorf("generate reply: %w", err)
	}
	return reply, nil
}
