package chat

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/itamar11/portfolio-chat/internal/ai"
)

// HistoryBudget caps how much history is forwarded to the model.
// A zero value forwards everything.
type HistoryBudget struct {
	Counter   ai.TokenCounter
	MaxTokens int
}

type service struct {
	ai         ai.Completer // nil means no credential was configured
	classifier *Classifier
	budget     HistoryBudget
	log        *log.Logger
}

// NewService wires the reply flow. Pass a nil completer for fallback mode.
func NewService(aiClient ai.Completer, classifier *Classifier, budget HistoryBudget) Service {
	return &service{
		ai:         aiClient,
		classifier: classifier,
		budget:     budget,
		log:        log.WithPrefix("chat"),
	}
}

func (s *service) Mode() Mode {
	if s.ai == nil {
		return ModeFallback
	}
	return ModeLive
}

func (s *service) Reply(ctx context.Context, messages []Message) (string, error) {
	if s.ai == nil {
		return s.fallback(messages), nil
	}

	history := make([]ai.Message, 0, len(messages)+1)
	history = append(history, ai.Message{Role: ai.RoleSystem, Text: SystemPrompt})
	history = append(history, lo.Map(messages, func(m Message, _ int) ai.Message {
		return ai.Message{Role: string(m.Role), Text: m.Content}
	})...)

	trimmed := ai.TrimHistory(history, s.budget.MaxTokens, s.budget.Counter)
	if dropped := len(history) - len(trimmed); dropped > 0 {
		s.log.Info("history trimmed", "dropped", dropped, "kept", len(trimmed)-1)
	}

	reply, err := s.ai.Complete(ctx, trimmed)
	if err != nil {
		return "", &UpstreamError{Cause: err}
	}

	s.log.Debug("live reply", "turns", len(messages), "reply_len", len(reply))
	return reply, nil
}

// fallback only looks at the newest turn; an empty history classifies as "".
func (s *service) fallback(messages []Message) string {
	last := lo.LastOrEmpty(messages)
	match := s.classifier.Classify(last.Content)

	s.log.Info("fallback reply", "intent", match.Intent, "turns", len(messages))
	return match.Reply
}
