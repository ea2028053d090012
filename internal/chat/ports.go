package chat

import "context"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role" validate:"oneof=user assistant"`
	Content string `json:"content"`
}

// ChatRequest carries the full client-side history; the newest turn is last.
type ChatRequest struct {
	Messages []Message `json:"messages" validate:"dive"`
}

type ChatResponse struct {
	Content string `json:"content"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// Mode is fixed for the lifetime of the process.
type Mode string

const (
	ModeLive     Mode = "live"
	ModeFallback Mode = "fallback"
)

// Service keeps no state between calls.
type Service interface {
	Reply(ctx context.Context, messages []Message) (string, error)
	Mode() Mode
}
