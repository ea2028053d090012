//go:generate go run go.uber.org/mock/mockgen -source=ports.go -destination=../mocks/mock_completer.go -package=mocks

package ai

import "context"

// Completer is the hosted model. It knows nothing about the persona or HTTP.
type Completer interface {
	Complete(ctx context.Context, history []Message) (string, error)
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is the provider-neutral dialogue turn.
type Message struct {
	Role string // "system" | "user" | "assistant"
	Text string
}
