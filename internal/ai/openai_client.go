package ai

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	openai "github.com/sashabaranov/go-openai"

	"github.com/itamar11/portfolio-chat/internal/config"
)

// EmptyReply is returned when the model answers without any content.
const EmptyReply = "Sorry, something went wrong."

// OpenAIClient talks to any OpenAI-compatible chat completion API (Groq by default).
type OpenAIClient struct {
	client *openai.Client
	model  string
	log    *log.Logger
}

func NewOpenAIClient(cfg config.LLM) *OpenAIClient {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		log:    log.WithPrefix("ai"),
	}
}

func (c *OpenAIClient) Model() string {
	return c.model
}

// Complete issues a single non-streaming completion and returns the first choice.
func (c *OpenAIClient) Complete(ctx context.Context, history []Message) (string, error) {
	msgs := lo.Map(history, func(m Message, _ int) openai.ChatCompletionMessage {
		return openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Text,
		}
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: msgs,
		Stream:   false,
	})
	if err != nil {
		c.log.Error("completion failed", "model", c.model, "err", err)
		return "", errors.Wrap(err, "create chat completion")
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		c.log.Warn("empty choices", "model", c.model)
		return EmptyReply, nil
	}

	c.log.Debug("completion",
		"model", c.model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
	)

	return resp.Choices[0].Message.Content, nil
}
