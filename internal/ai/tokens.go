package ai

import (
	"github.com/cockroachdb/errors"
	"github.com/pkoukk/tiktoken-go"
	"github.com/samber/lo"
)

const (
	encodingName     = "cl100k_base"
	tokensPerMessage = 3
	replyPriming     = 3
)

type TokenCounter interface {
	Count(m Message) int
}

// TiktokenCounter approximates provider token usage with the cl100k_base
// encoding. Llama tokenizers differ, so budgets should leave headroom.
type TiktokenCounter struct {
	enc *tiktoken.Tiktoken
}

func NewTiktokenCounter() (*TiktokenCounter, error) {
	enc, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s encoding", encodingName)
	}
	return &TiktokenCounter{enc: enc}, nil
}

func (c *TiktokenCounter) Count(m Message) int {
	return tokensPerMessage +
		len(c.enc.Encode(m.Role, nil, nil)) +
		len(c.enc.Encode(m.Text, nil, nil))
}

// TrimHistory drops the oldest non-system turns until the history fits budget.
// System messages are kept up front and the newest turn is never dropped.
// A budget <= 0 or a nil counter disables trimming.
func TrimHistory(history []Message, budget int, counter TokenCounter) []Message {
	if budget <= 0 || counter == nil {
		return history
	}

	isSystem := func(m Message, _ int) bool { return m.Role == RoleSystem }
	system := lo.Filter(history, isSystem)
	turns := lo.Reject(history, isSystem)

	total := replyPriming + lo.SumBy(history, counter.Count)
	for len(turns) > 1 && total > budget {
		total -= counter.Count(turns[0])
		turns = turns[1:]
	}

	out := make([]Message, 0, len(system)+len(turns))
	out = append(out, system...)
	return append(out, turns...)
}
