package generator

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter estimates how many tokens a prompt will consume.
type TokenCounter interface {
	Count(text string) int
}

// TiktokenCounter counts tokens with the encoding of the configured model.
type TiktokenCounter struct {
	encoding *tiktoken.Tiktoken
}

// NewTiktokenCounter falls back to cl100k_base for models tiktoken does not know.
func NewTiktokenCounter(model string) (*TiktokenCounter, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return nil, fmt.Errorf("failed to load tiktoken encoding: %w", err)
		}
	}
	return &TiktokenCounter{encoding: enc}, nil
}

func (c *TiktokenCounter) Count(text string) int {
	return len(c.encoding.Encode(text, nil, nil))
}

func promptTokens(counter TokenCounter, p Prompt) int {
	if counter == nil {
		return 0
	}
	return counter.Count(p.System) + counter.Count(p.User)
}
