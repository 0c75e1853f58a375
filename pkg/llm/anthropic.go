package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicClient implements ChatClient on the Anthropic Messages API.
type AnthropicClient struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewAnthropicClient creates a chat client for the given model.
func NewAnthropicClient(apiKey, model string) *AnthropicClient {
	return &AnthropicClient{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  anthropic.Model(model),
	}
}

func (c *AnthropicClient) params(req ChatRequest) anthropic.MessageNewParams {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	params := anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.User)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}
	return params
}

// Chat runs a non-streaming exchange.
func (c *AnthropicClient) Chat(ctx context.Context, req ChatRequest) (string, error) {
	msg, err := c.client.Messages.New(ctx, c.params(req))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var text string
	for _, block := range msg.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			text += tb.Text
		}
	}
	return text, nil
}

// ChatStream starts a streaming exchange. The goroutine forwards text deltas
// as TextChunks; a failure after the first token arrives as a final
// ErrorChunk.
func (c *AnthropicClient) ChatStream(ctx context.Context, req ChatRequest) (<-chan Chunk, error) {
	stream := c.client.Messages.NewStreaming(ctx, c.params(req))

	// Pull the first event synchronously so a dead provider surfaces as a
	// plain error, not a one-chunk stream.
	if !stream.Next() {
		if err := stream.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		ch := make(chan Chunk)
		close(ch)
		return ch, nil
	}

	ch := make(chan Chunk, 16)
	go func() {
		defer close(ch)
		for {
			event := stream.Current()
			if ev, ok := event.AsAny().(anthropic.ContentBlockDeltaEvent); ok {
				if delta, ok := ev.Delta.AsAny().(anthropic.TextDelta); ok && delta.Text != "" {
					select {
					case ch <- TextChunk{Text: delta.Text}:
					case <-ctx.Done():
						return
					}
				}
			}
			if !stream.Next() {
				break
			}
		}
		if err := stream.Err(); err != nil {
			ch <- ErrorChunk{Err: fmt.Errorf("stream interrupted: %w", err)}
		}
	}()
	return ch, nil
}
