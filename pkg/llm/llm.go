// Package llm wraps the model providers behind small interfaces: a streaming
// chat client (Anthropic) for agent reasoning, and an OpenAI-compatible
// client for the fast contradiction classifier and text embeddings.
//
// Transport failures are reported as ErrUnavailable so callers can
// distinguish "provider down" (502 or fallback path) from "provider answered
// garbage" (degrade in place).
package llm

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the provider could not be reached or refused the
// request before producing usable output.
var ErrUnavailable = errors.New("model provider unavailable")

// Chunk is one unit of a streamed response.
type Chunk interface {
	chunk()
}

// TextChunk carries a streamed text delta.
type TextChunk struct {
	Text string
}

func (TextChunk) chunk() {}

// ErrorChunk carries a mid-stream failure. It is always the final chunk.
type ErrorChunk struct {
	Err error
}

func (ErrorChunk) chunk() {}

// ChatRequest is a single system+user exchange.
type ChatRequest struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// ChatClient is the streaming-capable reasoning model.
type ChatClient interface {
	// Chat runs a non-streaming exchange and returns the full text.
	Chat(ctx context.Context, req ChatRequest) (string, error)

	// ChatStream starts a streaming exchange. The returned channel is closed
	// after the final chunk; an ErrorChunk, if any, is the last element.
	// Errors before the first token are returned directly.
	ChatStream(ctx context.Context, req ChatRequest) (<-chan Chunk, error)
}

// Classifier is the low-latency model used for contradiction scoring.
type Classifier interface {
	Classify(ctx context.Context, prompt string) (string, error)
}

// Embedder turns text into vectors for the retrieval tier.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Dimensions() int
}

// CollectStream drains a chunk channel, invoking onDelta for each text delta,
// and returns the concatenated text. A mid-stream ErrorChunk is returned as
// the error together with the partial text collected so far.
func CollectStream(ch <-chan Chunk, onDelta func(delta string)) (string, error) {
	var full []byte
	for c := range ch {
		switch v := c.(type) {
		case TextChunk:
			full = append(full, v.Text...)
			if onDelta != nil {
				onDelta(v.Text)
			}
		case ErrorChunk:
			return string(full), v.Err
		}
	}
	return string(full), nil
}
