package agent

import (
	"context"

	"github.com/verdictlabs/verdict/pkg/llm"
	"github.com/verdictlabs/verdict/pkg/retrieval"
)

// fakeChat returns canned responses and records the requests it saw.
type fakeChat struct {
	response string
	err      error
	chunks   []llm.Chunk
	requests []llm.ChatRequest
}

func (f *fakeChat) Chat(_ context.Context, req llm.ChatRequest) (string, error) {
	f.requests = append(f.requests, req)
	return f.response, f.err
}

func (f *fakeChat) ChatStream(_ context.Context, req llm.ChatRequest) (<-chan llm.Chunk, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	ch := make(chan llm.Chunk, len(f.chunks))
	for _, c := range f.chunks {
		ch <- c
	}
	close(ch)
	return ch, nil
}

type fakeClassifier struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeClassifier) Classify(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

// fakeRetriever serves fixed hits and records search queries.
type fakeRetriever struct {
	statements []retrieval.PriorStatement
	rules      []retrieval.Rule
	searchErr  error
	queries    []string
}

func (f *fakeRetriever) SearchStatements(_ context.Context, _, query string, _ int) ([]retrieval.PriorStatement, error) {
	f.queries = append(f.queries, query)
	return f.statements, f.searchErr
}

func (f *fakeRetriever) SearchRules(_ context.Context, query string, _ int) ([]retrieval.Rule, error) {
	f.queries = append(f.queries, query)
	return f.rules, f.searchErr
}

func (f *fakeRetriever) UpsertStatements(context.Context, []retrieval.StatementChunk) error {
	return nil
}

func (f *fakeRetriever) UpsertRules(context.Context, []retrieval.RuleChunk) error {
	return nil
}

func (f *fakeRetriever) Healthy(context.Context) error { return nil }
