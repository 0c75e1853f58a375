package retrieval

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/qdrant/go-client/qdrant"

	"github.com/verdictlabs/verdict/pkg/llm"
)

// QdrantConfig holds connection and collection settings.
type QdrantConfig struct {
	URL                  string // e.g. "https://xyz.cloud.qdrant.io:6333" or "http://localhost:6334"
	APIKey               string
	StatementsCollection string
	RulesCollection      string
	Dims                 uint64
	Timeout              time.Duration
}

// QdrantStore implements Retriever backed by Qdrant over gRPC.
type QdrantStore struct {
	client   *qdrant.Client
	embedder llm.Embedder
	cfg      QdrantConfig
	logger   *slog.Logger
}

// parseQdrantURL extracts host, port, and TLS flag from a Qdrant URL.
// Accepts "https://host:6333", "http://host:6334", or "host:6334". The REST
// port 6333 is silently mapped to the gRPC port 6334.
func parseQdrantURL(rawURL string) (host string, port int, useTLS bool, err error) {
	u, parseErr := url.Parse(rawURL)
	if parseErr != nil || u.Host == "" {
		return "", 0, false, fmt.Errorf("retrieval: invalid qdrant URL: %q", rawURL)
	}

	useTLS = u.Scheme == "https"
	host = u.Hostname()

	if portStr := u.Port(); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return "", 0, false, fmt.Errorf("retrieval: invalid port in qdrant URL: %q", portStr)
		}
		if p == 6333 {
			port = 6334
		} else {
			port = p
		}
	} else {
		port = 6334
	}

	return host, port, useTLS, nil
}

// NewQdrantStore connects to Qdrant via gRPC.
func NewQdrantStore(cfg QdrantConfig, embedder llm.Embedder, logger *slog.Logger) (*QdrantStore, error) {
	host, port, useTLS, err := parseQdrantURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: cfg.APIKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("retrieval: connect to qdrant at %s:%d: %w", host, port, err)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &QdrantStore{
		client:   client,
		embedder: embedder,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// EnsureCollections creates both collections if missing and backfills payload
// indexes. CreateFieldIndex is idempotent on Qdrant, so re-running on boot is
// safe.
func (q *QdrantStore) EnsureCollections(ctx context.Context) error {
	type spec struct {
		name          string
		keywordFields []string
	}
	specs := []spec{
		{q.cfg.StatementsCollection, []string{"case_id", "document_id", "doc_type", "witness_name"}},
		{q.cfg.RulesCollection, []string{"rule_number", "article", "is_deposition_relevant"}},
	}

	for _, s := range specs {
		exists, err := q.client.CollectionExists(ctx, s.name)
		if err != nil {
			return fmt.Errorf("retrieval: check collection exists: %w", err)
		}
		if !exists {
			if err := q.client.CreateCollection(ctx, &qdrant.CreateCollection{
				CollectionName: s.name,
				VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
					Size:     q.cfg.Dims,
					Distance: qdrant.Distance_Cosine,
				}),
			}); err != nil {
				return fmt.Errorf("retrieval: create collection %q: %w", s.name, err)
			}
			q.logger.Info("qdrant: created collection", "collection", s.name, "dims", q.cfg.Dims)
		}

		keywordType := qdrant.FieldType_FieldTypeKeyword
		for _, field := range s.keywordFields {
			if _, err := q.client.CreateFieldIndex(ctx, &qdrant.CreateFieldIndexCollection{
				CollectionName: s.name,
				FieldName:      field,
				FieldType:      &keywordType,
			}); err != nil {
				return fmt.Errorf("retrieval: ensure index on %s.%s: %w", s.name, field, err)
			}
		}
	}
	return nil
}

// SearchStatements retrieves prior testimony for a case. Failures degrade to
// an empty result set with a warning; the session must keep moving.
func (q *QdrantStore) SearchStatements(ctx context.Context, caseID, query string, k int) ([]PriorStatement, error) {
	ctx, cancel := context.WithTimeout(ctx, q.cfg.Timeout)
	defer cancel()

	vec, err := q.embedQuery(ctx, query)
	if err != nil {
		q.logger.Warn("statement search degraded: embedding failed", "error", err)
		return nil, nil
	}

	limit := uint64(k)
	scored, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.cfg.StatementsCollection,
		Query:          qdrant.NewQueryDense(vec),
		Filter: &qdrant.Filter{Must: []*qdrant.Condition{
			qdrant.NewMatch("case_id", caseID),
		}},
		Limit:       &limit,
		WithPayload: qdrant.NewWithPayload(true),
	})
	if err != nil {
		q.logger.Warn("statement search degraded: qdrant query failed", "error", err)
		return nil, nil
	}

	results := make([]PriorStatement, 0, len(scored))
	for _, sp := range scored {
		payload := sp.Payload
		results = append(results, PriorStatement{
			Content:     payloadString(payload, "content"),
			DocumentID:  payloadString(payload, "document_id"),
			Page:        payloadInt(payload, "page"),
			Line:        payloadInt(payload, "line"),
			DocType:     payloadString(payload, "doc_type"),
			WitnessName: payloadString(payload, "witness_name"),
			Score:       sp.Score,
		})
	}
	sortStatements(results)
	return results, nil
}

// SearchRules retrieves deposition-relevant evidentiary rules. Same
// degradation contract as SearchStatements.
func (q *QdrantStore) SearchRules(ctx context.Context, query string, k int) ([]Rule, error) {
	ctx, cancel := context.WithTimeout(ctx, q.cfg.Timeout)
	defer cancel()

	vec, err := q.embedQuery(ctx, query)
	if err != nil {
		q.logger.Warn("rule search degraded: embedding failed", "error", err)
		return nil, nil
	}

	limit := uint64(k)
	scored, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.cfg.RulesCollection,
		Query:          qdrant.NewQueryDense(vec),
		Filter: &qdrant.Filter{Must: []*qdrant.Condition{
			qdrant.NewMatch("is_deposition_relevant", "true"),
		}},
		Limit:       &limit,
		WithPayload: qdrant.NewWithPayload(true),
	})
	if err != nil {
		q.logger.Warn("rule search degraded: qdrant query failed", "error", err)
		return nil, nil
	}

	results := make([]Rule, 0, len(scored))
	for _, sp := range scored {
		results = append(results, Rule{
			Content:    payloadString(sp.Payload, "content"),
			RuleNumber: payloadString(sp.Payload, "rule_number"),
			Article:    payloadString(sp.Payload, "article"),
			Score:      sp.Score,
		})
	}
	return results, nil
}

// UpsertStatements indexes testimony chunks with deterministic point IDs.
func (q *QdrantStore) UpsertStatements(ctx context.Context, chunks []StatementChunk) error {
	if len(chunks) == 0 {
		return nil
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Content
	}
	vecs, err := q.embedder.Embed(ctx, texts)
	if err != nil {
		return fmt.Errorf("retrieval: embed %d statement chunks: %w", len(chunks), err)
	}

	points := make([]*qdrant.PointStruct, len(chunks))
	for i, c := range chunks {
		points[i] = &qdrant.PointStruct{
			Id:      qdrant.NewID(StatementPointID(c.DocumentID, c.Page, c.Line)),
			Vectors: qdrant.NewVectorsDense(vecs[i]),
			Payload: qdrant.NewValueMap(map[string]any{
				"case_id":      c.CaseID,
				"document_id":  c.DocumentID,
				"content":      c.Content,
				"page":         int64(c.Page),
				"line":         int64(c.Line),
				"doc_type":     c.DocType,
				"witness_name": c.WitnessName,
			}),
		}
	}

	_, err = q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.cfg.StatementsCollection,
		Wait:           qdrant.PtrOf(true),
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("retrieval: upsert %d statement points: %w", len(points), err)
	}
	return nil
}

// UpsertRules indexes evidentiary rules.
func (q *QdrantStore) UpsertRules(ctx context.Context, chunks []RuleChunk) error {
	if len(chunks) == 0 {
		return nil
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Content
	}
	vecs, err := q.embedder.Embed(ctx, texts)
	if err != nil {
		return fmt.Errorf("retrieval: embed %d rule chunks: %w", len(chunks), err)
	}

	points := make([]*qdrant.PointStruct, len(chunks))
	for i, c := range chunks {
		points[i] = &qdrant.PointStruct{
			Id:      qdrant.NewID(RulePointID(c.RuleNumber)),
			Vectors: qdrant.NewVectorsDense(vecs[i]),
			Payload: qdrant.NewValueMap(map[string]any{
				"rule_number":            c.RuleNumber,
				"article":                c.Article,
				"content":                c.Content,
				"is_deposition_relevant": strconv.FormatBool(c.DepositionRelevant),
			}),
		}
	}

	_, err = q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.cfg.RulesCollection,
		Wait:           qdrant.PtrOf(true),
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("retrieval: upsert %d rule points: %w", len(points), err)
	}
	return nil
}

// Healthy reports whether Qdrant is reachable.
func (q *QdrantStore) Healthy(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if _, err := q.client.HealthCheck(ctx); err != nil {
		return fmt.Errorf("retrieval: qdrant unhealthy: %w", err)
	}
	return nil
}

// Close shuts down the gRPC connection.
func (q *QdrantStore) Close() error {
	return q.client.Close()
}

func (q *QdrantStore) embedQuery(ctx context.Context, query string) ([]float32, error) {
	vecs, err := q.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	if len(vecs) != 1 {
		return nil, fmt.Errorf("retrieval: expected 1 query vector, got %d", len(vecs))
	}
	return vecs[0], nil
}

func payloadString(p map[string]*qdrant.Value, key string) string {
	if v, ok := p[key]; ok {
		return v.GetStringValue()
	}
	return ""
}

func payloadInt(p map[string]*qdrant.Value, key string) int {
	if v, ok := p[key]; ok {
		return int(v.GetIntegerValue())
	}
	return 0
}
