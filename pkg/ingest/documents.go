// Package ingest feeds the retrieval tier: uploaded case documents become
// prior-statement chunks, and the evidentiary rules reference is loaded from
// JSONL exports.
package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verdictlabs/verdict/ent"
	"github.com/verdictlabs/verdict/ent/document"
	"github.com/verdictlabs/verdict/ent/legalcase"
	"github.com/verdictlabs/verdict/pkg/agent"
	"github.com/verdictlabs/verdict/pkg/blob"
	"github.com/verdictlabs/verdict/pkg/llm"
	"github.com/verdictlabs/verdict/pkg/retrieval"
	"github.com/verdictlabs/verdict/pkg/services"
)

// linesPerPage approximates transcript pagination for plain-text uploads
// that carry no page markers.
const linesPerPage = 25

const factExtractionSystem = `You extract structured facts from legal case documents. ` +
	`Return only a JSON object mapping short snake_case fact names to one-sentence values. ` +
	`Include parties, dates, amounts, locations, and claimed events. No commentary.`

// DocumentService runs the upload-and-index pipeline for case documents.
type DocumentService struct {
	client    *ent.Client
	blobs     *blob.Store
	retriever retrieval.Retriever
	chat      llm.ChatClient
	logger    *slog.Logger
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(client *ent.Client, blobs *blob.Store, retriever retrieval.Retriever, chat llm.ChatClient, logger *slog.Logger) *DocumentService {
	return &DocumentService{
		client:    client,
		blobs:     blobs,
		retriever: retriever,
		chat:      chat,
		logger:    logger,
	}
}

// UploadRequest describes one document upload.
type UploadRequest struct {
	CaseID      string
	FileName    string
	MimeType    string
	DocType     string
	WitnessName string
	Data        []byte
}

// Upload stores the document and runs it through the ingestion pipeline:
// PENDING -> UPLOADING -> INDEXING -> READY, or FAILED with the error
// recorded on the row. Indexing failures never lose the upload itself.
func (s *DocumentService) Upload(ctx context.Context, firmID string, req UploadRequest) (*ent.Document, error) {
	if req.FileName == "" {
		return nil, services.NewValidationError("file_name", "required")
	}
	if len(req.Data) == 0 {
		return nil, services.NewValidationError("file", "empty upload")
	}

	ok, err := s.client.LegalCase.Query().
		Where(legalcase.IDEQ(req.CaseID), legalcase.FirmIDEQ(firmID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("ingest: check case: %w", err)
	}
	if !ok {
		return nil, services.ErrNotFound
	}

	hash := sha256.Sum256(req.Data)
	key := blob.BuildKey(firmID, req.CaseID, req.FileName, time.Now())

	docType := req.DocType
	if docType == "" {
		docType = "EXHIBIT"
	}

	doc, err := s.client.Document.Create().
		SetID(uuid.New().String()).
		SetCaseID(req.CaseID).
		SetFileName(req.FileName).
		SetMimeType(req.MimeType).
		SetStorageKey(key).
		SetDocType(docType).
		SetFileHash(hex.EncodeToString(hash[:])).
		SetIngestionStatus(document.IngestionStatusUploading).
		SetIngestionStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("ingest: create document: %w", err)
	}

	if s.blobs.Enabled() {
		if err := s.blobs.UploadBytes(ctx, key, req.Data, req.MimeType); err != nil {
			return s.fail(ctx, doc, fmt.Errorf("store upload: %w", err))
		}
	}

	doc, err = s.index(ctx, doc, req)
	if err != nil {
		return s.fail(ctx, doc, err)
	}
	return doc, nil
}

// index chunks plain-text content into the statement collection and extracts
// case facts. Non-text uploads are stored only; text extraction for binary
// formats happens upstream of this service.
func (s *DocumentService) index(ctx context.Context, doc *ent.Document, req UploadRequest) (*ent.Document, error) {
	doc, err := doc.Update().
		SetIngestionStatus(document.IngestionStatusIndexing).
		Save(ctx)
	if err != nil {
		return doc, fmt.Errorf("mark indexing: %w", err)
	}

	update := doc.Update().
		SetIngestionStatus(document.IngestionStatusReady).
		SetIngestionCompletedAt(time.Now())

	if isTextual(req.MimeType) {
		text := string(req.Data)
		chunks := chunkStatements(doc, text, req.WitnessName)
		if len(chunks) > 0 {
			if err := s.retriever.UpsertStatements(ctx, chunks); err != nil {
				return doc, fmt.Errorf("index statements: %w", err)
			}
		}
		update.SetPageCount(pageCount(chunks))

		if facts := s.extractFacts(ctx, text); len(facts) > 0 {
			update.SetExtractedFacts(facts)
			s.mergeCaseFacts(ctx, doc.CaseID, facts)
		}
	}

	doc, err = update.Save(ctx)
	if err != nil {
		return doc, fmt.Errorf("mark ready: %w", err)
	}
	return doc, nil
}

func (s *DocumentService) fail(ctx context.Context, doc *ent.Document, cause error) (*ent.Document, error) {
	s.logger.Error("document ingestion failed", "document_id", doc.ID, "error", cause)
	failed, err := doc.Update().
		SetIngestionStatus(document.IngestionStatusFailed).
		SetIngestionError(cause.Error()).
		Save(ctx)
	if err != nil {
		s.logger.Error("failed to record ingestion failure", "document_id", doc.ID, "error", err)
		return doc, cause
	}
	return failed, cause
}

func isTextual(mimeType string) bool {
	return strings.HasPrefix(mimeType, "text/") ||
		mimeType == "application/json"
}

// chunkStatements splits text into non-empty lines with synthetic page/line
// coordinates. Chunk identity is (document_id, page, line), so re-ingesting
// the same file overwrites rather than duplicates.
func chunkStatements(doc *ent.Document, text, witnessName string) []retrieval.StatementChunk {
	var chunks []retrieval.StatementChunk
	lineNo := 0
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		chunks = append(chunks, retrieval.StatementChunk{
			CaseID:      doc.CaseID,
			DocumentID:  doc.ID,
			Content:     line,
			Page:        lineNo/linesPerPage + 1,
			Line:        lineNo%linesPerPage + 1,
			DocType:     doc.DocType,
			WitnessName: witnessName,
		})
		lineNo++
	}
	return chunks
}

func pageCount(chunks []retrieval.StatementChunk) int {
	pages := 0
	for _, c := range chunks {
		if c.Page > pages {
			pages = c.Page
		}
	}
	return pages
}

// extractFacts asks the chat model for a fact map, best effort. Documents
// index fine without facts; the interrogator prompt is just thinner.
func (s *DocumentService) extractFacts(ctx context.Context, text string) map[string]interface{} {
	const maxInput = 8000
	if runes := []rune(text); len(runes) > maxInput {
		text = string(runes[:maxInput])
	}

	raw, err := s.chat.Chat(ctx, llm.ChatRequest{
		System:    factExtractionSystem,
		User:      text,
		MaxTokens: 1024,
	})
	if err != nil {
		s.logger.Warn("fact extraction failed", "error", err)
		return nil
	}

	parsed := agent.DecodeModelJSON[map[string]interface{}](raw)
	if !parsed.IsOk() {
		s.logger.Warn("fact extraction returned unparseable output", "error", parsed.Error())
		return nil
	}
	return parsed.Value()
}

// mergeCaseFacts folds newly extracted facts into the case's fact map.
// Existing keys win; re-ingesting a document never clobbers curated facts.
func (s *DocumentService) mergeCaseFacts(ctx context.Context, caseID string, facts map[string]interface{}) {
	lc, err := s.client.LegalCase.Get(ctx, caseID)
	if err != nil {
		s.logger.Warn("failed to load case for fact merge", "case_id", caseID, "error", err)
		return
	}

	merged := make(map[string]interface{}, len(lc.ExtractedFacts)+len(facts))
	for k, v := range facts {
		merged[k] = v
	}
	for k, v := range lc.ExtractedFacts {
		merged[k] = v
	}

	if err := lc.Update().SetExtractedFacts(merged).Exec(ctx); err != nil {
		s.logger.Warn("failed to merge case facts", "case_id", caseID, "error", err)
	}
}

// List returns a case's documents, newest first, firm-scoped.
func (s *DocumentService) List(ctx context.Context, firmID, caseID string) ([]*ent.Document, error) {
	ok, err := s.client.LegalCase.Query().
		Where(legalcase.IDEQ(caseID), legalcase.FirmIDEQ(firmID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("ingest: check case: %w", err)
	}
	if !ok {
		return nil, services.ErrNotFound
	}

	docs, err := s.client.Document.Query().
		Where(document.CaseIDEQ(caseID)).
		Order(ent.Desc(document.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("ingest: list documents: %w", err)
	}
	return docs, nil
}

// Get returns a document scoped to the firm via its case.
func (s *DocumentService) Get(ctx context.Context, firmID, documentID string) (*ent.Document, error) {
	doc, err := s.client.Document.Query().
		Where(
			document.IDEQ(documentID),
			document.HasLegalCaseWith(legalcase.FirmIDEQ(firmID)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("ingest: get document: %w", err)
	}
	return doc, nil
}
