package ingest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/verdictlabs/verdict/pkg/retrieval"
)

// ruleRecord is one line of a rules JSONL export. Older exports use rule_id
// instead of rule_number; rule_number is canonical here.
type ruleRecord struct {
	RuleNumber         string `json:"rule_number"`
	RuleID             string `json:"rule_id"`
	Article            string `json:"article"`
	Content            string `json:"content"`
	DepositionRelevant *bool  `json:"is_deposition_relevant"`
}

// LoadRulesJSONL parses an evidentiary-rules JSONL export. rule_id is
// accepted as an alias for rule_number; a record carrying both with different
// values is rejected, as are records missing a key or content entirely.
// Relevance defaults to true when the export omits it.
func LoadRulesJSONL(r io.Reader) ([]retrieval.RuleChunk, error) {
	var chunks []retrieval.RuleChunk

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec ruleRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("ingest: rules line %d: %w", lineNo, err)
		}

		number := rec.RuleNumber
		switch {
		case number == "":
			number = rec.RuleID
		case rec.RuleID != "" && rec.RuleID != number:
			return nil, fmt.Errorf("ingest: rules line %d: rule_number %q conflicts with rule_id %q", lineNo, number, rec.RuleID)
		}
		if number == "" {
			return nil, fmt.Errorf("ingest: rules line %d: missing rule_number", lineNo)
		}
		if strings.TrimSpace(rec.Content) == "" {
			return nil, fmt.Errorf("ingest: rules line %d: missing content", lineNo)
		}

		relevant := true
		if rec.DepositionRelevant != nil {
			relevant = *rec.DepositionRelevant
		}

		chunks = append(chunks, retrieval.RuleChunk{
			RuleNumber:         number,
			Article:            rec.Article,
			Content:            rec.Content,
			DepositionRelevant: relevant,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ingest: read rules: %w", err)
	}
	return chunks, nil
}
