package agent

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ParseResult is an Ok/Err sum for model output parsing. Agents decide per
// call site whether an Err means "fail the request" or "fall back to a
// default"; the parser itself never makes that call.
type ParseResult[T any] struct {
	value T
	err   error
}

// Ok wraps a successfully parsed value.
func Ok[T any](v T) ParseResult[T] {
	return ParseResult[T]{value: v}
}

// Err wraps a parse failure.
func Err[T any](err error) ParseResult[T] {
	return ParseResult[T]{err: err}
}

// IsOk reports whether the parse succeeded.
func (r ParseResult[T]) IsOk() bool { return r.err == nil }

// Value returns the parsed value; only meaningful when IsOk.
func (r ParseResult[T]) Value() T { return r.value }

// Err returns the parse error, or nil.
func (r ParseResult[T]) Error() error { return r.err }

var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// DecodeModelJSON parses JSON out of raw model output. Models wrap JSON in
// markdown fences, prepend prose, or emit literal newlines inside string
// values despite instructions, so this strips fences first, then falls back
// to the outermost brace block, then retries with control characters inside
// strings escaped.
func DecodeModelJSON[T any](raw string) ParseResult[T] {
	cleaned := stripFences(raw)

	var v T
	if err := json.Unmarshal([]byte(cleaned), &v); err == nil {
		return Ok(v)
	}

	if block := jsonBlockRe.FindString(cleaned); block != "" {
		if err := json.Unmarshal([]byte(block), &v); err == nil {
			return Ok(v)
		}
		if err := json.Unmarshal([]byte(escapeControlChars(block)), &v); err == nil {
			return Ok(v)
		}
	}

	return Err[T](fmt.Errorf("agent: no parseable JSON in model output (%d bytes)", len(raw)))
}

// escapeControlChars rewrites literal newlines, carriage returns, and tabs
// that appear inside JSON string values as their escape sequences. Structural
// whitespace outside strings is left alone.
func escapeControlChars(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inString := false
	escaped := false
	for _, r := range s {
		if inString && !escaped {
			switch r {
			case '\n':
				b.WriteString(`\n`)
				continue
			case '\r':
				b.WriteString(`\r`)
				continue
			case '\t':
				b.WriteString(`\t`)
				continue
			}
		}
		switch {
		case escaped:
			escaped = false
		case r == '\\' && inString:
			escaped = true
		case r == '"':
			inString = !inString
		}
		b.WriteRune(r)
	}
	return b.String()
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag.
func stripFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}
	parts := strings.SplitN(cleaned, "```", 3)
	if len(parts) < 2 {
		return cleaned
	}
	body := parts[1]
	body = strings.TrimPrefix(body, "json")
	return strings.TrimSpace(body)
}
