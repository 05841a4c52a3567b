package llm

import (
	"bytes"
	"encoding/json"
	"strings"

	domainerrors "fitplan/internal/domain/errors"
)

// ExtractJSON returns the JSON document inside a model reply, dropping
// markdown fences and any prose around it.
func ExtractJSON(reply string) (string, error) {
	text := strings.TrimSpace(reply)

	if idx := strings.Index(text, "```"); idx >= 0 {
		rest := text[idx+3:]
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			rest = rest[nl+1:]
		}
		if end := strings.LastIndex(rest, "```"); end >= 0 {
			rest = rest[:end]
		}
		text = strings.TrimSpace(rest)
	}

	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return "", domainerrors.ErrLLMMalformedResponse.WithDetails("no JSON document in reply")
	}

	closer := byte('}')
	if text[start] == '[' {
		closer = ']'
	}
	end := strings.LastIndexByte(text, closer)
	if end < start {
		return "", domainerrors.ErrLLMMalformedResponse.WithDetails("unterminated JSON document")
	}

	doc := text[start : end+1]
	if !json.Valid([]byte(doc)) {
		return "", domainerrors.ErrLLMMalformedResponse.WithDetails("reply is not valid JSON")
	}

	return doc, nil
}

// DecodeJSON extracts and strictly decodes a model reply into out.
func DecodeJSON(reply string, out any) error {
	doc, err := ExtractJSON(reply)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(doc)))
	if err := dec.Decode(out); err != nil {
		return domainerrors.ErrLLMMalformedResponse.WithDetails(err.Error())
	}

	return nil
}
