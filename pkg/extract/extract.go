package extract

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

type fenceExtractor struct{}

func (fenceExtractor) Extract(raw string) ([]byte, error) {
	start, end, ok := braceBounds(raw)
	if !ok {
		return nil, ErrNoJSONFound
	}

	if trimmed := trimFences(raw); json.Valid([]byte(trimmed)) && strings.HasPrefix(trimmed, "{") {
		return []byte(trimmed), nil
	}

	slice := []byte(raw[start : end+1])
	var probe json.RawMessage
	if err := json.Unmarshal(slice, &probe); err != nil {
		return nil, &MalformedError{Raw: raw, Err: err}
	}
	return slice, nil
}

type scanExtractor struct{}

func (scanExtractor) Extract(raw string) ([]byte, error) {
	if _, _, ok := braceBounds(raw); !ok {
		return nil, ErrNoJSONFound
	}

	var firstErr error
	for i := strings.IndexByte(raw, '{'); i >= 0; {
		dec := json.NewDecoder(strings.NewReader(raw[i:]))
		var obj json.RawMessage
		err := dec.Decode(&obj)
		if err == nil && bytes.HasPrefix(obj, []byte("{")) {
			return obj, nil
		}
		if firstErr == nil {
			firstErr = err
		}
		next := strings.IndexByte(raw[i+1:], '{')
		if next < 0 {
			break
		}
		i += next + 1
	}
	if firstErr == nil {
		firstErr = errors.New("no complete object")
	}
	return nil, &MalformedError{Raw: raw, Err: firstErr}
}

// braceBounds finds the first "{" and the last "}" after it.
func braceBounds(raw string) (int, int, bool) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return 0, 0, false
	}
	end := strings.LastIndexByte(raw, '}')
	if end < start {
		return 0, 0, false
	}
	return start, end, true
}

func trimFences(raw string) string {
	text := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(text, fenceJSON):
		text = strings.TrimPrefix(text, fenceJSON)
	case strings.HasPrefix(text, fence):
		text = strings.TrimPrefix(text, fence)
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), fence)
	return strings.TrimSpace(text)
}
