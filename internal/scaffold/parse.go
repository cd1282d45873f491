package scaffold

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedResponse reports that the model output could not be decoded
// into a FileMap. Callers must recover by substituting the fallback
// template; this error is never surfaced to the end user as a hard failure.
var ErrMalformedResponse = errors.New("malformed model response")

// Parse extracts a FileMap from a raw model response. The response may be a
// plain JSON object, a JSON object fenced in a markdown code block
// (optionally tagged "json"), or arbitrary prose. The JSON object must map
// relative file paths to string contents; key order is preserved. Path
// normalization is deferred to Materialize.
func Parse(raw string) (FileMap, error) {
	text := strings.TrimSpace(extractFenced(raw))
	if text == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedResponse)
	}

	dec := json.NewDecoder(strings.NewReader(text))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: payload is not a JSON object", ErrMalformedResponse)
	}

	var files FileMap
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected object key", ErrMalformedResponse)
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		content, ok := valTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: value for %q is not a string", ErrMalformedResponse, key)
		}

		files = append(files, FileEntry{Path: key, Content: content})
	}

	// Closing brace, then nothing but EOF.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after JSON object", ErrMalformedResponse)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: object contains no files", ErrMalformedResponse)
	}

	return files, nil
}

// extractFenced returns the inner text of the first triple-backtick code
// block in raw, or raw unchanged when no fence is present. An optional
// language tag on the opening fence line is discarded.
func extractFenced(raw string) string {
	start := strings.Index(raw, "```")
	if start == -1 {
		return raw
	}

	inner := raw[start+3:]

	// Drop the language tag line ("json", "JSON", ...) if the opening fence
	// is followed by one; a fence opened inline keeps its first line.
	if nl := strings.IndexByte(inner, '\n'); nl != -1 {
		tag := strings.TrimSpace(inner[:nl])
		if isFenceTag(tag) {
			inner = inner[nl+1:]
		}
	}

	if end := strings.Index(inner, "```"); end != -1 {
		inner = inner[:end]
	}
	return inner
}

func isFenceTag(tag string) bool {
	if tag == "" {
		return true
	}
	if len(tag) > 16 || strings.ContainsAny(tag, "{}[]\"") {
		return false
	}
	return true
}
