package genai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrParse is returned when model output cannot be decoded into the expected
// shape, even after stripping formatting wrappers.
var ErrParse = errors.New("generation response not in expected shape")

// ParseJSON decodes a structured value out of raw model output. Models wrap
// JSON in Markdown code fences more often than not, so fences are stripped
// first; anything before the first brace or bracket is dropped as prose.
func ParseJSON[T any](raw string) (T, error) {
	var out T

	cleaned := strings.TrimSpace(raw)
	if after, ok := strings.CutPrefix(cleaned, "```json"); ok {
		cleaned = strings.TrimSuffix(after, "```")
	} else if after, ok := strings.CutPrefix(cleaned, "```"); ok {
		cleaned = strings.TrimSuffix(after, "```")
	}
	cleaned = strings.TrimSpace(cleaned)

	if start := strings.IndexAny(cleaned, "[{"); start > 0 {
		cleaned = cleaned[start:]
	}

	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return out, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return out, nil
}
