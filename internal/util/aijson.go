package util

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fencedJSONRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// ExtractJSONObject pulls a JSON object out of free-form model output.
// It tries a fenced code block first, then the widest brace span, then
// the text as-is. The second return value is false when no candidate
// was found at all.
func ExtractJSONObject(text string) (string, bool) {
	if m := fencedJSONRe.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1], true
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}

// DecodeModelObject extracts a JSON object from model output and
// decodes it into a generic map, leaving field type checks to the
// caller. A mistyped field is then a contract violation, not a parse
// failure.
func DecodeModelObject(text string) (map[string]any, error) {
	candidate, ok := ExtractJSONObject(text)
	if !ok {
		candidate = text
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return nil, err
	}
	return obj, nil
}
