package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObjectFencedBlock(t *testing.T) {
	text := "Here is the verdict:\n```json\n{\"score\": 85}\n```\nGood luck!"
	got, ok := ExtractJSONObject(text)
	require.True(t, ok)
	assert.Equal(t, `{"score": 85}`, got)
}

func TestExtractJSONObjectBraceSpan(t *testing.T) {
	text := `The model says {"score": 42, "nested": {"a": 1}} and nothing else`
	got, ok := ExtractJSONObject(text)
	require.True(t, ok)
	assert.Equal(t, `{"score": 42, "nested": {"a": 1}}`, got)
}

func TestExtractJSONObjectRawText(t *testing.T) {
	got, ok := ExtractJSONObject("  plain text, no braces  ")
	require.True(t, ok)
	assert.Equal(t, "plain text, no braces", got)

	_, ok = ExtractJSONObject("   ")
	assert.False(t, ok)
}

func TestDecodeModelObject(t *testing.T) {
	obj, err := DecodeModelObject("```json\n{\"score\": 73}\n```")
	require.NoError(t, err)
	assert.Equal(t, 73.0, obj["score"])

	// A mistyped field still decodes; the caller classifies it.
	obj, err = DecodeModelObject(`{"score": "73"}`)
	require.NoError(t, err)
	assert.Equal(t, "73", obj["score"])

	_, err = DecodeModelObject("no json here at all")
	assert.Error(t, err)
}
