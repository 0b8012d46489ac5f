package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New(map[string]string{
		"status":  "success|error",
		"message": "string",
	})
	require.Equal(t, Object, s.Type)
	require.Equal(t, 2, len(s.Properties))
	require.Equal(t, "success|error", s.Properties["status"].Description)
}

func TestKeys(t *testing.T) {
	s := New(map[string]string{
		"b": "second",
		"a": "first",
		"c": "third",
	})
	require.Equal(t, []string{"a", "b", "c"}, s.Keys())
}

func TestPromptText(t *testing.T) {
	s := New(map[string]string{"status": "success|error"})
	text := s.PromptText()
	require.Contains(t, text, `"type": "object"`)
	require.Contains(t, text, `"status"`)
	require.Contains(t, text, "success|error")
}

func TestValidateKeys(t *testing.T) {
	s := New(map[string]string{
		"status":  "success|error",
		"message": "string",
		"data":    "any valid JSON value or null",
	})

	t.Run("all keys present", func(t *testing.T) {
		data := map[string]any{
			"status":  "success",
			"message": "ok",
			"data":    nil,
		}
		require.True(t, ValidateKeys(data, s))
	})

	t.Run("value types are not checked", func(t *testing.T) {
		data := map[string]any{
			"status":  42,
			"message": []any{"not", "a", "string"},
			"data":    map[string]any{},
		}
		require.True(t, ValidateKeys(data, s))
	})

	t.Run("missing key fails", func(t *testing.T) {
		data := map[string]any{
			"status":  "success",
			"message": "ok",
		}
		require.False(t, ValidateKeys(data, s))
	})

	t.Run("extra keys are allowed", func(t *testing.T) {
		data := map[string]any{
			"status":  "success",
			"message": "ok",
			"data":    nil,
			"extra":   true,
		}
		require.True(t, ValidateKeys(data, s))
	})

	t.Run("nil data fails", func(t *testing.T) {
		require.False(t, ValidateKeys(nil, s))
	})
}
