package ai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain text", "Maria Lopez", "Maria Lopez"},
		{"surrounding whitespace", "  none \n", "none"},
		{"json fence", "```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"bare fence", "```\nvalue\n```", "value"},
		{"no closing fence", "```json\n{\"a\":1}", "{\"a\":1}"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanResponse(tt.raw))
		})
	}
}

func TestRepairJSON(t *testing.T) {
	t.Run("missing opening quote on key", func(t *testing.T) {
		repaired := RepairJSON(`{memory_issues": "yes", missing_documentation": "no"}`)
		var parsed map[string]string
		require.NoError(t, json.Unmarshal([]byte(repaired), &parsed))
		assert.Equal(t, "yes", parsed["memory_issues"])
		assert.Equal(t, "no", parsed["missing_documentation"])
	})

	t.Run("well-formed json untouched", func(t *testing.T) {
		in := `{"a": "yes", "b": "no"}`
		assert.Equal(t, in, RepairJSON(in))
	})

	t.Run("non-json text untouched", func(t *testing.T) {
		in := "the claimant could not recall the date"
		assert.Equal(t, in, RepairJSON(in))
	})
}

func TestNormalizeVector(t *testing.T) {
	t.Run("unit length", func(t *testing.T) {
		v := NormalizeVector([]float32{3, 4})
		assert.InDelta(t, 0.6, v[0], 1e-6)
		assert.InDelta(t, 0.8, v[1], 1e-6)
	})

	t.Run("zero vector stays zero", func(t *testing.T) {
		v := NormalizeVector([]float32{0, 0, 0})
		assert.Equal(t, []float32{0, 0, 0}, v)
	})

	t.Run("empty vector", func(t *testing.T) {
		assert.Empty(t, NormalizeVector(nil))
	})

	t.Run("input not mutated", func(t *testing.T) {
		in := []float32{3, 4}
		NormalizeVector(in)
		assert.Equal(t, []float32{3, 4}, in)
	})
}
