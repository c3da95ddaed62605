package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		id1 := IDFromContent("rear-ended on the highway")
		id2 := IDFromContent("rear-ended on the highway")
		assert.Equal(t, id1, id2)
	})

	t.Run("different content different ids", func(t *testing.T) {
		id1 := IDFromContent("stolen bicycle")
		id2 := IDFromContent("kitchen fire")
		assert.NotEqual(t, id1, id2)
	})

	t.Run("empty content is valid", func(t *testing.T) {
		id := IDFromContent("")
		assert.NotZero(t, id)
	})
}

func TestPreviewText(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "small claim", PreviewText("small claim"))
	})

	t.Run("long text truncated", func(t *testing.T) {
		long := strings.Repeat("a", 500)
		preview := PreviewText(long)
		assert.Len(t, preview, PreviewLength)
	})

	t.Run("multibyte runes preserved", func(t *testing.T) {
		long := strings.Repeat("é", PreviewLength+10)
		preview := PreviewText(long)
		assert.Equal(t, PreviewLength, len([]rune(preview)))
		assert.Equal(t, strings.Repeat("é", PreviewLength), preview)
	})
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "abc", TruncateText("abcdef", 3))
	assert.Equal(t, "abcdef", TruncateText("abcdef", 10))
	assert.Equal(t, "", TruncateText("", 5))
}
