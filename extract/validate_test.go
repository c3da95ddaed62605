package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateShortText(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   string
		ok     bool
	}{
		{"plain value", "Maria Lopez", "Maria Lopez", true},
		{"empty", "", "", false},
		{"literal none", "none", "", false},
		{"uppercase none", "NONE", "", false},
		{"mixed case none", "None", "", false},
		{"too long", strings.Repeat("x", maxFieldLength+1), "", false},
		{"at limit", strings.Repeat("x", maxFieldLength), strings.Repeat("x", maxFieldLength), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := validateShortText(tt.answer, "")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidatePhone(t *testing.T) {
	narrative := "This is Maria Lopez, you can reach me at 555-0100 after the accident."

	t.Run("verbatim phone accepted", func(t *testing.T) {
		got, ok := validatePhone("555-0100", narrative)
		require.True(t, ok)
		assert.Equal(t, "555-0100", got)
	})

	t.Run("normalized variant accepted", func(t *testing.T) {
		// Model may reformat separators; stripping spaces and hyphens
		// on both sides still traces it to the source.
		got, ok := validatePhone("555 0100", narrative)
		require.True(t, ok)
		assert.Equal(t, "555 0100", got)
	})

	t.Run("hallucinated phone rejected", func(t *testing.T) {
		_, ok := validatePhone("555-9999", narrative)
		assert.False(t, ok)
	})

	t.Run("none rejected", func(t *testing.T) {
		_, ok := validatePhone("none", narrative)
		assert.False(t, ok)
	})
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   string
		ok     bool
	}{
		{"plain number", "1200", "1200", true},
		{"decimal", "1200.50", "1200.5", true},
		{"currency symbol", "$1200", "1200", true},
		{"comma separators", "1,200,000", "1200000", true},
		{"currency and commas", "$1,200.50", "1200.5", true},
		{"surrounding words", "about 300 dollars", "300", true},
		{"none", "none", "", false},
		{"empty", "", "", false},
		{"no digits", "a lot of money", "", false},
		{"multiple dots unparsable", "1.2.3", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := validateAmount(tt.answer, "")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateDescription(t *testing.T) {
	t.Run("real sentence accepted", func(t *testing.T) {
		got, ok := validateDescription("Claimant reports a rear-end collision on the highway.", "")
		require.True(t, ok)
		assert.NotEmpty(t, got)
	})

	t.Run("too short rejected", func(t *testing.T) {
		_, ok := validateDescription("crash.", "")
		assert.False(t, ok)
	})

	t.Run("exactly ten chars rejected", func(t *testing.T) {
		_, ok := validateDescription("ten chars.", "")
		assert.False(t, ok)
	})

	t.Run("none rejected", func(t *testing.T) {
		_, ok := validateDescription("none", "")
		assert.False(t, ok)
	})
}
