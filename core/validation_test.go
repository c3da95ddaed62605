package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNarrative(t *testing.T) {
	t.Run("valid narrative", func(t *testing.T) {
		assert.NoError(t, ValidateNarrative("My car was hit in the parking lot on Tuesday."))
	})

	t.Run("empty narrative", func(t *testing.T) {
		err := ValidateNarrative("")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidQuery)
		assert.ErrorIs(t, err, ErrEmptyNarrative)
	})

	t.Run("whitespace only", func(t *testing.T) {
		err := ValidateNarrative("   \n\t ")
		assert.ErrorIs(t, err, ErrEmptyNarrative)
	})

	t.Run("at limit", func(t *testing.T) {
		assert.NoError(t, ValidateNarrative(strings.Repeat("x", MaxNarrativeLength)))
	})

	t.Run("over limit", func(t *testing.T) {
		err := ValidateNarrative(strings.Repeat("x", MaxNarrativeLength+1))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidQuery)
		assert.ErrorIs(t, err, ErrNarrativeTooLong)
	})
}

func TestValidateLabel(t *testing.T) {
	assert.NoError(t, ValidateLabel(LabelValid))
	assert.NoError(t, ValidateLabel(LabelInvalid))
	assert.NoError(t, ValidateLabel(LabelFraudulent))
	assert.ErrorIs(t, ValidateLabel(Label("pending")), ErrInvalidLabel)
	assert.ErrorIs(t, ValidateLabel(Label("")), ErrInvalidLabel)
}

func TestValidateClaimRecord(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		record := &ClaimRecord{
			Label:      LabelValid,
			Transcript: "Windshield cracked by road debris on I-35.",
		}
		assert.NoError(t, ValidateClaimRecord(record))
	})

	t.Run("nil record", func(t *testing.T) {
		assert.ErrorIs(t, ValidateClaimRecord(nil), ErrInvalidClaimRecord)
	})

	t.Run("empty transcript", func(t *testing.T) {
		err := ValidateClaimRecord(&ClaimRecord{Label: LabelValid})
		assert.ErrorIs(t, err, ErrInvalidClaimRecord)
		assert.ErrorIs(t, err, ErrEmptyTranscript)
	})

	t.Run("unknown label", func(t *testing.T) {
		err := ValidateClaimRecord(&ClaimRecord{Label: "maybe", Transcript: "t"})
		assert.ErrorIs(t, err, ErrInvalidLabel)
	})
}
