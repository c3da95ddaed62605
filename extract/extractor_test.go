package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/avallon/claimlens/ai/mock"
	"github.com/avallon/claimlens/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleNarrative = "Maria Lopez, phone 555-0100, incident on 2024-01-05 in Austin, claimed 1200"

func fullScript() map[string]string {
	return map[string]string{
		"full name":              "Maria Lopez",
		"contact phone number":   "555-0100",
		"policy number":          "none",
		"date and time":          "2024-01-05",
		"location of the":        "Austin",
		"Summarize the incident": "Maria Lopez reports an incident in Austin with a claim of 1200.",
		"monetary amount":        "1200",
	}
}

func TestExtract_AllFields(t *testing.T) {
	gen := mock.NewScriptedGenerator(fullScript())
	extractor, err := NewExtractor(gen)
	require.NoError(t, err)

	claim := extractor.Extract(context.Background(), sampleNarrative)
	require.NotNil(t, claim)

	assert.Equal(t, "Maria Lopez", claim.ClaimantName)
	assert.Equal(t, "555-0100", claim.ContactPhone)
	assert.Empty(t, claim.PolicyNumber)
	assert.Equal(t, "2024-01-05", claim.IncidentDatetime)
	assert.Equal(t, "Austin", claim.IncidentLocation)
	require.NotNil(t, claim.ClaimedAmount)
	assert.Equal(t, 1200.0, *claim.ClaimedAmount)
	assert.NotEmpty(t, claim.IncidentDescription)

	assert.Equal(t, []string{
		"claimant_name",
		"contact_phone",
		"incident_datetime",
		"incident_location",
		"incident_description",
		"claimed_amount",
	}, claim.DetectedEntities)

	// One prompt per field
	assert.Equal(t, len(fieldSpecs), gen.CallCount())
}

func TestExtract_DescriptionAlwaysPresent(t *testing.T) {
	t.Run("summary too short falls back to narrative prefix", func(t *testing.T) {
		script := fullScript()
		script["Summarize the incident"] = "crash."
		gen := mock.NewScriptedGenerator(script)
		extractor, err := NewExtractor(gen)
		require.NoError(t, err)

		claim := extractor.Extract(context.Background(), sampleNarrative)
		assert.Equal(t, sampleNarrative, claim.IncidentDescription)
	})

	t.Run("long narrative truncated to 200 characters", func(t *testing.T) {
		narrative := strings.Repeat("a", 500)
		gen := mock.NewMockGenerator() // answers "none" everywhere
		extractor, err := NewExtractor(gen)
		require.NoError(t, err)

		claim := extractor.Extract(context.Background(), narrative)
		assert.Len(t, claim.IncidentDescription, descriptionFallbackLength)
	})
}

func TestExtract_SingleFieldFailureIsContained(t *testing.T) {
	script := fullScript()
	gen := mock.NewScriptedGenerator(script)
	gen.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
		// Name prompt blows up; everything else answers normally.
		if strings.Contains(prompt, "full name") {
			return "", core.ErrModelUnavailable
		}
		for key, answer := range script {
			if strings.Contains(prompt, key) {
				return answer, nil
			}
		}
		return "none", nil
	}

	extractor, err := NewExtractor(gen)
	require.NoError(t, err)

	claim := extractor.Extract(context.Background(), sampleNarrative)
	assert.Empty(t, claim.ClaimantName)
	assert.Equal(t, "555-0100", claim.ContactPhone)
	assert.Equal(t, "2024-01-05", claim.IncidentDatetime)
	assert.NotContains(t, claim.DetectedEntities, "claimant_name")
	assert.Contains(t, claim.DetectedEntities, "contact_phone")
}

func TestExtract_BackendUnavailable(t *testing.T) {
	gen := mock.NewMockGenerator()
	gen.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
		return "", core.ErrModelUnavailable
	}

	extractor, err := NewExtractor(gen)
	require.NoError(t, err)

	claim := extractor.Extract(context.Background(), sampleNarrative)
	require.NotNil(t, claim)
	assert.Equal(t, sampleNarrative, claim.IncidentDescription)
	assert.Empty(t, claim.ClaimantName)
	assert.Empty(t, claim.ContactPhone)
	assert.Empty(t, claim.PolicyNumber)
	assert.Empty(t, claim.IncidentDatetime)
	assert.Empty(t, claim.IncidentLocation)
	assert.Nil(t, claim.ClaimedAmount)
	assert.Equal(t, []string{"incident_description"}, claim.DetectedEntities)
}

func TestExtract_PhoneHallucinationGuard(t *testing.T) {
	script := fullScript()
	script["contact phone number"] = "555-9999" // not in the narrative
	gen := mock.NewScriptedGenerator(script)
	extractor, err := NewExtractor(gen)
	require.NoError(t, err)

	claim := extractor.Extract(context.Background(), sampleNarrative)
	assert.Empty(t, claim.ContactPhone)
	assert.NotContains(t, claim.DetectedEntities, "contact_phone")
}

func TestExtract_FencedAnswersCleaned(t *testing.T) {
	script := fullScript()
	script["full name"] = "```\nMaria Lopez\n```"
	gen := mock.NewScriptedGenerator(script)
	extractor, err := NewExtractor(gen)
	require.NoError(t, err)

	claim := extractor.Extract(context.Background(), sampleNarrative)
	assert.Equal(t, "Maria Lopez", claim.ClaimantName)
}

func TestNewExtractor_NilGenerator(t *testing.T) {
	_, err := NewExtractor(nil)
	assert.ErrorIs(t, err, ErrGeneratorRequired)
}
