package classify

import (
	"context"
	"strings"
	"testing"

	"github.com/avallon/claimlens/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFraudPrompt(t *testing.T) {
	prompt := buildFraudPrompt("the narrative text")

	assert.Contains(t, prompt, "STRICT JSON ONLY")
	assert.Contains(t, prompt, "the narrative text")
	for _, indicator := range fraudIndicators {
		assert.Contains(t, prompt, indicator.flag)
		assert.Contains(t, prompt, indicator.question)
	}
}

func TestParseFraudAnswers(t *testing.T) {
	t.Run("strict json", func(t *testing.T) {
		answers := parseFraudAnswers(`{"memory_issues": "yes", "missing_documentation": "no", "third_party_caller": "no"}`)
		assert.True(t, answers["memory_issues"])
		assert.False(t, answers["missing_documentation"])
		assert.False(t, answers["third_party_caller"])
	})

	t.Run("fenced json", func(t *testing.T) {
		raw := "```json\n{\"memory_issues\": \"no\", \"missing_documentation\": \"yes\", \"third_party_caller\": \"no\"}\n```"
		answers := parseFraudAnswers(raw)
		assert.False(t, answers["memory_issues"])
		assert.True(t, answers["missing_documentation"])
	})

	t.Run("free-form yes asserts all indicators", func(t *testing.T) {
		answers := parseFraudAnswers("Yes, the caller seems evasive about the details.")
		for _, indicator := range fraudIndicators {
			assert.True(t, answers[indicator.flag], indicator.flag)
		}
	})

	t.Run("free-form without yes asserts nothing", func(t *testing.T) {
		answers := parseFraudAnswers("The narrative looks consistent and complete.")
		assert.Empty(t, answers)
	})
}

func TestFraudSignals_RequiresCorroboration(t *testing.T) {
	gen := mock.NewMockGenerator()
	gen.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
		return `{"memory_issues": "yes", "missing_documentation": "yes", "third_party_caller": "yes"}`, nil
	}
	classifier, err := NewClassifier(gen)
	require.NoError(t, err)

	t.Run("uncorroborated yes is dropped", func(t *testing.T) {
		triggered := classifier.fraudSignals(context.Background(), "A routine fender bender with full paperwork.")
		assert.Empty(t, triggered)
	})

	t.Run("keywords confirm the model", func(t *testing.T) {
		triggered := classifier.fraudSignals(context.Background(), "I can't recall the exact date and I have no receipt.")
		flags := make([]string, len(triggered))
		for i, ind := range triggered {
			flags[i] = ind.flag
		}
		assert.Equal(t, []string{"memory_issues", "missing_documentation"}, flags)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		triggered := classifier.fraudSignals(context.Background(), "I'm calling ON BEHALF of my neighbor.")
		require.Len(t, triggered, 1)
		assert.Equal(t, "third_party_caller", triggered[0].flag)
	})
}

func TestFraudSignals_ModelNoIsFinal(t *testing.T) {
	// Keywords alone never trigger a flag; the model must assert it.
	gen := mock.NewMockGenerator()
	gen.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
		return `{"memory_issues": "no", "missing_documentation": "no", "third_party_caller": "no"}`, nil
	}
	classifier, err := NewClassifier(gen)
	require.NoError(t, err)

	triggered := classifier.fraudSignals(context.Background(), "I can't recall and I have no receipt, on behalf of my brother.")
	assert.Empty(t, triggered)
}

func TestFraudSignals_PromptCarriesNarrative(t *testing.T) {
	gen := mock.NewMockGenerator()
	classifier, err := NewClassifier(gen)
	require.NoError(t, err)

	classifier.fraudSignals(context.Background(), "unique narrative marker")
	prompts := gen.Prompts()
	require.Len(t, prompts, 1)
	assert.True(t, strings.Contains(prompts[0], "unique narrative marker"))
}
