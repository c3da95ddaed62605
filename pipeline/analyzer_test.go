package pipeline

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/avallon/claimlens/ai/mock"
	"github.com/avallon/claimlens/classify"
	"github.com/avallon/claimlens/core"
	"github.com/avallon/claimlens/extract"
	"github.com/avallon/claimlens/similarity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleNarrative = "Maria Lopez, phone 555-0100, incident on 2024-01-05 in Austin, claimed 1200"

func analysisScript() map[string]string {
	return map[string]string{
		"full name":              "Maria Lopez",
		"contact phone number":   "555-0100",
		"policy number":          "none",
		"date and time":          "2024-01-05",
		"location of the":        "Austin",
		"Summarize the incident": "Maria Lopez reports an incident in Austin with a claim of 1200.",
		"monetary amount":        "1200",
		"fraud screening":        `{"memory_issues": "no", "missing_documentation": "no", "third_party_caller": "no"}`,
	}
}

func sampleCorpus() []*core.ClaimRecord {
	transcripts := []string{
		"Rear-ended at a stop light on Main Street, bumper damage.",
		"Hail storm dented the roof of my parked car overnight.",
		"Caller cannot recall when or where the incident happened.",
		"Kitchen fire damaged the stove and cabinets.",
	}
	records := make([]*core.ClaimRecord, len(transcripts))
	for i, transcript := range transcripts {
		records[i] = &core.ClaimRecord{
			Id:         core.IDFromContent(transcript),
			Label:      core.LabelValid,
			Transcript: transcript,
		}
	}
	return records
}

func newTestAnalyzer(t *testing.T, gen *mock.MockGenerator, buildIndex bool, opts ...Option) *Analyzer {
	t.Helper()

	dir := t.TempDir()
	index, err := similarity.NewIndex(mock.NewMockEmbedder(),
		filepath.Join(dir, "claims.index"), filepath.Join(dir, "claims.meta"))
	require.NoError(t, err)
	if buildIndex {
		_, err = index.Build(context.Background(), sampleCorpus())
		require.NoError(t, err)
	}

	extractor, err := extract.NewExtractor(gen)
	require.NoError(t, err)
	classifier, err := classify.NewClassifier(gen)
	require.NoError(t, err)

	analyzer, err := NewAnalyzer(extractor, classifier, index, opts...)
	require.NoError(t, err)
	t.Cleanup(analyzer.Release)
	return analyzer
}

func TestAnalyze_CompositeResult(t *testing.T) {
	gen := mock.NewScriptedGenerator(analysisScript())
	analyzer := newTestAnalyzer(t, gen, true)

	analysis, err := analyzer.Analyze(context.Background(), sampleNarrative)
	require.NoError(t, err)
	require.NotNil(t, analysis)

	require.NotNil(t, analysis.Extracted)
	assert.Equal(t, "Maria Lopez", analysis.Extracted.ClaimantName)
	assert.Equal(t, "555-0100", analysis.Extracted.ContactPhone)
	assert.NotEmpty(t, analysis.Extracted.IncidentDescription)

	require.NotNil(t, analysis.Classification)
	assert.Equal(t, core.LabelValid, analysis.Classification.Label)
	assert.GreaterOrEqual(t, analysis.Classification.Score, 0.6)

	assert.Len(t, analysis.Similar, DefaultTopK)
	for i := 1; i < len(analysis.Similar); i++ {
		assert.LessOrEqual(t, analysis.Similar[i].Similarity, analysis.Similar[i-1].Similarity)
	}
}

func TestAnalyze_InvalidNarrative(t *testing.T) {
	analyzer := newTestAnalyzer(t, mock.NewMockGenerator(), true)

	t.Run("empty", func(t *testing.T) {
		_, err := analyzer.Analyze(context.Background(), "   ")
		assert.ErrorIs(t, err, core.ErrInvalidQuery)
	})

	t.Run("oversized", func(t *testing.T) {
		long := make([]byte, core.MaxNarrativeLength+1)
		for i := range long {
			long[i] = 'x'
		}
		_, err := analyzer.Analyze(context.Background(), string(long))
		assert.ErrorIs(t, err, core.ErrInvalidQuery)
	})
}

func TestAnalyze_AbsentIndex(t *testing.T) {
	gen := mock.NewScriptedGenerator(analysisScript())
	analyzer := newTestAnalyzer(t, gen, false)

	analysis, err := analyzer.Analyze(context.Background(), sampleNarrative)
	require.NoError(t, err)
	assert.Empty(t, analysis.Similar)
	assert.NotNil(t, analysis.Extracted)
	assert.NotNil(t, analysis.Classification)
}

func TestAnalyze_GeneratorUnavailable(t *testing.T) {
	gen := mock.NewMockGenerator()
	gen.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
		return "", core.ErrModelUnavailable
	}
	analyzer := newTestAnalyzer(t, gen, true)

	// The caller still receives a complete composite result: extraction
	// degrades to the narrative prefix, classification scores the
	// missing fields, similarity still answers.
	analysis, err := analyzer.Analyze(context.Background(), sampleNarrative)
	require.NoError(t, err)

	assert.NotEmpty(t, analysis.Extracted.IncidentDescription)
	assert.Empty(t, analysis.Extracted.ClaimantName)
	assert.Equal(t, core.LabelFraudulent, analysis.Classification.Label)
	assert.InDelta(t, 0.25, analysis.Classification.Score, 1e-9)
	assert.Len(t, analysis.Similar, DefaultTopK)
}

func TestAnalyze_TopKOption(t *testing.T) {
	gen := mock.NewScriptedGenerator(analysisScript())
	analyzer := newTestAnalyzer(t, gen, true, WithTopK(1))

	analysis, err := analyzer.Analyze(context.Background(), sampleNarrative)
	require.NoError(t, err)
	assert.Len(t, analysis.Similar, 1)
}

func TestAnalyze_ConcurrentInvocations(t *testing.T) {
	gen := mock.NewScriptedGenerator(analysisScript())
	analyzer := newTestAnalyzer(t, gen, true, WithPoolSize(2))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			analysis, err := analyzer.Analyze(context.Background(), sampleNarrative)
			assert.NoError(t, err)
			assert.NotNil(t, analysis)
		}()
	}
	wg.Wait()
}

func TestNewAnalyzer_Validation(t *testing.T) {
	gen := mock.NewMockGenerator()
	extractor, err := extract.NewExtractor(gen)
	require.NoError(t, err)
	classifier, err := classify.NewClassifier(gen)
	require.NoError(t, err)
	dir := t.TempDir()
	index, err := similarity.NewIndex(mock.NewMockEmbedder(),
		filepath.Join(dir, "claims.index"), filepath.Join(dir, "claims.meta"))
	require.NoError(t, err)

	t.Run("nil extractor", func(t *testing.T) {
		_, err := NewAnalyzer(nil, classifier, index)
		assert.ErrorIs(t, err, ErrExtractorRequired)
	})

	t.Run("nil classifier", func(t *testing.T) {
		_, err := NewAnalyzer(extractor, nil, index)
		assert.ErrorIs(t, err, ErrClassifierRequired)
	})

	t.Run("nil index", func(t *testing.T) {
		_, err := NewAnalyzer(extractor, classifier, nil)
		assert.ErrorIs(t, err, ErrIndexRequired)
	})
}
