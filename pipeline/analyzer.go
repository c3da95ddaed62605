package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"runtime"

	"github.com/avallon/claimlens/classify"
	"github.com/avallon/claimlens/core"
	"github.com/avallon/claimlens/extract"
	"github.com/avallon/claimlens/similarity"
	"github.com/panjf2000/ants/v2"
)

// DefaultTopK is the number of similar claims retrieved per analysis.
const DefaultTopK = 3

// Analyzer runs the full claim analysis pipeline.
type Analyzer struct {
	extractor  *extract.Extractor
	classifier *classify.Classifier
	index      *similarity.Index
	queryPool  *ants.Pool
	topK       int
	logger     *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer) error

// WithPoolSize sets the worker pool size for concurrent similarity queries.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(a *Analyzer) error {
		if size < 1 {
			size = 1
		}

		if a.queryPool != nil {
			a.queryPool.Release()
		}

		queryPool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		a.queryPool = queryPool
		return nil
	}
}

// WithTopK sets how many similar claims each analysis retrieves.
// Default is DefaultTopK.
func WithTopK(k int) Option {
	return func(a *Analyzer) error {
		if k < 1 {
			k = 1
		}
		a.topK = k
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// NewAnalyzer creates a new analysis pipeline.
func NewAnalyzer(
	extractor *extract.Extractor,
	classifier *classify.Classifier,
	index *similarity.Index,
	opts ...Option,
) (*Analyzer, error) {
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	if classifier == nil {
		return nil, ErrClassifierRequired
	}
	if index == nil {
		return nil, ErrIndexRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	queryPool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	a := &Analyzer{
		extractor:  extractor,
		classifier: classifier,
		index:      index,
		queryPool:  queryPool,
		topK:       DefaultTopK,
		logger:     slog.Default().With("component", "pipeline"),
	}

	for _, opt := range opts {
		if optErr := opt(a); optErr != nil {
			a.queryPool.Release()
			return nil, optErr
		}
	}
	return a, nil
}

// Release shuts down the worker pool. The analyzer must not be used
// after Release.
func (a *Analyzer) Release() {
	a.queryPool.Release()
}

type queryResult struct {
	matches []core.SimilarityMatch
	err     error
}

// Analyze runs extraction, classification and similarity retrieval for
// one narrative and returns the composite result.
//
// The caller always receives a complete, well-typed result: extraction
// and classification degrade internally, and a failed similarity query
// degrades to an empty match list. The only error surfaced is an
// invalid narrative, which is a precondition violation.
func (a *Analyzer) Analyze(ctx context.Context, narrative string) (*core.ClaimAnalysis, error) {
	if err := core.ValidateNarrative(narrative); err != nil {
		return nil, err
	}

	// The similarity query is independent of extraction, so it runs on
	// the pool while the extract/classify chain proceeds inline.
	results := make(chan queryResult, 1)
	if err := a.queryPool.Submit(func() {
		matches, err := a.index.Query(ctx, narrative, a.topK)
		results <- queryResult{matches: matches, err: err}
	}); err != nil {
		// Pool saturated or released: query inline instead.
		matches, qerr := a.index.Query(ctx, narrative, a.topK)
		results <- queryResult{matches: matches, err: qerr}
	}

	extracted := a.extractor.Extract(ctx, narrative)
	classification := a.classifier.Classify(ctx, extracted, narrative)

	query := <-results
	matches := query.matches
	if query.err != nil {
		if errors.Is(query.err, core.ErrInvalidQuery) {
			return nil, query.err
		}
		a.logger.Warn("similarity query failed, returning no matches", "err", query.err)
		matches = []core.SimilarityMatch{}
	}
	if matches == nil {
		matches = []core.SimilarityMatch{}
	}

	a.logger.Info("claim analyzed",
		"label", classification.Label,
		"score", classification.Score,
		"entities", len(extracted.DetectedEntities),
		"matches", len(matches))

	return &core.ClaimAnalysis{
		Extracted:      extracted,
		Classification: classification,
		Similar:        matches,
	}, nil
}
