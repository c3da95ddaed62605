package similarity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/avallon/claimlens/ai"
	"github.com/avallon/claimlens/core"
)

// indexState is the in-memory index: corpus vectors paired 1:1 by
// position with their metadata entries.
type indexState struct {
	dim     int
	vectors [][]float32
	entries []core.IndexEntry
}

// Index answers nearest-neighbor queries over embedded claim transcripts.
//
// All state transitions (build, lazy load, query) are serialized by an
// internal mutex, so the index is safe for concurrent use. While no
// in-memory state exists, every query re-checks the durable pair, so
// an index built at the same paths after process start is picked up
// without a restart.
type Index struct {
	embedder    ai.Embedder
	vectorsPath string
	metaPath    string
	logger      *slog.Logger

	mu    sync.Mutex
	state *indexState
}

// Option configures an Index.
type Option func(*Index) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(idx *Index) error {
		if logger == nil {
			logger = slog.Default()
		}
		idx.logger = logger
		return nil
	}
}

// NewIndex creates an index persisted at the given file pair.
// vectorsPath holds the raw vectors, metaPath the per-vector metadata.
func NewIndex(embedder ai.Embedder, vectorsPath, metaPath string, opts ...Option) (*Index, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if vectorsPath == "" || metaPath == "" {
		return nil, ErrPathRequired
	}

	idx := &Index{
		embedder:    embedder,
		vectorsPath: vectorsPath,
		metaPath:    metaPath,
		logger:      slog.Default().With("component", "similarity-index"),
	}
	for _, opt := range opts {
		if err := opt(idx); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

// Build embeds the corpus in one batch, persists the vector/metadata
// pair, and atomically swaps the in-memory state. Prior durable state
// is replaced only after the new pair is fully written.
// Returns the number of indexed records.
func (idx *Index) Build(ctx context.Context, records []*core.ClaimRecord) (int, error) {
	texts := make([]string, len(records))
	entries := make([]core.IndexEntry, len(records))
	for i, record := range records {
		if err := core.ValidateClaimRecord(record); err != nil {
			return 0, err
		}
		texts[i] = record.Transcript
		preview := record.Preview
		if preview == "" {
			preview = core.PreviewText(record.Transcript)
		}
		entries[i] = core.IndexEntry{
			ClaimId: record.Id,
			Label:   record.Label,
			Preview: preview,
		}
	}

	var vectors [][]float32
	if len(texts) > 0 {
		var err error
		vectors, err = idx.embedder.EmbedTexts(ctx, texts)
		if err != nil {
			return 0, fmt.Errorf("embedding corpus: %w", err)
		}
		if len(vectors) != len(texts) {
			return 0, fmt.Errorf("%w: got %d vectors for %d texts", core.ErrMalformedOutput, len(vectors), len(texts))
		}
	}

	dim := 0
	if len(vectors) > 0 {
		dim = len(vectors[0])
	}
	state := &indexState{dim: dim, vectors: vectors, entries: entries}

	if err := writePair(idx.vectorsPath, idx.metaPath, state); err != nil {
		return 0, fmt.Errorf("persisting index: %w", err)
	}

	idx.mu.Lock()
	idx.state = state
	idx.mu.Unlock()

	idx.logger.Info("similarity index built", "records", len(records), "dim", dim)
	return len(records), nil
}

// Load reads the durable pair and validates it as a unit.
// Returns false without error when no durable state exists yet; a cold
// start with no index is a normal condition, not a failure. A pair
// that fails validation returns core.ErrIndexCorrupt and leaves the
// index absent.
func (idx *Index) Load(ctx context.Context) (bool, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.loadLocked()
}

func (idx *Index) loadLocked() (bool, error) {
	state, err := readPair(idx.vectorsPath, idx.metaPath)
	if err != nil {
		idx.state = nil
		return false, err
	}
	if state == nil {
		idx.state = nil
		return false, nil
	}

	idx.state = state
	idx.logger.Info("similarity index loaded", "records", len(state.entries), "dim", state.dim)
	return true, nil
}

// Count returns the number of indexed records, loading the durable
// pair first if needed.
func (idx *Index) Count(ctx context.Context) (int, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if err := idx.ensureLoadedLocked(); err != nil {
		return 0, err
	}
	if idx.state == nil {
		return 0, nil
	}
	return len(idx.state.entries), nil
}

// Query returns up to k historical claims most similar to the
// narrative, ordered by descending similarity with ties broken by
// corpus insertion order. An absent or empty index yields an empty
// result, never an error: "no similar claims" is a legitimate answer.
//
// k < 1 and invalid narratives violate the caller contract and return
// core.ErrInvalidQuery.
func (idx *Index) Query(ctx context.Context, narrative string, k int) ([]core.SimilarityMatch, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be at least 1, got %d", core.ErrInvalidQuery, k)
	}
	if err := core.ValidateNarrative(narrative); err != nil {
		return nil, err
	}

	idx.mu.Lock()
	if err := idx.ensureLoadedLocked(); err != nil {
		idx.mu.Unlock()
		return nil, err
	}
	state := idx.state
	idx.mu.Unlock()

	if state == nil || len(state.entries) == 0 {
		return []core.SimilarityMatch{}, nil
	}

	query, err := idx.embedder.EmbedText(ctx, narrative)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	type scored struct {
		position int
		score    float32
	}
	scores := make([]scored, len(state.vectors))
	for i, vector := range state.vectors {
		scores[i] = scored{position: i, score: dotProduct(query, vector)}
	}
	// Stable sort keeps insertion order for equal scores.
	sort.SliceStable(scores, func(a, b int) bool {
		return scores[a].score > scores[b].score
	})

	if k > len(scores) {
		k = len(scores)
	}
	matches := make([]core.SimilarityMatch, k)
	for i := 0; i < k; i++ {
		entry := state.entries[scores[i].position]
		matches[i] = core.SimilarityMatch{
			ClaimId:    entry.ClaimId,
			Label:      entry.Label,
			Preview:    entry.Preview,
			Similarity: scores[i].score,
		}
	}
	return matches, nil
}

// ensureLoadedLocked performs the lazy load. It retries on every call
// while no in-memory state exists, so an index built after the first
// query is picked up by the next one; the not-yet-built miss costs two
// stat calls. A corrupt pair is logged and treated as an absent index;
// callers that need the corruption signal use Load directly.
func (idx *Index) ensureLoadedLocked() error {
	if idx.state != nil {
		return nil
	}
	if !idx.pairOnDisk() {
		return nil
	}
	if _, err := idx.loadLocked(); err != nil {
		if errors.Is(err, core.ErrIndexCorrupt) {
			idx.logger.Warn("ignoring corrupt index pair, rebuild required", "err", err)
			return nil
		}
		return err
	}
	return nil
}

// pairOnDisk reports whether either index file exists. Both absent is
// the common not-yet-built case and skips the read path entirely; a
// single present file is an incomplete pair and is left for readPair
// to reject.
func (idx *Index) pairOnDisk() bool {
	if _, err := os.Stat(idx.vectorsPath); err == nil {
		return true
	}
	_, err := os.Stat(idx.metaPath)
	return err == nil
}

func dotProduct(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
