// Copyright 2025 Avallon Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package claimlens analyzes insurance claim narratives: it extracts
// structured fields, scores the claim for completeness and fraud
// signals, and retrieves similar historical claims from a persisted
// vector index.
package claimlens

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/avallon/claimlens/ai"
	"github.com/avallon/claimlens/ai/openai"
	"github.com/avallon/claimlens/classify"
	"github.com/avallon/claimlens/core"
	"github.com/avallon/claimlens/extract"
	"github.com/avallon/claimlens/pipeline"
	"github.com/avallon/claimlens/similarity"
	"github.com/avallon/claimlens/storage"
	"github.com/avallon/claimlens/storage/badger"
)

// Index file names under the service data directory.
const (
	vectorsFileName = "claims.index"
	metaFileName    = "claims.meta"
	corpusDirName   = "corpus"
)

// Service wires the corpus store, the AI provider and the analysis
// pipeline behind one entry point.
type Service struct {
	backend  *badger.Backend
	claims   storage.ClaimRepository
	provider ai.AIProvider
	index    *similarity.Index
	analyzer *pipeline.Analyzer
	logger   *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	topK     int
}

// WithAIConfig sets the AI backend configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(cfg *ai.Config) ServiceOption {
	return func(o *serviceOptions) {
		o.aiConfig = cfg
	}
}

// WithProvider supplies a pre-built AI provider instead of constructing
// one from the configuration. The service takes ownership and closes it.
func WithProvider(provider ai.AIProvider) ServiceOption {
	return func(o *serviceOptions) {
		o.provider = provider
	}
}

// WithTopK sets how many similar claims each analysis retrieves.
// Default is pipeline.DefaultTopK.
func WithTopK(k int) ServiceOption {
	return func(o *serviceOptions) {
		o.topK = k
	}
}

// NewService opens (or creates) a service rooted at dataDir. The
// directory holds the corpus database and the similarity index pair.
func NewService(dataDir string, opts ...ServiceOption) (*Service, error) {
	options := &serviceOptions{
		aiConfig: ai.DefaultConfig(),
		topK:     pipeline.DefaultTopK,
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filepath.Join(dataDir, corpusDirName), false)
	if err != nil {
		return nil, err
	}

	claims, err := badger.NewClaimRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			claims.Close()
			backend.Close()
			return nil, err
		}
	}

	index, err := similarity.NewIndex(provider.Embedder(),
		filepath.Join(dataDir, vectorsFileName),
		filepath.Join(dataDir, metaFileName))
	if err != nil {
		provider.Close()
		claims.Close()
		backend.Close()
		return nil, err
	}

	extractor, err := extract.NewExtractor(provider.Generator())
	if err != nil {
		provider.Close()
		claims.Close()
		backend.Close()
		return nil, err
	}

	classifier, err := classify.NewClassifier(provider.Generator())
	if err != nil {
		provider.Close()
		claims.Close()
		backend.Close()
		return nil, err
	}

	analyzer, err := pipeline.NewAnalyzer(extractor, classifier, index,
		pipeline.WithTopK(options.topK))
	if err != nil {
		provider.Close()
		claims.Close()
		backend.Close()
		return nil, err
	}

	return &Service{
		backend:  backend,
		claims:   claims,
		provider: provider,
		index:    index,
		analyzer: analyzer,
		logger:   slog.Default(),
	}, nil
}

// Analyze runs the full pipeline for one narrative.
func (s *Service) Analyze(ctx context.Context, narrative string) (*core.ClaimAnalysis, error) {
	return s.analyzer.Analyze(ctx, narrative)
}

// SeedCorpus loads a JSON corpus file into the claim store.
// Returns the number of records added. Seeding does not rebuild the
// index; call RebuildIndex afterwards.
func (s *Service) SeedCorpus(ctx context.Context, path string) (int, error) {
	records, err := storage.LoadCorpusFile(path)
	if err != nil {
		return 0, err
	}
	added, err := s.claims.AddClaims(ctx, records...)
	if err != nil {
		return 0, err
	}
	s.logger.Info("corpus seeded", "path", path, "records", len(added))
	return len(added), nil
}

// RebuildIndex re-embeds the whole corpus and replaces the similarity
// index. Returns the number of indexed records.
func (s *Service) RebuildIndex(ctx context.Context) (int, error) {
	records, err := s.claims.AllClaims(ctx)
	if err != nil {
		return 0, err
	}
	return s.index.Build(ctx, records)
}

// Claims returns the corpus repository.
func (s *Service) Claims() storage.ClaimRepository {
	return s.claims
}

// Index returns the similarity index.
func (s *Service) Index() *similarity.Index {
	return s.index
}

// Close releases the pipeline, the AI provider and the corpus store.
func (s *Service) Close() error {
	s.analyzer.Release()

	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}
	if err := s.claims.Close(); err != nil {
		s.logger.Error("error closing claim repository", "err", err)
		return err
	}
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
