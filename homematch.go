// Copyright 2025 Poiesic Systems
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


package homematch

import (
	"context"
	"log/slog"

	"github.com/poiesic/homematch/ai"
	"github.com/poiesic/homematch/ai/openai"
	"github.com/poiesic/homematch/core"
	"github.com/poiesic/homematch/ingestion"
	"github.com/poiesic/homematch/match"
	"github.com/poiesic/homematch/scoring"
	"github.com/poiesic/homematch/storage"
	"github.com/poiesic/homematch/storage/badger"
)

// Matcher bundles storage, embeddings, and scoring behind a single handle.
type Matcher struct {
	backend       *badger.Backend
	userRepo      storage.UserRepository
	propertyRepo  storage.PropertyRepository
	embeddingRepo storage.EmbeddingRepository
	embedder      ai.Embedder
	scoringConfig scoring.Config
	logger        *slog.Logger
}

// MatcherOption configures a Matcher.
type MatcherOption func(*matcherOptions)

type matcherOptions struct {
	aiConfig      *ai.Config
	scoringConfig scoring.Config
	embedder      ai.Embedder
}

// WithAIConfig sets the embedding provider configuration.
func WithAIConfig(config *ai.Config) MatcherOption {
	return func(o *matcherOptions) {
		o.aiConfig = config
	}
}

// WithScoringConfig sets the scoring configuration.
func WithScoringConfig(config scoring.Config) MatcherOption {
	return func(o *matcherOptions) {
		o.scoringConfig = config
	}
}

// WithEmbedder overrides the embedding provider. Intended for tests.
func WithEmbedder(embedder ai.Embedder) MatcherOption {
	return func(o *matcherOptions) {
		o.embedder = embedder
	}
}

// NewMatcher opens (or creates) a matcher database at filePath.
// An empty filePath opens an in-memory database.
func NewMatcher(filePath string, opts ...MatcherOption) (*Matcher, error) {
	// Apply options
	options := &matcherOptions{
		aiConfig:      ai.DefaultConfig(), // Default if not provided
		scoringConfig: scoring.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if err := options.scoringConfig.Validate(); err != nil {
		return nil, err
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, filePath == "")
	if err != nil {
		return nil, err
	}

	// Create user repository
	userRepo, err := badger.NewUserRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create property repository
	propertyRepo, err := badger.NewPropertyRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create embedding cache
	embeddingRepo, err := badger.NewEmbeddingRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create embedding provider with configured settings
	embedder := options.embedder
	if embedder == nil {
		embedder, err = openai.NewEmbedder(options.aiConfig)
		if err != nil {
			backend.Close()
			return nil, err
		}
	}

	return &Matcher{
		backend:       backend,
		userRepo:      userRepo,
		propertyRepo:  propertyRepo,
		embeddingRepo: embeddingRepo,
		embedder:      embedder,
		scoringConfig: options.scoringConfig,
		logger:        slog.Default(),
	}, nil
}

func (m *Matcher) Close() error {
	if err := m.backend.Close(); err != nil {
		m.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (m *Matcher) UserRepository() storage.UserRepository {
	return m.userRepo
}

func (m *Matcher) PropertyRepository() storage.PropertyRepository {
	return m.propertyRepo
}

func (m *Matcher) EmbeddingRepository() storage.EmbeddingRepository {
	return m.embeddingRepo
}

// NewEngine creates a match engine backed by the matcher's embedding
// provider and persistent embedding cache.
func (m *Matcher) NewEngine(opts ...match.Option) (*match.Engine, error) {
	opts = append([]match.Option{match.WithVectorCache(m.embeddingRepo)}, opts...)
	return match.NewEngine(m.embedder, m.scoringConfig, opts...)
}

// ImportWorkbook loads an Excel workbook and stores its user preferences
// and property listings. Returns the counts of imported records.
func (m *Matcher) ImportWorkbook(ctx context.Context, path string) (int, int, error) {
	users, properties, err := ingestion.LoadWorkbook(path)
	if err != nil {
		return 0, 0, err
	}

	if _, err := m.userRepo.AddUsers(ctx, users...); err != nil {
		return 0, 0, err
	}
	if _, err := m.propertyRepo.AddProperties(ctx, properties...); err != nil {
		return 0, 0, err
	}

	m.logger.Info("imported workbook", "path", path,
		"users", len(users), "properties", len(properties))
	return len(users), len(properties), nil
}

// RankStored ranks every stored user against every stored property.
func (m *Matcher) RankStored(ctx context.Context, opts ...match.Option) ([]core.MatchRecord, error) {
	users, err := m.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	properties, err := m.propertyRepo.ListProperties(ctx)
	if err != nil {
		return nil, err
	}

	engine, err := m.NewEngine(opts...)
	if err != nil {
		return nil, err
	}
	defer engine.Release()

	return engine.Rank(ctx, users, properties)
}
