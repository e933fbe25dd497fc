package match

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/homematch/ai"
	"github.com/poiesic/homematch/core"
	"github.com/poiesic/homematch/scoring"
)

// Engine ranks properties for users with hybrid semantic + numerical scoring.
type Engine struct {
	embedder  ai.Embedder
	cache     VectorCache
	numerical *scoring.NumericalScorer
	hybrid    *scoring.HybridScorer
	config    scoring.Config
	pool      *ants.Pool
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithPoolSize sets the worker pool size for pairwise scoring.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(e *Engine) error {
		if size < 1 {
			size = 1
		}

		if e.pool != nil {
			e.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		e.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithVectorCache sets a persistent embedding cache.
// Without one, every run embeds every row again.
func WithVectorCache(cache VectorCache) Option {
	return func(e *Engine) error {
		e.cache = cache
		return nil
	}
}

// NewEngine creates a match engine.
func NewEngine(embedder ai.Embedder, config scoring.Config, opts ...Option) (*Engine, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		embedder:  embedder,
		numerical: scoring.NewNumericalScorer(config),
		hybrid:    scoring.NewHybridScorer(config),
		config:    config,
		pool:      pool,
		logger:    slog.Default().With("component", "match-engine"),
	}

	for _, opt := range opts {
		if optErr := opt(e); optErr != nil {
			e.Release()
			return nil, optErr
		}
	}

	return e, nil
}

// Release frees the worker pool. The engine must not be used afterwards.
func (e *Engine) Release() {
	if e.pool != nil {
		e.pool.Release()
	}
}

// Rank scores the full cross product of users and properties and returns
// the top-K matches per user, groups ordered by ascending user id and
// records within a group ordered by descending match score.
//
// Ties keep the property enumeration order. That is a simplicity choice,
// not a semantic guarantee; callers must not rely on any particular order
// among equal scores.
//
// Empty users or properties yield an empty result. A record without an
// identity, or an embedding provider failure, aborts the run.
func (e *Engine) Rank(ctx context.Context, users []*core.UserPreference, properties []*core.PropertyListing) ([]core.MatchRecord, error) {
	for _, user := range users {
		if err := core.ValidateUserPreference(user); err != nil {
			return nil, err
		}
	}
	for _, property := range properties {
		if err := core.ValidatePropertyListing(property); err != nil {
			return nil, err
		}
	}

	if len(users) == 0 || len(properties) == 0 {
		return []core.MatchRecord{}, nil
	}

	e.logger.Info("ranking properties", "users", len(users), "properties", len(properties), "topK", e.config.TopK)

	userTexts := make([]string, len(users))
	for i, user := range users {
		userTexts[i] = UserText(user)
	}
	propertyTexts := make([]string, len(properties))
	for i, property := range properties {
		propertyTexts[i] = PropertyText(property)
	}

	// Each distinct row is embedded exactly once per run; embedding is the
	// dominant cost, not the scoring loop.
	userVectors, err := e.embedTexts(ctx, userTexts)
	if err != nil {
		return nil, err
	}
	propertyVectors, err := e.embedTexts(ctx, propertyTexts)
	if err != nil {
		return nil, err
	}

	// One result group per user, written only by its own task. Workers never
	// share slices, so the output is identical for any pool size.
	groups := make([][]core.MatchRecord, len(users))
	var wg sync.WaitGroup
	for i := range users {
		wg.Add(1)
		userIdx := i
		task := func() {
			defer wg.Done()
			groups[userIdx] = e.rankForUser(users[userIdx], userVectors[userIdx], properties, propertyVectors)
		}
		if submitErr := e.pool.Submit(task); submitErr != nil {
			task()
		}
	}
	wg.Wait()

	// Concatenate groups in ascending user id order.
	order := make([]int, len(users))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return users[order[a]].Id < users[order[b]].Id
	})

	results := make([]core.MatchRecord, 0, len(users)*min(e.config.TopK, len(properties)))
	for _, idx := range order {
		results = append(results, groups[idx]...)
	}
	return results, nil
}

// rankForUser scores one user against every property and keeps the top-K.
func (e *Engine) rankForUser(user *core.UserPreference, userVector []float32, properties []*core.PropertyListing, propertyVectors [][]float32) []core.MatchRecord {
	records := make([]core.MatchRecord, len(properties))
	for i, property := range properties {
		semantic := scoring.SemanticScore(userVector, propertyVectors[i])
		numerical, ok := e.numerical.Score(user, property)
		records[i] = core.MatchRecord{
			UserId:     user.Id,
			PropertyId: property.Id,
			MatchScore: e.hybrid.Score(semantic, numerical, ok),
		}
	}

	sort.SliceStable(records, func(a, b int) bool {
		return records[a].MatchScore > records[b].MatchScore
	})
	if len(records) > e.config.TopK {
		records = records[:e.config.TopK]
	}
	return records
}

// embedTexts embeds a batch of texts, consulting the cache when one is
// configured. Cache failures degrade to recomputation and are never fatal;
// an embedding provider failure is.
func (e *Engine) embedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if e.cache == nil {
		vectors, err := e.embedder.EmbedTexts(ctx, texts)
		if err != nil {
			return nil, err
		}
		if len(vectors) != len(texts) {
			return nil, fmt.Errorf("%w: expected %d, received %d", ErrEmbeddingMismatch, len(texts), len(vectors))
		}
		return vectors, nil
	}

	vectors := make([][]float32, len(texts))
	ids := make([]core.ID, len(texts))
	var missing []int
	for i, text := range texts {
		ids[i] = core.IDFromContent(text)
		cached, err := e.cache.GetEmbedding(ctx, ids[i])
		if err != nil {
			e.logger.Warn("embedding cache read failed", "err", err)
		}
		if len(cached) > 0 {
			vectors[i] = cached
			continue
		}
		missing = append(missing, i)
	}

	if len(missing) == 0 {
		return vectors, nil
	}

	e.logger.Debug("embedding cache misses", "missing", len(missing), "total", len(texts))

	missingTexts := make([]string, len(missing))
	for i, idx := range missing {
		missingTexts[i] = texts[idx]
	}
	computed, err := e.embedder.EmbedTexts(ctx, missingTexts)
	if err != nil {
		return nil, err
	}
	if len(computed) != len(missingTexts) {
		return nil, fmt.Errorf("%w: expected %d, received %d", ErrEmbeddingMismatch, len(missingTexts), len(computed))
	}

	for i, idx := range missing {
		vectors[idx] = computed[i]
		if putErr := e.cache.PutEmbedding(ctx, ids[idx], computed[i]); putErr != nil {
			e.logger.Warn("embedding cache write failed", "err", putErr)
		}
	}
	return vectors, nil
}
