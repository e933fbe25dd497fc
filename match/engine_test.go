package match

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/poiesic/homematch/ai/mock"
	"github.com/poiesic/homematch/core"
	"github.com/poiesic/homematch/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keywordVectors returns an EmbedTexts implementation that assigns a fixed
// vector to each text based on a keyword it contains, so tests control the
// semantic score exactly.
func keywordVectors(vectors map[string][]float32) func(ctx context.Context, texts []string) ([][]float32, error) {
	return func(ctx context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i, text := range texts {
			out[i] = []float32{1, 0} // default: neutral direction
			for keyword, vector := range vectors {
				if strings.Contains(text, keyword) {
					out[i] = vector
					break
				}
			}
		}
		return out, nil
	}
}

func testUsers() []*core.UserPreference {
	return []*core.UserPreference{
		{
			Id:          "U1",
			Budget:      core.Some(500000),
			Bedrooms:    core.Some(3),
			Bathrooms:   core.Some(2),
			Description: "quiet neighborhood",
		},
		{
			Id:          "U2",
			Budget:      core.Some(300000),
			Bedrooms:    core.Some(2),
			Bathrooms:   core.Some(1),
			Description: "close to downtown",
		},
	}
}

func testProperties() []*core.PropertyListing {
	return []*core.PropertyListing{
		{Id: "P1", Price: core.Some(475000), Bedrooms: core.Some(3), Bathrooms: core.Some(2), Description: "peaceful street"},
		{Id: "P2", Price: core.Some(310000), Bedrooms: core.Some(2), Bathrooms: core.Some(1), Description: "city center flat"},
		{Id: "P3", Price: core.Some(800000), Bedrooms: core.Some(5), Bathrooms: core.Some(4), Description: "sprawling estate"},
	}
}

func TestNewEngine(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		engine, err := NewEngine(mock.NewMockEmbedder(), scoring.DefaultConfig())
		require.NoError(t, err)
		require.NotNil(t, engine)
		engine.Release()
	})

	t.Run("nil embedder", func(t *testing.T) {
		_, err := NewEngine(nil, scoring.DefaultConfig())
		assert.Equal(t, ErrEmbedderRequired, err)
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := NewEngine(mock.NewMockEmbedder(), scoring.NewConfig(scoring.WithTopK(0)))
		assert.Error(t, err)
	})
}

func TestEngine_Rank(t *testing.T) {
	ctx := context.Background()

	newEngine := func(t *testing.T, opts ...Option) (*Engine, *mock.MockEmbedder) {
		t.Helper()
		embedder := mock.NewMockEmbedder()
		engine, err := NewEngine(embedder, scoring.NewConfig(scoring.WithTopK(2)), opts...)
		require.NoError(t, err)
		t.Cleanup(engine.Release)
		return engine, embedder
	}

	t.Run("keeps top-k per user", func(t *testing.T) {
		engine, _ := newEngine(t)

		results, err := engine.Rank(ctx, testUsers(), testProperties())
		require.NoError(t, err)
		require.Len(t, results, 4) // 2 users x min(2, 3 properties)

		perUser := map[string]int{}
		for _, record := range results {
			perUser[record.UserId]++
		}
		assert.Equal(t, 2, perUser["U1"])
		assert.Equal(t, 2, perUser["U2"])
	})

	t.Run("fewer properties than top-k", func(t *testing.T) {
		engine, _ := newEngine(t)

		results, err := engine.Rank(ctx, testUsers(), testProperties()[:1])
		require.NoError(t, err)
		assert.Len(t, results, 2) // one record per user
	})

	t.Run("scores are non-increasing within each group", func(t *testing.T) {
		engine, _ := newEngine(t)

		results, err := engine.Rank(ctx, testUsers(), testProperties())
		require.NoError(t, err)

		for i := 1; i < len(results); i++ {
			if results[i].UserId == results[i-1].UserId {
				assert.LessOrEqual(t, results[i].MatchScore, results[i-1].MatchScore)
			}
		}
	})

	t.Run("groups are ordered by ascending user id", func(t *testing.T) {
		engine, _ := newEngine(t)

		users := testUsers()
		users[0], users[1] = users[1], users[0] // input order U2, U1

		results, err := engine.Rank(ctx, users, testProperties())
		require.NoError(t, err)
		require.Len(t, results, 4)
		assert.Equal(t, "U1", results[0].UserId)
		assert.Equal(t, "U1", results[1].UserId)
		assert.Equal(t, "U2", results[2].UserId)
		assert.Equal(t, "U2", results[3].UserId)
	})

	t.Run("every pair exists in the cross product", func(t *testing.T) {
		engine, _ := newEngine(t)

		results, err := engine.Rank(ctx, testUsers(), testProperties())
		require.NoError(t, err)

		propertyIds := map[string]bool{"P1": true, "P2": true, "P3": true}
		for _, record := range results {
			assert.Contains(t, []string{"U1", "U2"}, record.UserId)
			assert.True(t, propertyIds[record.PropertyId])
			assert.GreaterOrEqual(t, record.MatchScore, 0.0)
			assert.LessOrEqual(t, record.MatchScore, 100.0)
		}
	})

	t.Run("embeds each collection once, not once per pair", func(t *testing.T) {
		engine, embedder := newEngine(t)

		_, err := engine.Rank(ctx, testUsers(), testProperties())
		require.NoError(t, err)
		// One EmbedTexts batch for users, one for properties.
		assert.Equal(t, 2, embedder.CallCount())
	})

	t.Run("idempotent for identical inputs", func(t *testing.T) {
		engine, _ := newEngine(t)

		first, err := engine.Rank(ctx, testUsers(), testProperties())
		require.NoError(t, err)
		second, err := engine.Rank(ctx, testUsers(), testProperties())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("result is independent of pool size", func(t *testing.T) {
		serial, _ := newEngine(t, WithPoolSize(1))
		parallel, _ := newEngine(t, WithPoolSize(8))

		users := testUsers()
		properties := testProperties()

		want, err := serial.Rank(ctx, users, properties)
		require.NoError(t, err)
		got, err := parallel.Rank(ctx, users, properties)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("empty properties yield empty result", func(t *testing.T) {
		engine, _ := newEngine(t)

		results, err := engine.Rank(ctx, testUsers(), nil)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("empty users yield empty result", func(t *testing.T) {
		engine, _ := newEngine(t)

		results, err := engine.Rank(ctx, nil, testProperties())
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("missing user id is fatal", func(t *testing.T) {
		engine, _ := newEngine(t)

		users := testUsers()
		users[1].Id = ""
		_, err := engine.Rank(ctx, users, testProperties())
		assert.ErrorIs(t, err, core.ErrMissingUserID)
	})

	t.Run("missing property id is fatal", func(t *testing.T) {
		engine, _ := newEngine(t)

		properties := testProperties()
		properties[0].Id = ""
		_, err := engine.Rank(ctx, testUsers(), properties)
		assert.ErrorIs(t, err, core.ErrMissingPropertyID)
	})

	t.Run("embedding provider failure is fatal", func(t *testing.T) {
		engine, embedder := newEngine(t)

		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return nil, errors.New("service down")
		}
		_, err := engine.Rank(ctx, testUsers(), testProperties())
		assert.Error(t, err)
	})

	t.Run("embedding count mismatch is fatal", func(t *testing.T) {
		engine, embedder := newEngine(t)

		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return [][]float32{{1, 0}}, nil
		}
		_, err := engine.Rank(ctx, testUsers(), testProperties())
		assert.ErrorIs(t, err, ErrEmbeddingMismatch)
	})
}

func TestEngine_Rank_Hybrid(t *testing.T) {
	ctx := context.Background()

	t.Run("structured fit beats semantic-only fit", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = keywordVectors(map[string][]float32{
			// Every row embeds identically, so the semantic score is 100
			// for all pairs and only the numerical signal discriminates.
		})

		engine, err := NewEngine(embedder, scoring.DefaultConfig())
		require.NoError(t, err)
		defer engine.Release()

		user := &core.UserPreference{
			Id:        "U1",
			Budget:    core.Some(500000),
			Bedrooms:  core.Some(3),
			Bathrooms: core.Some(2),
		}
		fit := &core.PropertyListing{
			Id: "P-fit", Price: core.Some(500000), Bedrooms: core.Some(3), Bathrooms: core.Some(2),
		}
		misfit := &core.PropertyListing{
			Id: "P-misfit", Price: core.Some(950000), Bedrooms: core.Some(6), Bathrooms: core.Some(5),
		}

		results, err := engine.Rank(ctx, []*core.UserPreference{user}, []*core.PropertyListing{misfit, fit})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "P-fit", results[0].PropertyId)
		// semantic 100, numerical 100 -> 100
		assert.Equal(t, 100.0, results[0].MatchScore)
		// semantic 100, numerical 0 -> 0.7*100 = 70
		assert.Equal(t, "P-misfit", results[1].PropertyId)
		assert.Equal(t, 70.0, results[1].MatchScore)
	})

	t.Run("no structured data degrades to semantic-only", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = keywordVectors(map[string][]float32{
			"garden": {1, 1}, // cosine vs {1,0} = 0.7071 -> 70.71
		})

		engine, err := NewEngine(embedder, scoring.DefaultConfig())
		require.NoError(t, err)
		defer engine.Release()

		user := &core.UserPreference{Id: "U1", Description: "anything at all"}
		property := &core.PropertyListing{Id: "P1", Description: "big garden"}

		results, err := engine.Rank(ctx, []*core.UserPreference{user}, []*core.PropertyListing{property})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, 70.71, results[0].MatchScore)
	})
}

// memoryCache is a trivial VectorCache for engine tests.
type memoryCache struct {
	mu      sync.Mutex
	vectors map[core.ID][]float32
	puts    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{vectors: make(map[core.ID][]float32)}
}

func (c *memoryCache) GetEmbedding(ctx context.Context, id core.ID) ([]float32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vectors[id], nil
}

func (c *memoryCache) PutEmbedding(ctx context.Context, id core.ID, vector []float32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vectors[id] = vector
	c.puts++
	return nil
}

func TestEngine_Rank_VectorCache(t *testing.T) {
	ctx := context.Background()

	cache := newMemoryCache()
	embedder := mock.NewMockEmbedder()
	engine, err := NewEngine(embedder, scoring.DefaultConfig(), WithVectorCache(cache))
	require.NoError(t, err)
	defer engine.Release()

	first, err := engine.Rank(ctx, testUsers(), testProperties())
	require.NoError(t, err)
	assert.Equal(t, 2, embedder.CallCount())
	assert.Equal(t, 5, cache.puts) // 2 users + 3 properties

	// Second run is served entirely from the cache.
	second, err := engine.Rank(ctx, testUsers(), testProperties())
	require.NoError(t, err)
	assert.Equal(t, 2, embedder.CallCount())
	assert.Equal(t, 5, cache.puts)

	// And the cache is transparent: results are identical.
	assert.Equal(t, first, second)
}

func TestTexts(t *testing.T) {
	t.Run("user text", func(t *testing.T) {
		user := &core.UserPreference{
			Id:          "U1",
			Budget:      core.Some(500000),
			Bedrooms:    core.Some(3),
			Bathrooms:   core.Some(2),
			Description: "quiet neighborhood",
		}
		got := UserText(user)
		assert.Equal(t, "User is looking for a home with a budget of 500000 dollars, 3 bedrooms and 2 bathrooms. Preferences: quiet neighborhood", got)
	})

	t.Run("user text with absent attributes", func(t *testing.T) {
		user := &core.UserPreference{Id: "U1", Description: "anything"}
		got := UserText(user)
		assert.Contains(t, got, "budget of unspecified dollars")
	})

	t.Run("property text", func(t *testing.T) {
		property := &core.PropertyListing{
			Id:          "P1",
			Price:       core.Some(475000),
			Bedrooms:    core.Some(3),
			Bathrooms:   core.Some(2),
			LivingArea:  core.Some(2500),
			Description: "newly renovated",
		}
		got := PropertyText(property)
		assert.Equal(t, "This property is priced at 475000 dollars, has 3 bedrooms and 2 bathrooms, with a living area of 2500 square feet. Property description: newly renovated", got)
	})
}

func TestQualityLabel(t *testing.T) {
	assert.Equal(t, "excellent", QualityLabel(91.67))
	assert.Equal(t, "excellent", QualityLabel(80))
	assert.Equal(t, "good", QualityLabel(75))
	assert.Equal(t, "fair", QualityLabel(50))
	assert.Equal(t, "poor", QualityLabel(49.99))
	assert.Equal(t, "poor", QualityLabel(0))
}
