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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/homematch"
	"github.com/poiesic/homematch/ai"
	"github.com/poiesic/homematch/ai/openai"
	"github.com/poiesic/homematch/core"
	"github.com/poiesic/homematch/ingestion"
	"github.com/poiesic/homematch/match"
	"github.com/poiesic/homematch/scoring"
	"github.com/poiesic/homematch/storage/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "homematch",
		Usage: "Hybrid semantic and numerical matching of home buyers to property listings",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "match",
				Usage:  "Rank property listings for each user in an Excel workbook",
				Action: matchCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Path to the source Excel workbook (users sheet first, properties sheet second)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Path for the ranked results CSV (stdout if omitted)",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "Optional BadgerDB directory used as a persistent embedding cache",
					},
				}, scoringFlags()...),
			},
			{
				Name:   "import",
				Usage:  "Import an Excel workbook into a matcher database",
				Action: importCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Path to the source Excel workbook",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
				},
			},
			{
				Name:   "match-db",
				Usage:  "Rank stored property listings for every stored user",
				Action: matchDBCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Path for the ranked results CSV (stdout if omitted)",
					},
				}, scoringFlags()...),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// scoringFlags returns the flags shared by the ranking commands.
func scoringFlags() []cli.Flag {
	defaults := scoring.DefaultConfig()
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "all-minilm",
		},
		&cli.Float64Flag{
			Name:  "semantic-weight",
			Usage: "Weight of the semantic score in the hybrid blend",
			Value: defaults.SemanticWeight,
		},
		&cli.Float64Flag{
			Name:  "numerical-weight",
			Usage: "Weight of the numerical score in the hybrid blend",
			Value: defaults.NumericalWeight,
		},
		&cli.Float64Flag{
			Name:  "budget-tolerance",
			Usage: "Budget tolerance as a fraction of the user's budget",
			Value: defaults.BudgetTolerance,
		},
		&cli.IntFlag{
			Name:  "bedroom-flex",
			Usage: "Bedroom count flexibility in whole rooms",
			Value: defaults.BedroomFlex,
		},
		&cli.IntFlag{
			Name:  "bathroom-flex",
			Usage: "Bathroom count flexibility in whole rooms",
			Value: defaults.BathroomFlex,
		},
		&cli.Float64Flag{
			Name:  "living-area-tolerance",
			Usage: "Living area tolerance as a fraction of the user's target",
			Value: defaults.LivingAreaTolerance,
		},
		&cli.IntFlag{
			Name:  "top-k",
			Usage: "Number of top matches to keep per user",
			Value: defaults.TopK,
		},
		&cli.IntFlag{
			Name:  "pool-size",
			Usage: "Number of concurrent ranking workers (0 = half the CPUs)",
		},
	}
}

// scoringConfigFromFlags builds a scoring config from command flags.
func scoringConfigFromFlags(c *cli.Context) (scoring.Config, error) {
	config := scoring.NewConfig(
		scoring.WithWeights(c.Float64("semantic-weight"), c.Float64("numerical-weight")),
		scoring.WithBudgetTolerance(c.Float64("budget-tolerance")),
		scoring.WithBedroomFlex(c.Int("bedroom-flex")),
		scoring.WithBathroomFlex(c.Int("bathroom-flex")),
		scoring.WithLivingAreaTolerance(c.Float64("living-area-tolerance")),
		scoring.WithTopK(c.Int("top-k")),
	)
	if err := config.Validate(); err != nil {
		return scoring.Config{}, fmt.Errorf("invalid scoring configuration: %w", err)
	}
	return config, nil
}

// engineOptions builds match engine options from command flags.
func engineOptions(c *cli.Context) []match.Option {
	var opts []match.Option
	if size := c.Int("pool-size"); size > 0 {
		opts = append(opts, match.WithPoolSize(size))
	}
	return opts
}

// writeRecords writes ranked results to the output path, or stdout if
// no path was given, then prints a per-band summary to stderr.
func writeRecords(c *cli.Context, records []core.MatchRecord) error {
	outputPath := c.String("output")
	if outputPath == "" {
		if err := ingestion.WriteResults(os.Stdout, records); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
	} else {
		if err := ingestion.WriteResultsFile(outputPath, records); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Results written to %s\n", outputPath)
	}

	// Summarize match quality
	bands := map[string]int{}
	for _, record := range records {
		bands[match.QualityLabel(record.MatchScore)]++
	}
	fmt.Fprintf(os.Stderr, "Matches: %d total", len(records))
	for _, label := range []string{"excellent", "good", "fair", "poor"} {
		if bands[label] > 0 {
			fmt.Fprintf(os.Stderr, ", %d %s", bands[label], label)
		}
	}
	fmt.Fprintln(os.Stderr)

	return nil
}

func matchCommand(c *cli.Context) error {
	ctx := context.Background()

	users, properties, err := ingestion.LoadWorkbook(c.String("input"))
	if err != nil {
		return fmt.Errorf("failed to load workbook: %w", err)
	}

	scoringConfig, err := scoringConfigFromFlags(c)
	if err != nil {
		return err
	}

	// Create AI config
	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	// Create embedder
	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	opts := engineOptions(c)

	// Attach a persistent embedding cache when a database path is given
	if dbPath := c.String("db"); dbPath != "" {
		backend, err := badger.OpenBackend(dbPath, false)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer backend.Close()

		cache, err := badger.NewEmbeddingRepository(backend)
		if err != nil {
			return fmt.Errorf("failed to create embedding cache: %w", err)
		}
		opts = append(opts, match.WithVectorCache(cache))
	}

	engine, err := match.NewEngine(embedder, scoringConfig, opts...)
	if err != nil {
		return fmt.Errorf("failed to create match engine: %w", err)
	}
	defer engine.Release()

	records, err := engine.Rank(ctx, users, properties)
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	return writeRecords(c, records)
}

func importCommand(c *cli.Context) error {
	ctx := context.Background()

	matcher, err := homematch.NewMatcher(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer matcher.Close()

	users, properties, err := matcher.ImportWorkbook(ctx, c.String("input"))
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Imported %d users and %d properties\n", users, properties)
	return nil
}

func matchDBCommand(c *cli.Context) error {
	ctx := context.Background()

	scoringConfig, err := scoringConfigFromFlags(c)
	if err != nil {
		return err
	}

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	matcher, err := homematch.NewMatcher(c.String("db"),
		homematch.WithAIConfig(aiConfig),
		homematch.WithScoringConfig(scoringConfig))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer matcher.Close()

	records, err := matcher.RankStored(ctx, engineOptions(c)...)
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	return writeRecords(c, records)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
