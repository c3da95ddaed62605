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


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/avallon/claimlens"
	"github.com/avallon/claimlens/ai"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// Optional .env file for host/model settings; flags still win.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "claimlens",
		Usage: "Claim narrative analysis: extraction, classification and similarity search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Path to the data directory (corpus database and index files)",
				Value:   "./claimlens-data",
				EnvVars: []string{"CLAIMLENS_DATA"},
			},
			&cli.StringFlag{
				Name:    "host",
				Usage:   "OpenAI-compatible service host URL for both embedding and generation",
				Value:   "http://localhost:11434/v1",
				EnvVars: []string{"CLAIMLENS_HOST"},
			},
			&cli.StringFlag{
				Name:    "embedding-model",
				Usage:   "Embedding model name",
				Value:   "embeddinggemma",
				EnvVars: []string{"CLAIMLENS_EMBEDDING_MODEL"},
			},
			&cli.StringFlag{
				Name:    "generator-model",
				Usage:   "Generation model name",
				Value:   "qwen2.5:3b",
				EnvVars: []string{"CLAIMLENS_GENERATOR_MODEL"},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Per-call timeout for generation requests",
				Value: 60 * time.Second,
			},
			&cli.DurationFlag{
				Name:    "cache-ttl",
				Usage:   "How long identical generation prompts are answered from cache (0 disables caching)",
				Value:   5 * time.Minute,
				EnvVars: []string{"CLAIMLENS_CACHE_TTL"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Usage:     "Analyze a claim narrative (argument, or stdin when omitted)",
				ArgsUsage: "[narrative]",
				Action:    analyzeCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Number of similar historical claims to retrieve",
						Value:   3,
					},
				},
			},
			{
				Name:   "seed",
				Usage:  "Load a JSON corpus file into the claim store",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "corpus",
						Aliases:  []string{"c"},
						Usage:    "Path to the JSON corpus file",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "rebuild",
						Usage: "Rebuild the similarity index after seeding",
						Value: true,
					},
				},
			},
			{
				Name:   "build-index",
				Usage:  "Re-embed the whole corpus and rebuild the similarity index",
				Action: buildIndexCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openService(c *cli.Context, opts ...claimlens.ServiceOption) (*claimlens.Service, error) {
	cfg := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithGeneratorModel(c.String("generator-model")),
		ai.WithTimeout(c.Duration("timeout")),
		ai.WithCacheTTL(c.Duration("cache-ttl")),
	)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	opts = append(opts, claimlens.WithAIConfig(cfg))
	return claimlens.NewService(c.String("data"), opts...)
}

func analyzeCommand(c *cli.Context) error {
	narrative := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(narrative) == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading narrative from stdin: %w", err)
		}
		narrative = strings.TrimSpace(string(data))
	}

	service, err := openService(c, claimlens.WithTopK(c.Int("top-k")))
	if err != nil {
		return fmt.Errorf("failed to open service: %w", err)
	}
	defer service.Close()

	analysis, err := service.Analyze(context.Background(), narrative)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	service, err := openService(c)
	if err != nil {
		return fmt.Errorf("failed to open service: %w", err)
	}
	defer service.Close()

	seeded, err := service.SeedCorpus(ctx, c.String("corpus"))
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Seeded %d records\n", seeded)

	if c.Bool("rebuild") {
		indexed, err := service.RebuildIndex(ctx)
		if err != nil {
			return fmt.Errorf("index rebuild failed: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Indexed %d records\n", indexed)
	}
	return nil
}

func buildIndexCommand(c *cli.Context) error {
	service, err := openService(c)
	if err != nil {
		return fmt.Errorf("failed to open service: %w", err)
	}
	defer service.Close()

	indexed, err := service.RebuildIndex(context.Background())
	if err != nil {
		return fmt.Errorf("index rebuild failed: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Indexed %d records\n", indexed)
	return nil
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
