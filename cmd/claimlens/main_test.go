package main

import (
	"flag"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// newTestContext builds a cli.Context with the given flags applied.
func newTestContext(t *testing.T, flags []cli.Flag, values map[string]string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range flags {
		require.NoError(t, f.Apply(set))
	}
	for name, value := range values {
		require.NoError(t, set.Set(name, value))
	}
	return cli.NewContext(&cli.App{Flags: flags}, set, nil)
}

func TestSeedCommandFlags(t *testing.T) {
	app := &cli.App{
		Name: "claimlens",
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "corpus",
						Aliases:  []string{"c"},
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "rebuild",
						Value: true,
					},
				},
			},
		},
	}

	t.Run("corpus flag is required", func(t *testing.T) {
		err := app.Run([]string{"claimlens", "seed"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "corpus")
	})

	t.Run("rebuild defaults to true", func(t *testing.T) {
		cmd := app.Commands[0]
		var rebuildFlag *cli.BoolFlag
		for _, f := range cmd.Flags {
			if bf, ok := f.(*cli.BoolFlag); ok && bf.Name == "rebuild" {
				rebuildFlag = bf
				break
			}
		}
		require.NotNil(t, rebuildFlag)
		assert.True(t, rebuildFlag.Value)
	})
}

func TestSetupLogger(t *testing.T) {
	// Preserve the default logger across subtests.
	original := slog.Default()
	defer slog.SetDefault(original)

	flags := []cli.Flag{
		&cli.StringFlag{Name: "log-level", Value: "info"},
	}

	t.Run("valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "INFO"} {
			ctx := newTestContext(t, flags, map[string]string{"log-level": level})
			assert.NoError(t, setupLogger(ctx), level)
		}
	})

	t.Run("invalid level fails", func(t *testing.T) {
		ctx := newTestContext(t, flags, map[string]string{"log-level": "verbose"})
		err := setupLogger(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestOpenServiceRejectsBadConfig(t *testing.T) {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "host"},
		&cli.StringFlag{Name: "embedding-model"},
		&cli.StringFlag{Name: "generator-model"},
		&cli.DurationFlag{Name: "timeout"},
		&cli.DurationFlag{Name: "cache-ttl"},
		&cli.StringFlag{Name: "data", Value: t.TempDir()},
	}

	t.Run("empty hosts and models", func(t *testing.T) {
		ctx := newTestContext(t, flags, nil)

		// Fails config validation before any I/O.
		_, err := openService(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid AI configuration")
	})

	t.Run("negative cache ttl", func(t *testing.T) {
		ctx := newTestContext(t, flags, map[string]string{
			"host":            "http://localhost:11434/v1",
			"embedding-model": "embeddinggemma",
			"generator-model": "qwen2.5:3b",
			"timeout":         "60s",
			"cache-ttl":       "-1s",
		})

		_, err := openService(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid AI configuration")
	})
}
