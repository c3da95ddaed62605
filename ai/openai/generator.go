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


package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avallon/claimlens/ai"
	"github.com/avallon/claimlens/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Generator implements ai.Generator using OpenAI-compatible chat APIs.
// Each call is bounded by the configured timeout; callers degrade to
// their fallback path when the backend cannot answer in time.
type Generator struct {
	client  llms.Model
	timeout time.Duration
	cache   *responseCache // nil when caching is disabled
	logger  *slog.Logger
}

// newGenerator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newGenerator(config *ai.Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that
	// don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.GeneratorHost),
		openai.WithToken("none"),
		openai.WithModel(config.GeneratorModel),
	)
	if err != nil {
		return nil, err
	}

	var cache *responseCache
	if config.CacheTTL > 0 {
		cache = newResponseCache(config.CacheTTL)
	}

	return &Generator{
		client:  client,
		timeout: config.Timeout,
		cache:   cache,
		logger:  slog.Default().With("component", "openai-generator"),
	}, nil
}

// NewGenerator creates a new generator using the provided configuration.
//
// Returns ai.Generator interface to enforce abstraction.
func NewGenerator(config *ai.Config) (ai.Generator, error) {
	return newGenerator(config)
}

// Generate returns the raw model output for the prompt.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.cache != nil {
		if answer, ok := g.cache.get(prompt); ok {
			g.logger.Debug("serving generation from cache", "promptLength", len(prompt))
			return answer, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	response, err := g.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		g.logger.Error("generation failed", "err", err)
		return "", fmt.Errorf("%w: %v", core.ErrModelUnavailable, err)
	}
	if len(response.Choices) < 1 {
		g.logger.Warn("model returned no choices")
		return "", fmt.Errorf("%w: no choices returned", core.ErrMalformedOutput)
	}

	answer := strings.TrimSpace(response.Choices[0].Content)
	if g.cache != nil {
		g.cache.set(prompt, answer)
	}
	return answer, nil
}
