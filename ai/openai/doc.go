// Package openai implements the ai service interfaces against any
// OpenAI-compatible API (Ollama, LocalAI, vLLM, OpenAI itself).
//
// The Provider owns one embedding client and one generation client,
// both created once at construction and injected into consumers. There
// is no ambient global model state: thread safety comes from the
// clients themselves, which are safe for concurrent use.
//
// Generation calls carry a per-call timeout and may be served from an
// in-memory response cache when the configuration enables one; prompts
// are issued at temperature zero, so identical prompts yield reusable
// answers.
package openai
