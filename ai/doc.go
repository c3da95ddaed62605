// Package ai defines the AI service abstractions used by the claim
// analysis pipeline.
//
// Two services are defined: Embedder turns text into fixed-dimension
// L2-normalized vectors for similarity search, and Generator answers a
// single prompt with raw completion text. AIProvider aggregates both for
// initialization and lifecycle management.
//
// Production implementations live in the openai subpackage and talk to
// any OpenAI-compatible API. Test doubles live in the mock subpackage.
//
// Generator output is deliberately untyped: each consumer strips code
// fences (CleanResponse), repairs common JSON defects (RepairJSON), and
// validates per its own prompt contract.
package ai
