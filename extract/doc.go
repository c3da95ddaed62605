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


// Package extract turns free-text claim narratives into structured records.
//
// Extraction is a chain of single-field prompts rather than one
// monolithic call: each field has its own prompt template, validator,
// and optional fallback, so a failure or hallucination on one field
// never corrupts the others. Validators enforce the anti-hallucination
// guarantees. Most notably, a reported phone number must appear
// verbatim (modulo spaces and hyphens) in the source narrative, and
// claimed amounts are parsed, never fabricated.
//
// The extractor degrades rather than fails: with the generation backend
// entirely unreachable it still returns a minimal record whose
// description is a truncated prefix of the narrative.
package extract
