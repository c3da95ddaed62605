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


// Package pipeline sequences one claim analysis: entity extraction,
// classification and similarity retrieval over a single narrative.
//
// Each invocation is independent and stateless apart from the shared
// similarity index, so analyses may run concurrently. The similarity
// query runs on a worker pool in parallel with the extract/classify
// chain, and its failures degrade to an empty match list; only a
// caller-contract violation (invalid narrative) is reported as an
// error.
package pipeline
