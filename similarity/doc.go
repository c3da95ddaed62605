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


// Package similarity implements the nearest-neighbor index over
// historical claim transcripts.
//
// The index is dense and flat: every corpus vector is compared against
// the query with an inner product. Vectors are L2-normalized by the
// embedder, so the inner product is cosine similarity. There is no
// incremental insert; Build replaces the whole index from the corpus
// and is the only mutation path.
//
// Durable state is a matched pair of files, one holding the raw
// vectors and one holding per-vector metadata. The pair is written
// atomically (temp file plus rename) and validated as a unit on load:
// a count mismatch between the two files means the pair is corrupt and
// the index is treated as absent rather than used partially.
package similarity
