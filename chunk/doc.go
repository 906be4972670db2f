// Copyright 2026 Halcyon Labs
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


// Package chunk splits raw text into bounded, overlapping segments
// suitable for embedding and retrieval.
//
// The splitter works through a fallback hierarchy of granularities:
// paragraphs (blank-line separated) are accumulated into a buffer until
// the character budget is reached; a paragraph that alone exceeds the
// budget is split at sentence granularity, and a sentence that still
// exceeds it is split at word granularity. A single word longer than the
// budget is emitted verbatim as its own chunk; it is the only case where
// a chunk may exceed the budget.
//
// Consecutive chunks share an overlap: each new buffer is seeded with a
// suffix of the previous chunk so that context survives split boundaries.
package chunk
