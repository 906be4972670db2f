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


// Package ai provides abstractions for the external AI services the
// engine consumes.
//
// Two interfaces cover the collaborators:
//
//   - Embedder: generates vector embeddings from text
//   - Completer: produces language-model completions
//
// Provider aggregates them for convenient initialization. Business
// logic depends only on these abstractions; concrete clients live in
// sub-packages:
//
//   - ai/openai: production implementation for OpenAI-compatible APIs
//   - ai/mock: deterministic test doubles
//
// Public constructors in ai/openai return interface types to enforce
// abstraction. Mock constructors return concrete types so tests can
// inject behavior and assert on call counts.
//
// Completer output is never trusted: SanitizeModelJSON and
// ExtractJSONObject help callers recover structured data, and any shape
// mismatch after parsing is a parse error handled by the caller's
// deterministic fallback.
package ai
