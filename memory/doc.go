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


// Package memory implements the semantic memory index: documents go in
// as chunked, embedded records and come back out as similarity-ranked
// query results.
//
// Ingestion is strict: a blank document or a failing embedder surfaces
// an error and nothing is persisted. Retrieval is forgiving: transient
// embedding or storage failures produce an empty result set rather than
// an error, since callers treat retrieval as best-effort context.
package memory
