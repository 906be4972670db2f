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


// Package orchestrate coordinates a full processing run over one input:
// classify it as query or content, retrieve related memories, for
// content reconstruct the creative workflow concurrently, and merge
// everything into a single response with synthesized insights.
//
// Retrieval and analysis run as independent goroutines with disjoint
// state, joined by a WaitGroup before merging. Neither task can fail
// the request; each degrades to its empty result.
package orchestrate
