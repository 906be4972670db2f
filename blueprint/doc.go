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


// Package blueprint reconstructs plausible creative workflows from
// finished content. Given a post, article, or transcript it produces a
// numbered timeline of tools and actions that likely produced it.
//
// Reconstruction degrades gracefully: model output that fails strict
// parsing goes through embedded-JSON recovery, and if that fails too a
// deterministic length-based blueprint is returned. Callers always get
// a structurally valid Blueprint with contiguous step numbers.
package blueprint
