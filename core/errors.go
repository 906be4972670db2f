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


package core

import "errors"

// Error taxonomy shared by all components.
//
// ErrValidation is always rejected immediately and never retried.
// ErrExternalService is propagated on ingest but absorbed into component
// fallbacks everywhere else. ErrParse triggers structured-fragment recovery
// and then the deterministic fallback.
var (
	// ErrValidation indicates invalid caller input to an entry point.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyContent indicates empty or whitespace-only input.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrEmptyQuery indicates an empty or whitespace-only query.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrInvalidContentType indicates an unknown content type value.
	ErrInvalidContentType = errors.New("invalid content type")

	// ErrExternalService indicates an embedding, language-model, or
	// vector-store call failed.
	ErrExternalService = errors.New("external service failure")

	// ErrParse indicates a language-model response was not valid
	// structured data.
	ErrParse = errors.New("malformed model response")
)
