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


// Package storage provides the vector storage abstraction layer for retrace.
//
// This package defines the VectorStore interface that decouples storage
// implementation from business logic. It allows for different storage
// backends (BadgerDB, PostgreSQL with pgvector) to be used interchangeably.
//
// # Constructor Return Type Pattern
//
// Backend packages follow a "return interface" pattern for public
// constructors to enforce abstraction:
//
//	store, err := badger.NewStore(path)  // returns storage.VectorStore interface
//
// This design decision prioritizes:
//   - Abstraction: Prevents accidental coupling to backend specifics
//   - Swappability: Easy to switch between embedded and server-backed stores
//   - Testing: Consumers can use mock implementations without modification
//
// # Distance Convention
//
// Query results are ordered by ascending cosine distance, where
// distance = 1 - cosine similarity. Stored vectors are normalized to
// unit length on write so the distance reduces to 1 - dot product.
//
// # Thread Safety
//
// All VectorStore implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All store methods accept context.Context for cancellation and timeout
// support. Pass context.Background() for operations without specific
// timeout requirements.
package storage
