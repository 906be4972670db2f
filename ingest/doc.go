// Package ingest runs batch document ingestion over a worker pool.
// Each document is an independent job: cleaned for its content type,
// chunked, embedded, and stored atomically by the memory index.
package ingest
