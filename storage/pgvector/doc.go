// Package pgvector implements storage.VectorStore on PostgreSQL using
// the pgvector extension. Unlike the embedded BadgerDB backend, nearest
// neighbor search runs server side over an ivfflat index, which scales
// past the full-scan approach for large memory stores.
package pgvector
