package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// Fingerprint is a content-derived identifier for ingested text.
// Identical content always produces the same fingerprint.
type Fingerprint uint64

// FingerprintFromContent computes a deterministic fingerprint from text
// using BLAKE2b hashing. It is used to detect re-ingestion of content
// that has already been indexed.
func FingerprintFromContent(text string) Fingerprint {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return Fingerprint(binary.LittleEndian.Uint64(sum))
}

// ContentType identifies the origin of an ingested document.
type ContentType string

const (
	ContentTypeText       ContentType = "text"
	ContentTypeAudioVideo ContentType = "audio/video"
	ContentTypeURL        ContentType = "url"
	ContentTypeDocument   ContentType = "document"
	ContentTypeYouTube    ContentType = "youtube_video"
	ContentTypeWeb        ContentType = "web_content"
	ContentTypeMedia      ContentType = "media_url"
)

// IsTranscript reports whether content of this type carries spoken-word
// transcripts rather than written text.
func (ct ContentType) IsTranscript() bool {
	switch ct {
	case ContentTypeAudioVideo, ContentTypeYouTube, ContentTypeMedia:
		return true
	}
	return false
}

// Document represents a single ingested unit of content.
// Documents are immutable after creation and are deleted as a whole;
// deletion cascades to all chunks derived from the document.
type Document struct {
	ID          string
	Title       string
	Source      string
	ContentType ContentType
	CreatedAt   time.Time
}

// Chunk is a bounded, possibly-overlapping slice of a document's text.
// Chunks are produced only by the chunk package, belong to exactly one
// document, and are never mutated. Index is dense and zero-based within
// the parent document.
type Chunk struct {
	DocumentID string
	Index      int
	Text       string
	CharLength int
}

// ChunkMetadata is the denormalized metadata persisted alongside each
// embedding vector. The field names and JSON keys are part of the stored
// format and must remain stable across releases.
type ChunkMetadata struct {
	Title       string      `json:"title"`
	Source      string      `json:"source"`
	ContentType ContentType `json:"content_type"`
	ContentID   string      `json:"content_id"`
	ChunkIndex  int         `json:"chunk_index"`
	Timestamp   string      `json:"timestamp"`
	ChunkLength int         `json:"chunk_length"`
}

// MetadataForChunk builds the persisted metadata for a chunk of the
// given document. Timestamp is recorded as RFC 3339 UTC.
func MetadataForChunk(doc *Document, chunk *Chunk) ChunkMetadata {
	return ChunkMetadata{
		Title:       doc.Title,
		Source:      doc.Source,
		ContentType: doc.ContentType,
		ContentID:   doc.ID,
		ChunkIndex:  chunk.Index,
		Timestamp:   doc.CreatedAt.UTC().Format(time.RFC3339),
		ChunkLength: chunk.CharLength,
	}
}
