package core

import (
	"testing"
	"time"
)

func TestFingerprintFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "same content produces same fingerprint", content: "test content"},
		{name: "empty string", content: ""},
		{name: "long content", content: "This is a much longer piece of content that should still hash consistently"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp1 := FingerprintFromContent(tt.content)
			fp2 := FingerprintFromContent(tt.content)

			if fp1 != fp2 {
				t.Errorf("FingerprintFromContent() produced different fingerprints for same content: %d vs %d", fp1, fp2)
			}
		})
	}
}

func TestFingerprintFromContent_Different(t *testing.T) {
	fp1 := FingerprintFromContent("content1")
	fp2 := FingerprintFromContent("content2")

	if fp1 == fp2 {
		t.Errorf("FingerprintFromContent() produced same fingerprint for different content")
	}
}

func TestMetadataForChunk(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	doc := &Document{
		ID:          "doc-1",
		Title:       "A Title",
		Source:      "blog",
		ContentType: ContentTypeText,
		CreatedAt:   created,
	}
	chunk := &Chunk{DocumentID: "doc-1", Index: 2, Text: "hello", CharLength: 5}

	meta := MetadataForChunk(doc, chunk)

	if meta.ContentID != "doc-1" {
		t.Errorf("ContentID = %q, want %q", meta.ContentID, "doc-1")
	}
	if meta.ChunkIndex != 2 {
		t.Errorf("ChunkIndex = %d, want 2", meta.ChunkIndex)
	}
	if meta.ChunkLength != 5 {
		t.Errorf("ChunkLength = %d, want 5", meta.ChunkLength)
	}
	if meta.Timestamp != "2026-03-14T09:26:53Z" {
		t.Errorf("Timestamp = %q, want RFC3339 UTC", meta.Timestamp)
	}
}
