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

import (
	"fmt"
	"strings"
)

// RequireText validates that text is non-empty after whitespace trimming.
// This guards every chunking, ingest, and analysis entry point.
func RequireText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyContent)
	}
	return nil
}

// RequireQuery validates that a query string is non-empty after trimming.
func RequireQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyQuery)
	}
	return nil
}

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - ContentType must be one of the known values
//
// NOT validated:
//   - Title and Source (optional, may be empty)
//   - CreatedAt (zero value is filled in at ingest time)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.ID == "" {
		return fmt.Errorf("%w: document ID required", ErrInvalidDocument)
	}

	if err := ValidateContentType(doc.ContentType); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return nil
}

// ValidateContentType validates that a ContentType has a known value.
func ValidateContentType(ct ContentType) error {
	switch ct {
	case ContentTypeText, ContentTypeAudioVideo, ContentTypeURL,
		ContentTypeDocument, ContentTypeYouTube, ContentTypeWeb,
		ContentTypeMedia:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidContentType, ct)
}
