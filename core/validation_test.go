package core

import (
	"errors"
	"testing"
)

func TestRequireText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "valid text", text: "hello world", wantErr: false},
		{name: "empty string", text: "", wantErr: true},
		{name: "whitespace only", text: "   \n\t  ", wantErr: true},
		{name: "single character", text: "x", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireText(tt.text)
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Errorf("RequireText(%q) = %v, want ErrValidation", tt.text, err)
				}
				if !errors.Is(err, ErrEmptyContent) {
					t.Errorf("RequireText(%q) = %v, want ErrEmptyContent", tt.text, err)
				}
			} else if err != nil {
				t.Errorf("RequireText(%q) = %v, want nil", tt.text, err)
			}
		})
	}
}

func TestRequireQuery(t *testing.T) {
	if err := RequireQuery("what did I say?"); err != nil {
		t.Errorf("RequireQuery() = %v, want nil", err)
	}
	err := RequireQuery("  ")
	if !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("RequireQuery() = %v, want ErrEmptyQuery", err)
	}
}

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		doc     *Document
		wantErr error
	}{
		{
			name: "valid document",
			doc:  &Document{ID: "abc", ContentType: ContentTypeText},
		},
		{
			name:    "nil document",
			doc:     nil,
			wantErr: ErrInvalidDocument,
		},
		{
			name:    "missing ID",
			doc:     &Document{ContentType: ContentTypeText},
			wantErr: ErrInvalidDocument,
		},
		{
			name:    "unknown content type",
			doc:     &Document{ID: "abc", ContentType: "carrier_pigeon"},
			wantErr: ErrInvalidContentType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(tt.doc)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDocument() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDocument() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateContentType(t *testing.T) {
	for _, ct := range []ContentType{
		ContentTypeText, ContentTypeAudioVideo, ContentTypeURL,
		ContentTypeDocument, ContentTypeYouTube, ContentTypeWeb, ContentTypeMedia,
	} {
		if err := ValidateContentType(ct); err != nil {
			t.Errorf("ValidateContentType(%q) = %v, want nil", ct, err)
		}
	}

	if err := ValidateContentType("smoke_signal"); !errors.Is(err, ErrInvalidContentType) {
		t.Errorf("ValidateContentType() = %v, want ErrInvalidContentType", err)
	}
}
