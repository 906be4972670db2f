package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTranscript(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty input", in: "", want: ""},
		{
			name: "collapses whitespace",
			in:   "hello   world\n\nagain",
			want: "hello world again",
		},
		{
			name: "drops filler words",
			in:   "so um I was uh thinking about it",
			want: "so I was thinking about it",
		},
		{
			name: "drops stage directions",
			in:   "welcome back [MUSIC] to the show (applause) everyone",
			want: "welcome back to the show everyone",
		},
		{
			name: "fixes lone lowercase i",
			in:   "i think i said that",
			want: "I think I said that",
		},
		{
			name: "spaces after sentence punctuation",
			in:   "that was it.Next topic",
			want: "that was it. Next topic",
		},
		{
			name: "squashes repeated punctuation",
			in:   "wait... what,, really",
			want: "wait. what, really",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTranscript(tt.in))
		})
	}
}

func TestCleanSocialText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty input", in: "", want: ""},
		{
			name: "strips urls",
			in:   "read more at https://example.com/post now",
			want: "read more at now",
		},
		{
			name: "spaces thread numbering",
			in:   "1/Here is my thread about focus",
			want: "1/ Here is my thread about focus",
		},
		{
			name: "keeps mentions and hashtags",
			in:   "thanks @someone for the #productivity tip",
			want: "thanks @someone for the #productivity tip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanSocialText(tt.in))
		})
	}
}
