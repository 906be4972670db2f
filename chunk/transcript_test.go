package chunk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTranscript_SpeakerBoundaries(t *testing.T) {
	utterance := strings.Repeat("we talked about the project roadmap ", 3)
	var sb strings.Builder
	for i := 1; i <= 6; i++ {
		sb.WriteString("Speaker ")
		sb.WriteString([]string{"1", "2"}[i%2])
		sb.WriteString(": ")
		sb.WriteString(utterance)
		sb.WriteString("\n")
	}

	// Budget fits exactly two utterances per chunk, so every flush
	// lands on a speaker label and each chunk opens with one.
	chunks := SplitTranscript(sb.String(), 60, 10)
	require.Greater(t, len(chunks), 1)

	for _, c := range chunks {
		assert.True(t, strings.HasPrefix(c, "Speaker "),
			"chunk should begin at a speaker turn: %q", c)
		assert.LessOrEqual(t, len(c), 60*CharsPerToken)
	}
}

func TestSplitTranscript_TimestampMarkers(t *testing.T) {
	text := "[00:01] intro remarks here [00:45] main discussion follows"
	chunks := SplitTranscript(text, 500, 50)
	require.Len(t, chunks, 1)
	assert.Contains(t, chunks[0], "[00:01]")
	assert.Contains(t, chunks[0], "[00:45]")
}

func TestSplitTranscript_NoMarkersFallsBack(t *testing.T) {
	text := "First paragraph of plain prose.\n\nSecond paragraph of plain prose."
	assert.Equal(t, Split(text, 500, 50), SplitTranscript(text, 500, 50))
}

func TestSplitTranscript_UppercaseLabels(t *testing.T) {
	text := "SPEAKER_1: hello there SPEAKER_2: hi back"
	chunks := SplitTranscript(text, 500, 50)
	require.Len(t, chunks, 1)
	assert.Equal(t, "SPEAKER_1: hello there SPEAKER_2: hi back", chunks[0])
}

func TestSplitTranscript_OversizeUtteranceKeptWhole(t *testing.T) {
	long := strings.Repeat("word ", 120)
	text := "Speaker 1: " + long + "Speaker 2: short reply"
	chunks := SplitTranscript(text, 50, 10)
	require.Greater(t, len(chunks), 1)
	assert.Equal(t, "Speaker 2: short reply", chunks[len(chunks)-1])
}
