package chunk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_EmptyInput(t *testing.T) {
	assert.Empty(t, Split("", 50, 10))
	assert.Empty(t, Split("   \n\n\t  ", 50, 10))
}

func TestSplit_ShortInputSingleChunk(t *testing.T) {
	chunks := Split("A short paragraph.", 50, 10)
	require.Len(t, chunks, 1)
	assert.Equal(t, "A short paragraph.", chunks[0])
}

func TestSplit_NoEmptyChunks(t *testing.T) {
	text := "First paragraph here.\n\n\n\nSecond paragraph.\n\n   \n\nThird one."
	chunks := Split(text, 50, 10)
	require.NotEmpty(t, chunks)
	for _, c := range chunks {
		assert.NotEmpty(t, strings.TrimSpace(c))
		assert.Equal(t, c, strings.TrimSpace(c), "chunks must be whitespace-trimmed")
	}
}

func TestSplit_ParagraphAccumulation(t *testing.T) {
	// Three paragraphs that fit one budget together stay one chunk.
	text := "Alpha beta.\n\nGamma delta.\n\nEpsilon zeta."
	chunks := Split(text, 50, 10)
	require.Len(t, chunks, 1)
	assert.Contains(t, chunks[0], "Alpha beta.")
	assert.Contains(t, chunks[0], "Epsilon zeta.")
}

func TestSplit_RespectsBudget(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 40; i++ {
		sb.WriteString("The quick brown fox jumps over the lazy dog. ")
	}
	maxTokens := 50
	chunks := Split(sb.String(), maxTokens, 10)
	require.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), maxTokens*CharsPerToken)
	}
}

func TestSplit_LongParagraphOverlap(t *testing.T) {
	// A single ~600-word paragraph: expect multiple chunks at the
	// sentence/word granularity, each within budget, each chunk after
	// the first beginning with a non-empty suffix of its predecessor.
	var sb strings.Builder
	for i := 0; i < 67; i++ {
		sb.WriteString("The quick brown fox jumps over the lazy dog. ")
	}
	chunks := Split(sb.String(), 50, 10)
	require.Greater(t, len(chunks), 1)

	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 50*CharsPerToken)
	}

	for i := 1; i < len(chunks); i++ {
		assert.Greater(t, overlapPrefixLen(chunks[i-1], chunks[i]), 0,
			"chunk %d does not start with a suffix of chunk %d", i, i-1)
	}
}

// overlapPrefixLen returns the length of the longest prefix of next
// that is a suffix of prev.
func overlapPrefixLen(prev, next string) int {
	limit := len(next)
	if len(prev) < limit {
		limit = len(prev)
	}
	for k := limit; k > 0; k-- {
		if strings.HasSuffix(prev, next[:k]) {
			return k
		}
	}
	return 0
}

func TestSplit_OversizeWordEmittedVerbatim(t *testing.T) {
	longWord := strings.Repeat("x", 300)
	text := "short words here. " + longWord + " more short words."
	chunks := Split(text, 50, 10)

	found := false
	for _, c := range chunks {
		if c == longWord {
			found = true
		} else {
			assert.LessOrEqual(t, len(c), 50*CharsPerToken)
		}
	}
	assert.True(t, found, "oversize word must appear unmodified as its own chunk")
}

func TestSplit_ReconstructionWithoutOverlap(t *testing.T) {
	text := "One two three four five. Six seven eight nine ten.\n\n" +
		"Eleven twelve thirteen fourteen. Fifteen sixteen seventeen.\n\n" +
		strings.Repeat("Alpha bravo charlie delta echo foxtrot golf hotel. ", 12)

	chunks := Split(text, 20, 0)
	require.Greater(t, len(chunks), 1)

	assert.Equal(t, normalizeWords(text), normalizeWords(strings.Join(chunks, " ")),
		"with zero overlap the chunks must reconstruct the input")
}

// normalizeWords strips sentence punctuation and collapses whitespace,
// returning the space-joined word sequence.
func normalizeWords(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '.' || r == '!' || r == '?' {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

func TestOverlapTail(t *testing.T) {
	t.Run("short text returned whole", func(t *testing.T) {
		assert.Equal(t, "tiny", OverlapTail("tiny", 40))
	})

	t.Run("zero overlap yields empty", func(t *testing.T) {
		assert.Equal(t, "", OverlapTail("some finished chunk text", 0))
	})

	t.Run("cuts after sentence boundary in second half of window", func(t *testing.T) {
		text := "A lot of earlier material that will not matter. Final words"
		got := OverlapTail(text, 28)
		assert.Equal(t, "Final words", got)
	})

	t.Run("raw trailing window when no usable boundary", func(t *testing.T) {
		text := "word word word word word word word word"
		got := OverlapTail(text, 16)
		assert.True(t, strings.HasSuffix(text, got))
		assert.NotEmpty(t, got)
		assert.LessOrEqual(t, len(got), 16)
	})

	t.Run("result is a suffix of the input", func(t *testing.T) {
		text := "First sentence here. Second sentence follows. Third trails"
		got := OverlapTail(text, 30)
		assert.True(t, strings.HasSuffix(text, got))
	})

	t.Run("multibyte text measured in runes", func(t *testing.T) {
		// 10 runes but 14 bytes; an 11-rune window covers the whole
		// text, so nothing is cut at the terminator.
		text := "ääääab. xy"
		assert.Equal(t, text, OverlapTail(text, 11))

		// 30 runes, terminator at window index 6 of 10, past the midpoint.
		text = strings.Repeat("ä", 23) + "äbc. de"
		assert.Equal(t, "de", OverlapTail(text, 10))
	})
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens("abc"))
	assert.Equal(t, 1, EstimateTokens("abcd"))
	assert.Equal(t, 25, EstimateTokens(strings.Repeat("a", 100)))
}

func TestValidate(t *testing.T) {
	assert.True(t, Validate([]string{"abcd", "efgh"}, 1))
	assert.False(t, Validate([]string{"abcdefgh"}, 1))
	assert.True(t, Validate(nil, 1))
}
