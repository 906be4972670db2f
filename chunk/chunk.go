package chunk

import (
	"regexp"
	"strings"
)

// CharsPerToken is the fixed heuristic ratio between tokens and
// characters (1 token ~= 4 characters of English text). All budget
// checks in this package use it consistently.
const CharsPerToken = 4

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// Split chunks text into overlapping segments of at most
// maxTokens*CharsPerToken characters each. Consecutive chunks of the
// same input overlap by at most overlapTokens*CharsPerToken characters.
// Empty or whitespace-only input yields no chunks. All returned chunks
// are whitespace-trimmed and non-empty.
//
// The only chunks that may exceed the budget are single words too long
// to split further; they are emitted unmodified.
func Split(text string, maxTokens, overlapTokens int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	maxChars := maxTokens * CharsPerToken
	overlapChars := overlapTokens * CharsPerToken

	var chunks []string
	var current string

	for _, paragraph := range strings.Split(text, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}

		// A paragraph that alone exceeds the budget is handled at
		// sentence granularity.
		if len(paragraph) > maxChars {
			if current != "" {
				chunks = append(chunks, strings.TrimSpace(current))
				current = ""
			}
			chunks = append(chunks, splitSentences(paragraph, maxChars, overlapChars)...)
			continue
		}

		if current == "" {
			current = paragraph
			continue
		}

		if len(current)+len("\n\n")+len(paragraph) > maxChars {
			chunks = append(chunks, strings.TrimSpace(current))
			current = seed(current, paragraph, " ", overlapChars, maxChars)
		} else {
			current += "\n\n" + paragraph
		}
	}

	if current != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}

	return chunks
}

// splitSentences chunks text at sentence granularity when a paragraph is
// too long. Sentences are delimited by runs of '.', '!' and '?'.
func splitSentences(text string, maxChars, overlapChars int) []string {
	var chunks []string
	var current string

	for _, sentence := range sentenceSplitRe.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}

		// A sentence that alone exceeds the budget falls through to
		// word granularity.
		if len(sentence) > maxChars {
			if current != "" {
				chunks = append(chunks, strings.TrimSpace(current))
				current = ""
			}
			chunks = append(chunks, splitWords(sentence, maxChars, overlapChars)...)
			continue
		}

		if current == "" {
			current = sentence
			continue
		}

		if len(current)+len(". ")+len(sentence) > maxChars {
			chunks = append(chunks, strings.TrimSpace(current))
			current = seed(current, sentence, ". ", overlapChars, maxChars)
		} else {
			current += ". " + sentence
		}
	}

	if current != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}

	return chunks
}

// splitWords chunks text at word granularity when a sentence is too
// long. A single word longer than the budget is emitted as its own
// chunk, unmodified; it cannot be split further.
func splitWords(text string, maxChars, overlapChars int) []string {
	var chunks []string
	var current string

	for _, word := range strings.Fields(text) {
		if len(word) > maxChars {
			if current != "" {
				chunks = append(chunks, strings.TrimSpace(current))
				current = ""
			}
			chunks = append(chunks, word)
			continue
		}

		if current == "" {
			current = word
			continue
		}

		if len(current)+1+len(word) > maxChars {
			chunks = append(chunks, strings.TrimSpace(current))
			current = seedWords(current, word, overlapChars, maxChars)
		} else {
			current += " " + word
		}
	}

	if current != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}

	return chunks
}

// seed starts a new buffer with an overlap suffix of the previous one,
// followed by the next unit. The overlap is dropped when keeping it
// would push the new buffer over the budget.
func seed(previous, next, sep string, overlapChars, maxChars int) string {
	overlap := OverlapTail(previous, overlapChars)
	if overlap == "" || len(overlap)+len(sep)+len(next) > maxChars {
		return next
	}
	return overlap + sep + next
}

// seedWords is the word-granularity variant of seed; the overlap is
// taken on whole-word boundaries.
func seedWords(previous, next string, overlapChars, maxChars int) string {
	overlap := overlapWords(previous, overlapChars)
	if overlap == "" || len(overlap)+1+len(next) > maxChars {
		return next
	}
	return overlap + " " + next
}

// OverlapTail extracts the overlap text from the end of a finished
// chunk: the trailing overlapChars characters, cut immediately after a
// sentence terminator when one exists in the second half of that
// window, trimmed of surrounding whitespace.
func OverlapTail(text string, overlapChars int) string {
	if overlapChars <= 0 {
		return ""
	}
	// Window and midpoint are both measured in runes.
	runes := []rune(text)
	if len(runes) <= overlapChars {
		return strings.TrimSpace(text)
	}
	window := runes[len(runes)-overlapChars:]

	cut := -1
	for i, r := range window {
		if r == '.' || r == '!' || r == '?' {
			cut = i
		}
	}

	if cut > len(window)/2 {
		return strings.TrimSpace(string(window[cut+1:]))
	}
	return strings.TrimSpace(string(window))
}

// overlapWords extracts trailing whole words totalling at most
// overlapChars characters.
func overlapWords(text string, overlapChars int) string {
	if overlapChars <= 0 {
		return ""
	}
	if len(text) <= overlapChars {
		return strings.TrimSpace(text)
	}

	words := strings.Fields(text)
	var overlap string
	for i := len(words) - 1; i >= 0; i-- {
		if len(overlap)+1+len(words[i]) > overlapChars {
			break
		}
		if overlap == "" {
			overlap = words[i]
		} else {
			overlap = words[i] + " " + overlap
		}
	}
	return overlap
}

// EstimateTokens roughly estimates the token count of text using the
// same ratio the splitter budgets with.
func EstimateTokens(text string) int {
	return len(text) / CharsPerToken
}

// Validate reports whether every chunk fits the token budget. A chunk
// containing a single unsplittable word may legitimately fail this.
func Validate(chunks []string, maxTokens int) bool {
	for _, c := range chunks {
		if EstimateTokens(c) > maxTokens {
			return false
		}
	}
	return true
}
