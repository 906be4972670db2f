package chunk

import (
	"regexp"
	"strings"
)

var speakerMarkerRe = regexp.MustCompile(`Speaker \d+:|SPEAKER_\d+:|\[\d{2}:\d{2}\]`)

// SplitTranscript chunks spoken-word transcripts. When speaker labels
// ("Speaker 1:", "SPEAKER_2:") or timestamps ("[01:23]") are present,
// the text is segmented at those markers and whole segments are packed
// into chunks of at most maxTokens*CharsPerToken characters, so chunks
// never start mid-utterance. Transcript chunks carry no overlap; the
// markers themselves provide the continuity. Text without recognizable
// markers falls back to Split.
func SplitTranscript(text string, maxTokens, overlapTokens int) []string {
	locs := speakerMarkerRe.FindAllStringIndex(text, -1)
	if locs == nil {
		return Split(text, maxTokens, overlapTokens)
	}

	maxChars := maxTokens * CharsPerToken

	var chunks []string
	var current string
	for _, segment := range splitAtMarkers(text, locs) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		if current != "" && len(current)+len(segment) > maxChars {
			chunks = append(chunks, current)
			current = segment
			continue
		}
		if current == "" {
			current = segment
		} else {
			current += " " + segment
		}
	}
	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks
}

// splitAtMarkers cuts text around each marker match, keeping the
// markers as their own segments.
func splitAtMarkers(text string, locs [][]int) []string {
	var segments []string
	last := 0
	for _, loc := range locs {
		segments = append(segments, text[last:loc[0]], text[loc[0]:loc[1]])
		last = loc[1]
	}
	return append(segments, text[last:])
}
