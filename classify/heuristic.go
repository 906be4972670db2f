package classify

import (
	"fmt"
	"strings"
)

// Indicator vocabularies for heuristic classification. Matching is
// substring-based over the lowercased input.
var (
	queryWords = []string{
		"what", "when", "where", "how", "why",
		"did i", "have i", "show me", "find", "search",
	}

	contentIndicators = []string{
		"🧵", "\n\n", "1/", "2/", "here's", "today", "just", "published",
	}
)

// Heuristic classifies input without a language model. It is a pure
// function: the same input always produces the same result.
//
// Query evidence: question vocabulary, question marks (weighted
// double), and very short inputs. Content evidence: thread and
// publishing markers, paragraph breaks, and long inputs. Whichever
// side scores strictly higher wins; ties classify as content.
func Heuristic(input string) Result {
	lower := strings.ToLower(input)

	queryScore := 0
	for _, word := range queryWords {
		if strings.Contains(lower, word) {
			queryScore++
		}
	}
	queryScore += strings.Count(input, "?") * 2

	contentScore := 0
	for _, indicator := range contentIndicators {
		if strings.Contains(lower, indicator) {
			contentScore++
		}
	}

	wordCount := len(strings.Fields(input))
	if wordCount > 100 {
		contentScore += 2
	} else if wordCount < 20 {
		queryScore++
	}

	isQuery := queryScore > contentScore

	diff := queryScore - contentScore
	if diff < 0 {
		diff = -diff
	}
	total := queryScore + contentScore
	if total < 1 {
		total = 1
	}
	confidence := float64(diff) / float64(total)
	if confidence < 0.5 {
		confidence = 0.5
	}
	if confidence > 0.9 {
		confidence = 0.9
	}

	return Result{
		IsQuery:    isQuery,
		Confidence: confidence,
		Reasoning:  fmt.Sprintf("Query indicators: %d, Content indicators: %d", queryScore, contentScore),
	}
}
