package memory

import (
	"context"
	"fmt"
	"strings"
)

const enhancePromptTemplate = `Given the search query "%s", rank these results by relevance.
Return only the result numbers in order of relevance, comma separated.

Results:
%s`

// Enhance asks the completion model to re-rank retrieval results. The
// model's opinion is recorded at debug level but the original vector
// ordering is returned unchanged; similarity scores have proven more
// reliable than model re-ranking for short memory snippets.
func (idx *Index) Enhance(ctx context.Context, query string, results []QueryResult) []QueryResult {
	if idx.completer == nil || len(results) == 0 {
		return results
	}

	var sb strings.Builder
	for i, r := range results {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, snippet(r.Text, 200))
	}

	prompt := fmt.Sprintf(enhancePromptTemplate, query, sb.String())
	ranking, err := idx.completer.Complete(ctx, prompt, 0.1, 100)
	if err != nil {
		idx.logger.Debug("enhancement skipped", "error", err)
		return results
	}

	idx.logger.Debug("enhancement ranking received", "ranking", strings.TrimSpace(ranking))
	return results
}

func snippet(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
