package orchestrate

import (
	"fmt"
	"strings"

	"github.com/halcyonlabs/retrace/blueprint"
	"github.com/halcyonlabs/retrace/memory"
)

const maxInsights = 5

// buildInsights synthesizes human-readable observations about a
// processing run. Any panic in the synthesis path is replaced by the
// generic success insight so a malformed result can never take down a
// request.
func buildInsights(input string, memories []memory.QueryResult, steps []blueprint.Step, isQuery bool) (insights []string) {
	defer func() {
		if r := recover(); r != nil {
			insights = []string{"Analysis completed successfully"}
		}
	}()

	if isQuery {
		if len(memories) > 0 {
			insights = append(insights,
				fmt.Sprintf("Found %d relevant memories from your past content", len(memories)))

			if n := uniqueSources(memories); n > 1 {
				insights = append(insights,
					fmt.Sprintf("Results span %d different content sources", n))
			}

			var total float64
			for _, m := range memories {
				total += m.Score
			}
			switch avg := total / float64(len(memories)); {
			case avg > 0.8:
				insights = append(insights, "High confidence matches - very relevant to your query")
			case avg > 0.6:
				insights = append(insights, "Good matches found with moderate confidence")
			default:
				insights = append(insights, "Some related content found, but matches are loose")
			}
		} else {
			insights = append(insights,
				"No matching memories found - try a different query or upload more content")
		}
	} else {
		if len(steps) > 0 {
			insights = append(insights,
				fmt.Sprintf("Identified %d steps in the creative workflow", len(steps)))
			insights = append(insights,
				fmt.Sprintf("Process likely involved %d different tools", uniqueTools(steps)))

			switch {
			case len(steps) > 5:
				insights = append(insights, "Complex multi-step workflow with significant planning")
			case len(steps) > 3:
				insights = append(insights, "Moderate workflow complexity with clear structure")
			default:
				insights = append(insights, "Simple, streamlined creative process")
			}
		}

		if len(memories) > 0 {
			insights = append(insights,
				fmt.Sprintf("Found %d related pieces in your past content", len(memories)))

			if n := uniqueSources(memories); n > 1 {
				insights = append(insights,
					fmt.Sprintf("Results span %d different content sources", n))
			}
			insights = append(insights, "This content connects to themes you've explored before")
		}
	}

	wordCount := len(strings.Fields(input))
	if wordCount > 200 {
		insights = append(insights, "Substantial content with rich detail for analysis")
	} else if wordCount > 50 {
		insights = append(insights, "Medium-length content with good analytical depth")
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

func uniqueSources(memories []memory.QueryResult) int {
	seen := make(map[string]bool)
	for _, m := range memories {
		seen[m.Source] = true
	}
	return len(seen)
}

func uniqueTools(steps []blueprint.Step) int {
	seen := make(map[string]bool)
	for _, s := range steps {
		seen[s.Tool] = true
	}
	return len(seen)
}
