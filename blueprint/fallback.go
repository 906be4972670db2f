package blueprint

import "strings"

const fallbackConfidence = 0.6

var fallbackInsights = []string{
	"Analysis completed with fallback method",
	"Consider uploading more content for better insights",
}

// Fallback builds a blueprint without a language model, keyed on
// content length. Long content implies a research and editing cycle,
// medium content a structured draft, short content a quick capture.
// It is a pure function: the same content always yields the same
// blueprint.
func Fallback(content string) Blueprint {
	wordCount := len(strings.Fields(content))

	var steps []Step
	switch {
	case wordCount > 500:
		steps = []Step{
			{Step: 1, Tool: "Research Tool", Action: "Gathered information and sources", Note: "Extensive content suggests research phase"},
			{Step: 2, Tool: "Notion", Action: "Organized and outlined structure", Note: "Complex content needs planning"},
			{Step: 3, Tool: "Writing Tool", Action: "Created first draft", Note: "Long-form content creation"},
			{Step: 4, Tool: "Grammarly", Action: "Edited and refined", Note: "Polish phase for quality"},
		}
	case wordCount >= 100:
		steps = []Step{
			{Step: 1, Tool: "Brainstorming", Action: "Generated ideas", Note: "Medium content needs ideation"},
			{Step: 2, Tool: "Writing App", Action: "Drafted content", Note: "Structured writing process"},
			{Step: 3, Tool: "Review", Action: "Refined and polished", Note: "Quality check"},
		}
	default:
		steps = []Step{
			{Step: 1, Tool: "Quick Notes", Action: "Captured idea", Note: "Short, spontaneous content"},
			{Step: 2, Tool: "Mobile App", Action: "Formatted and posted", Note: "Simple, direct approach"},
		}
	}

	return Blueprint{
		Steps:       steps,
		ContentType: "text_content",
		Confidence:  fallbackConfidence,
		Insights:    append([]string(nil), fallbackInsights...),
	}
}
