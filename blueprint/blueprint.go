package blueprint

// Step is a single reconstructed stage of a creative workflow.
type Step struct {
	Step   int    `json:"step"`
	Tool   string `json:"tool"`
	Action string `json:"action"`
	Note   string `json:"note"`
}

// Blueprint is the reconstructed timeline of how a piece of content
// was likely created.
type Blueprint struct {
	Steps       []Step   `json:"steps"`
	ContentType string   `json:"content_type"`
	Confidence  float64  `json:"confidence"`
	Insights    []string `json:"insights"`
}
