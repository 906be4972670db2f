// Package classify decides whether incoming text is a memory query or
// content to be analyzed. The language model is advisory: any model or
// parse failure falls back to a deterministic heuristic so the caller
// always receives a usable classification.
package classify
