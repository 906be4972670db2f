// Copyright 2026 Halcyon Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package textutil cleans raw text before chunking. Transcripts arrive
// full of filler words and stage directions; social posts carry URLs
// and thread numbering. Both are normalized here so the chunker and
// embedder see plain prose.
package textutil

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe    = regexp.MustCompile(`\s+`)
	fillerWordRe    = regexp.MustCompile(`(?i)\b(um|uh|er|ah|you know|basically|literally)\b`)
	bracketedRe     = regexp.MustCompile(`\[[^\]]*\]`)
	parentheticalRe = regexp.MustCompile(`\([^)]*\)`)
	loneLowerIRe    = regexp.MustCompile(`\bi\b`)
	punctSpacingRe  = regexp.MustCompile(`(\w)([.!?])(\w)`)
	repeatPeriodRe  = regexp.MustCompile(`\.{2,}`)
	repeatCommaRe   = regexp.MustCompile(`,{2,}`)
	urlRe           = regexp.MustCompile(`https?://\S+|www\.\S+`)
	threadNumberRe  = regexp.MustCompile(`(\d+)/(\S)`)
)

// CleanTranscript normalizes machine-transcribed speech: collapses
// whitespace, drops filler words and bracketed or parenthetical stage
// directions, fixes the lone lowercase "i", restores spacing after
// sentence punctuation, and squashes repeated punctuation.
func CleanTranscript(text string) string {
	if text == "" {
		return ""
	}

	text = whitespaceRe.ReplaceAllString(text, " ")
	text = fillerWordRe.ReplaceAllString(text, "")
	text = bracketedRe.ReplaceAllString(text, "")
	text = parentheticalRe.ReplaceAllString(text, "")

	text = loneLowerIRe.ReplaceAllString(text, "I")
	text = punctSpacingRe.ReplaceAllString(text, "$1$2 $3")

	text = repeatPeriodRe.ReplaceAllString(text, ".")
	text = repeatCommaRe.ReplaceAllString(text, ",")

	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// CleanSocialText normalizes social-media posts: strips URLs, spaces
// out thread numbering ("1/five" -> "1/ five"), and collapses
// whitespace. Mentions and hashtags are kept; they carry meaning for
// retrieval.
func CleanSocialText(text string) string {
	if text == "" {
		return ""
	}

	text = urlRe.ReplaceAllString(text, "")
	text = threadNumberRe.ReplaceAllString(text, "$1/ $2")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
