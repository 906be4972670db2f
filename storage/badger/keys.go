package badger

import (
	"fmt"
	"strings"
)

// Key prefixes for different data types
const (
	memoryRecordPrefix  = "memrec"
	memoryContentPrefix = "memcon"
)

// escapeKeySegment escapes separator characters inside a key segment
// so an ID containing ':' cannot make one content's prefix match
// another content's keys.
func escapeKeySegment(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, ":", `\:`)
}

// makeRecordKey generates a key for a memory record by ID.
func makeRecordKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", memoryRecordPrefix, id))
}

// makeContentKey generates a composite key for the content index.
// Format: prefix:contentID:recordID (contentID escaped)
func makeContentKey(contentID, recordID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", memoryContentPrefix, escapeKeySegment(contentID), recordID))
}

// makePartialContentKey generates a partial key for content scans.
// Format: prefix:contentID: (contentID escaped)
func makePartialContentKey(contentID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", memoryContentPrefix, escapeKeySegment(contentID)))
}
