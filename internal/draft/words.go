// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package draft

import "strings"

// WordCount returns the number of whitespace-delimited tokens in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// TruncateWords returns the first maxWords whitespace-delimited tokens of
// text joined by single spaces. Text already within the limit is returned
// re-joined, so the result never depends on the original spacing.
func TruncateWords(text string, maxWords int) string {
	if maxWords <= 0 {
		return ""
	}
	words := strings.Fields(text)
	if len(words) > maxWords {
		words = words[:maxWords]
	}
	return strings.Join(words, " ")
}
