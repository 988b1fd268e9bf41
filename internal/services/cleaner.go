package services

import (
	"regexp"
	"strings"
)

const (
	thinkOpen  = "<think>"
	thinkClose = "</think>"
)

var thinkBlock = regexp.MustCompile(`(?s)<think>.*?</think>`)

// CleanResponse strips reasoning that some models wrap in <think></think>.
// Complete blocks are dropped together with their content, stray markers are
// dropped on their own, and the result is trimmed. Text without any marker is
// returned unchanged.
func CleanResponse(text string) string {
	if !hasThinkMarker(text) {
		return text
	}

	// Removing a marker can splice a new one together ("<thi<think>nk>"),
	// so repeat until none is left. Each pass shrinks the string.
	for hasThinkMarker(text) {
		text = thinkBlock.ReplaceAllString(text, "")
		text = strings.ReplaceAll(text, thinkOpen, "")
		text = strings.ReplaceAll(text, thinkClose, "")
	}
	return strings.TrimSpace(text)
}

func hasThinkMarker(text string) bool {
	return strings.Contains(text, thinkOpen) || strings.Contains(text, thinkClose)
}
