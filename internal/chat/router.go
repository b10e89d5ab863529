// Package chat holds the conversational surface: it classifies each user
// line as an asset query or a general question and dispatches to the market
// service or the matcher/teaching flow.
package chat

import (
	"strings"
)

// assetTriggers are the phrases that flag a line as a coin query.
var assetTriggers = []string{
	"price of",
	"information about",
	"prediction about",
	"analysis about",
}

// exitPhrases end the session, matched case-insensitively.
var exitPhrases = []string{"quit", "byy", "ok by"}

// IsExitPhrase reports whether the line ends the conversation.
func IsExitPhrase(line string) bool {
	lowered := strings.ToLower(strings.TrimSpace(line))
	for _, phrase := range exitPhrases {
		if lowered == phrase {
			return true
		}
	}
	return false
}

// lowerASCII folds only A-Z so byte offsets stay aligned with the input;
// strings.ToLower can change byte length on some Unicode letters, and the
// trigger phrases are all ASCII anyway.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// ExtractAssetName classifies the line and, for asset queries, extracts the
// coin name: the text after the last "about", or after "price of" when no
// "about" is present. The name is returned as typed, only whitespace-trimmed.
func ExtractAssetName(line string) (string, bool) {
	lowered := lowerASCII(line)

	triggered := false
	for _, trigger := range assetTriggers {
		if strings.Contains(lowered, trigger) {
			triggered = true
			break
		}
	}
	if !triggered {
		return "", false
	}

	if idx := strings.LastIndex(lowered, "about"); idx >= 0 {
		return strings.TrimSpace(line[idx+len("about"):]), true
	}
	if idx := strings.LastIndex(lowered, "price of"); idx >= 0 {
		return strings.TrimSpace(line[idx+len("price of"):]), true
	}
	return "", false
}
