package llm

import "strings"

// CleanJSONBlock strips markdown code fences from a model response.
// Models wrap JSON in ```json fences often enough, even when told not to,
// that every JSON parse goes through this first.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	// Drop a language tag on the fence line ("json", "JSON", ...).
	if idx := strings.Index(text, "\n"); idx >= 0 && !strings.ContainsAny(text[:idx], " {") {
		text = text[idx+1:]
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
