package layout

import "strings"

// wrapText greedily wraps text into lines that fit widthMM at the given
// style's estimated glyph advance. Words longer than a full line are hard
// broken so a single unbreakable token can never stall pagination.
func wrapText(text string, widthMM float64, style Style) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	maxChars := int(widthMM / style.charWidthMM())
	if maxChars < 1 {
		maxChars = 1
	}

	var lines []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			lines = append(lines, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	for _, field := range strings.Fields(text) {
		word := []rune(field)
		for len(word) > maxChars {
			flush()
			lines = append(lines, string(word[:maxChars]))
			word = word[maxChars:]
		}
		need := len(word)
		if currentLen > 0 {
			need++ // joining space
		}
		if currentLen+need > maxChars {
			flush()
		}
		if currentLen > 0 {
			current.WriteByte(' ')
			currentLen++
		}
		current.WriteString(string(word))
		currentLen += len(word)
	}
	flush()

	return lines
}

// wrappedHeightMM returns the vertical space the text occupies after
// wrapping, used by tests to predict pagination.
func wrappedHeightMM(text string, widthMM float64, style Style) float64 {
	return float64(len(wrapText(text, widthMM, style))) * style.lineHeightMM()
}
