package notify

// Split cuts text into chunks of at most limit runes, preferring to break at
// a newline, then at a sentence end, then at a space. Delimiters stay with
// the preceding chunk, so concatenating the chunks reproduces the input.
func Split(text string, limit int) []string {
	if limit <= 0 || len([]rune(text)) <= limit {
		return []string{text}
	}

	var chunks []string
	runes := []rune(text)

	for len(runes) > limit {
		cut := findCut(runes[:limit], limit)
		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}

// findCut picks the break position within the first limit runes
func findCut(window []rune, limit int) int {
	// newline is the best break, it separates whole entries
	for i := limit - 1; i >= 0; i-- {
		if window[i] == '\n' {
			return i + 1
		}
	}

	// then a sentence boundary followed by a space
	for i := limit - 1; i > 0; i-- {
		if window[i] == ' ' && isSentenceEnd(window[i-1]) {
			return i + 1
		}
	}

	// then any space
	for i := limit - 1; i > 0; i-- {
		if window[i] == ' ' {
			return i + 1
		}
	}

	// no boundary at all, cut mid-word
	return limit
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
