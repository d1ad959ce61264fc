package app

// truncateText shortens cell text for table display without splitting
// multi-byte characters.
func truncateText(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "…"
}
