package reports

// TransportMessageLimit is the chat transport's maximum message length.
const TransportMessageLimit = 4000

// Chunk splits text into sequential pieces of at most limit runes each.
// Concatenating the chunks in order reproduces the input exactly; no
// line-aware splitting is attempted.
func Chunk(text string, limit int) []string {
	if limit <= 0 || text == "" {
		return []string{text}
	}

	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	chunks := make([]string, 0, (len(runes)+limit-1)/limit)
	for start := 0; start < len(runes); start += limit {
		end := start + limit
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
