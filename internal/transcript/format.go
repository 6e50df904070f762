package transcript

import (
	"fmt"
	"strings"
)

// Format renders timed entries as text. With timestamps each entry becomes a
// "[MM:SS] text" line joined by newlines; without, all entry texts are joined
// into a single whitespace-normalized paragraph.
func Format(entries []Entry, withTimestamps bool) string {
	if withTimestamps {
		lines := make([]string, 0, len(entries))
		for _, entry := range entries {
			lines = append(lines, fmt.Sprintf("[%s] %s",
				FormatTimestamp(entry.Start),
				strings.TrimSpace(entry.Text)))
		}
		return strings.Join(lines, "\n")
	}

	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		parts = append(parts, strings.TrimSpace(entry.Text))
	}
	return collapseWhitespace(strings.Join(parts, " "))
}

// FormatTimestamp converts seconds to MM:SS, or HH:MM:SS past the first hour.
// Sub-second precision is discarded.
func FormatTimestamp(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// Chunk splits text into consecutive size-character pieces; the final piece
// may be shorter. Slicing is by character position with no word-boundary
// awareness, so a multi-byte rune never straddles a chunk boundary.
func Chunk(text string, size int) []string {
	if size <= 0 {
		return []string{text}
	}

	runes := []rune(text)
	chunks := []string{}
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

// collapses every run of whitespace, newlines included, to a single space
// and trims the ends
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
