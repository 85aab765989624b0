package layout

import "strings"

// Ellipsis marks truncated text. It replaces the final rune of the last
// wrapped line when input remains unconsumed.
const Ellipsis = '…'

// Wrap splits text into consecutive chunks of exactly maxChars runes,
// producing at most maxLines chunks. Chunking is fixed-width by rune count,
// not word-aware; the renderer assumes roughly uniform glyph widths. If
// text remains when the line limit is hit, the last line's final rune is
// replaced with the ellipsis marker. Empty or whitespace-only input yields
// nil.
func Wrap(text string, maxChars, maxLines int) []string {
	s := strings.TrimSpace(text)
	if s == "" || maxChars < 1 || maxLines < 1 {
		return nil
	}

	runes := []rune(s)
	var lines []string
	i := 0
	for i < len(runes) && len(lines) < maxLines {
		end := min(i+maxChars, len(runes))
		lines = append(lines, string(runes[i:end]))
		i = end
	}

	if i < len(runes) && len(lines) > 0 {
		last := []rune(lines[len(lines)-1])
		last[len(last)-1] = Ellipsis
		lines[len(lines)-1] = string(last)
	}
	return lines
}
