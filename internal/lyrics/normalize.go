package lyrics

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// CleaningMarker separates page boilerplate from the lyrics proper.
const CleaningMarker = "[Verse 1]"

var lyricsWord = regexp.MustCompile(`(?i)\s*lyrics\s*`)

// Title turns a search query into a song title: every "lyrics" (with the
// whitespace around it) is removed, then the first character is upper-cased
// and the rest lower-cased. Removal repeats until no "lyrics" is left, so
// "lylyricsrics" does not collapse into a new occurrence.
func Title(query string) string {
	title := query
	for lyricsWord.MatchString(title) {
		title = lyricsWord.ReplaceAllString(title, "")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}

	first, size := utf8.DecodeRuneInString(title)
	return string(unicode.ToTitle(first)) + strings.ToLower(title[size:])
}

// Clean drops everything before the first CleaningMarker. Text without the
// marker is cleaned to "".
func Clean(text string) string {
	idx := strings.Index(text, CleaningMarker)
	if idx < 0 {
		return ""
	}
	return text[idx:]
}
