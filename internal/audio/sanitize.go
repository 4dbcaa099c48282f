package audio

import (
	"strings"
	"unicode"
)

// emoticons are text-emoticon sequences stripped before synthesis.
// Longer sequences first so ":-)" is removed before ":)" could match.
var emoticons = []string{
	":-)", ":-(", ":-D", ":-P", ";-)", ":-/", ":-|",
	":)", ":(", ":D", ":P", ";)", ":/", ":|",
	"<3", "^_^", "^-^", "xD", "XD",
}

// Sanitize strips non-speakable glyphs from tutor text: pictographic
// symbols (emoji) and text-emoticon sequences. The result may be empty,
// in which case synthesis is skipped. Sanitize is idempotent.
func Sanitize(text string) string {
	// Strip to a fixpoint across both passes: removing one emoticon can
	// expose another ("::))" leaves ":)" behind), and dropping a glyph
	// can join the halves of an emoticon (":😀)" becomes ":)").
	for {
		before := text
		for _, e := range emoticons {
			text = strings.ReplaceAll(text, e, "")
		}
		text = stripGlyphs(text)
		if text == before {
			break
		}
	}
	return strings.TrimSpace(collapseSpaces(text))
}

func stripGlyphs(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if speakable(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// speakable reports whether a rune should survive sanitization.
// Pictographic blocks and variation selectors are dropped.
func speakable(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF: // emoji, pictographs, symbols
		return false
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return false
	case r >= 0xFE00 && r <= 0xFE0F: // variation selectors
		return false
	case r == 0x200D: // zero-width joiner
		return false
	case r >= 0x2190 && r <= 0x21FF: // arrows
		return false
	case unicode.Is(unicode.So, r): // remaining symbol-other glyphs
		return false
	}
	return true
}

func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		if r == ' ' {
			if lastSpace {
				continue
			}
			lastSpace = true
		} else {
			lastSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
