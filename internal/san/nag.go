package san

// Annotation glyphs and their Numeric Annotation Glyph codes.
var glyphs = [...]string{
	1: "!",
	2: "?",
	3: "!!",
	4: "??",
	5: "!?",
	6: "?!",
}

// NAGFromGlyph returns the NAG code for a move suffix such as "!?", or
// 0 when s is not one of the six move glyphs.
func NAGFromGlyph(s string) int {
	for nag := 1; nag < len(glyphs); nag++ {
		if glyphs[nag] == s {
			return nag
		}
	}
	return 0
}

// GlyphFromNAG returns the suffix for NAG codes 1 to 6 and "" otherwise.
func GlyphFromNAG(nag int) string {
	if nag <= 0 || nag >= len(glyphs) {
		return ""
	}
	return glyphs[nag]
}

// splitGlyph strips a trailing annotation glyph from text.
func splitGlyph(text string) (move string, nag int) {
	end := len(text)
	for end > 0 && (text[end-1] == '!' || text[end-1] == '?') {
		end--
	}
	if end == len(text) {
		return text, 0
	}
	return text[:end], NAGFromGlyph(text[end:])
}
