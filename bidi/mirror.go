package bidi

// Mirror applies rule L4 of UAX#9: characters at odd (right-to-left) embedding
// levels are replaced by their mirror glyph, if they have one. levels holds
// the resolved embedding level for each rune of text. A new slice is returned,
// text is not modified.
func Mirror(text []rune, levels []uint8, lookup Lookup) []rune {
	out := make([]rune, len(text))
	for i, r := range text {
		out[i] = r
		if i >= len(levels) || levels[i]&1 == 0 {
			continue
		}
		if m := lookup.Mirror(r); m != 0 {
			out[i] = m
		}
	}
	return out
}

// MirrorString applies rule L4 to a string which is entirely right-to-left.
func MirrorString(s string, lookup Lookup) string {
	text := []rune(s)
	for i, r := range text {
		if m := lookup.Mirror(r); m != 0 {
			text[i] = m
		}
	}
	return string(text)
}
