package width

// codepointRange is an inclusive [lo,hi] run of codepoints sharing a width
// class.
type codepointRange struct {
	lo, hi rune
}

func inRanges(cp rune, ranges []codepointRange) bool {
	// Linear scan: the tables are small (a few dozen entries each) and this
	// runs on the same hot path Decode does, so a binary search would only
	// pay off on much larger tables than these.
	for _, r := range ranges {
		if cp >= r.lo && cp <= r.hi {
			return true
		}
	}
	return false
}

// zeroWidthRanges are control, combining, and zero-width-by-definition
// codepoints (§4.1 "Zero").
var zeroWidthRanges = []codepointRange{
	{0x0000, 0x001F}, // C0 controls
	{0x007F, 0x007F}, // DEL
	{0x0080, 0x009F}, // C1 controls
	{0x00AD, 0x00AD}, // soft hyphen
	{0x0300, 0x036F}, // combining diacritical marks
	{0x1AB0, 0x1AFF}, // combining diacritical marks extended
	{0x1DC0, 0x1DFF}, // combining diacritical marks supplement
	{0x200B, 0x200F}, // zero-width space family
	{0x2028, 0x202F}, // line/paragraph separators, bidi formatting
	{0x2060, 0x206F}, // word joiner and invisible operators
	{0x20D0, 0x20FF}, // combining diacritical marks for symbols
	{0xFE00, 0xFE0F}, // variation selectors
	{0xFE20, 0xFE2F}, // combining half marks
	{0xFEFF, 0xFEFF}, // BOM
	{0xE0100, 0xE01EF}, // variation selectors supplement
}

// doubleWidthRanges are East-Asian-wide and emoji-presentation codepoints
// (§4.1 "Two").
var doubleWidthRanges = []codepointRange{
	{0x1100, 0x115F},   // Hangul Jamo
	{0x2329, 0x232A},   // angle brackets
	{0x2600, 0x26FF},   // misc symbols
	{0x2700, 0x27BF},   // dingbats
	{0x2E80, 0x2EFF},   // CJK radicals supplement
	{0x2F00, 0x2FDF},   // Kangxi radicals
	{0x2FF0, 0x2FFF},   // ideographic description characters
	{0x3000, 0x303E},   // CJK symbols and punctuation
	{0x3041, 0x33FF},   // hiragana, katakana, phonetic ext, CJK compat
	{0x3400, 0x4DBF},   // CJK unified ideographs extension A
	{0x4E00, 0x9FFF},   // CJK unified ideographs
	{0xA000, 0xA4CF},   // Yi syllables/radicals
	{0xAC00, 0xD7A3},   // Hangul syllables
	{0xF900, 0xFAFF},   // CJK compatibility ideographs
	{0xFE30, 0xFE4F},   // CJK compatibility forms
	{0xFF01, 0xFF60},   // fullwidth forms
	{0xFFE0, 0xFFE6},   // fullwidth signs
	{0x1F300, 0x1F9FF}, // misc symbols & pictographs, emoticons
	{0x1FA00, 0x1FAFF}, // chess symbols, extended-A
	{0x20000, 0x2A6DF}, // CJK unified ideographs extension B
	{0x2A700, 0x2EBEF}, // CJK unified ideographs extensions C-G
	{0x2F800, 0x2FA1F}, // CJK compatibility ideographs supplement
}

// RuneWidth classifies the display width of a single codepoint as 0, 1, or
// 2 cells (§4.1).
func RuneWidth(cp rune) int {
	if inRanges(cp, zeroWidthRanges) {
		return 0
	}
	if inRanges(cp, doubleWidthRanges) {
		return 2
	}
	return 1
}
