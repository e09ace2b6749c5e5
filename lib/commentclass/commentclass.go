// Package commentclass classifies a single comment into one of four
// categories based on its emoji and text content. Classification is total:
// every string maps to exactly one category and nothing ever errors.
package commentclass

import "strings"

type Category int

const (
	CategoryEmpty Category = iota
	CategoryText
	CategoryEmoji
	CategoryMixed
)

func (c Category) String() string {
	switch c {
	case CategoryText:
		return "text"
	case CategoryEmoji:
		return "emoji"
	case CategoryMixed:
		return "mixed"
	default:
		return "empty"
	}
}

// emoji code point blocks: emoticons, symbols & pictographs (includes skin
// tone modifiers), transport, regional indicators (flags), supplemental
// symbols, chess + extended-A, miscellaneous symbols, dingbats.
var emojiRanges = [...][2]rune{
	{0x1F600, 0x1F64F},
	{0x1F300, 0x1F5FF},
	{0x1F680, 0x1F6FF},
	{0x1F1E6, 0x1F1FF},
	{0x1F900, 0x1F9FF},
	{0x1FA00, 0x1FAFF},
	{0x2600, 0x26FF},
	{0x2700, 0x27BF},
}

func isEmoji(r rune) bool {
	for _, rng := range emojiRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

// joiners and modifiers that ride along with an emoji sequence but carry no
// content of their own (ZWJ, variation selectors, combining keycap)
func isEmojiJoiner(r rune) bool {
	return r == 0x200D || r == 0xFE0E || r == 0xFE0F || r == 0x20E3
}

// Classify assigns a comment to exactly one category:
//
//   - empty: nothing but whitespace
//   - emoji: only emoji sequences (and whitespace)
//   - text: no emoji at all; punctuation or digits alone still count as text
//   - mixed: both emoji and non-emoji content
func Classify(raw string) Category {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CategoryEmpty
	}

	hasEmoji := false
	var residue strings.Builder
	for _, r := range trimmed {
		switch {
		case isEmoji(r):
			hasEmoji = true
		case isEmojiJoiner(r):
		default:
			residue.WriteRune(r)
		}
	}

	if strings.TrimSpace(residue.String()) == "" {
		// the whole comment was emoji, joiners and whitespace
		return CategoryEmoji
	}
	if !hasEmoji {
		return CategoryText
	}
	return CategoryMixed
}
