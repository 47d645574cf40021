package emoji

import "testing"

func TestEmojiClasses(t *testing.T) {
	if EmojiPresentation.String() != "Emoji_Presentation" {
		t.Errorf("String(EmojiPresentation) is %s", EmojiPresentation)
	}
	SetupEmojiClasses()
	if c := ClassForRune('\U0001F600'); c != EmojiPresentation {
		t.Errorf("GRINNING FACE should have emoji presentation, has class %s", c)
	}
	// dingbats default to text presentation but are pictographic
	if c := ClassForRune('✂'); c != ExtendedPictographic {
		t.Errorf("BLACK SCISSORS should be extended pictographic, has class %s", c)
	}
	if c := ClassForRune('x'); c != Other {
		t.Errorf("'x' should have no emoji class, has class %s", c)
	}
}

func TestIsPictographic(t *testing.T) {
	for _, r := range []rune{'\U0001F600', '✂', '©', '\U0001F3FB'} {
		if !IsPictographic(r) {
			t.Errorf("U+%04X should be pictographic", r)
		}
	}
	for _, r := range []rune{'a', ' ', 'ß'} {
		if IsPictographic(r) {
			t.Errorf("U+%04X should not be pictographic", r)
		}
	}
}

func TestIsRegionalIndicator(t *testing.T) {
	if !IsRegionalIndicator('\U0001F1E9') {
		t.Error("REGIONAL INDICATOR SYMBOL LETTER D should be a regional indicator")
	}
	if IsRegionalIndicator('D') {
		t.Error("'D' should not be a regional indicator")
	}
}
