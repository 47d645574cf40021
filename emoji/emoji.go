/*
Package emoji implements the Unicode UTS #51 emoji properties that the
tokenizer's pictographic pass tests for.

Attention

Before using emoji classes, clients will have to initialize them.

	SetupEmojiClasses()

This initializes all the code-point range tables. Initialization is
not done beforehand, as it consumes quite some memory. */
package emoji

import (
	"sync"
	"unicode"
)

// Class is an emoji property class of a Unicode code-point.
type Class int

// Emoji property classes. A code-point may be a member of more than one
// class; ClassForRune reports the first match in this order.
const (
	EmojiPresentation Class = iota
	ExtendedPictographic
	Other Class = -1
)

func (c Class) String() string {
	switch c {
	case EmojiPresentation:
		return "Emoji_Presentation"
	case ExtendedPictographic:
		return "Extended_Pictographic"
	}
	return "Other"
}

// VariationSelector16 requests emoji presentation for the preceding
// code-point.
const VariationSelector16 rune = 0xFE0F

var setupOnce sync.Once

// SetupEmojiClasses is the top-level preparation function:
// create the code-point range tables for the emoji property classes.
// (Concurrency-safe).
func SetupEmojiClasses() {
	setupOnce.Do(setupRangeTables)
}

// ClassForRune is the top-level client function:
// get the emoji class for a Unicode code-point.
// Will return Other if the code-point has no emoji class.
func ClassForRune(r rune) Class {
	for class, rt := range rangeFromClass {
		if rt != nil && unicode.Is(rt, r) {
			return Class(class)
		}
	}
	return Other
}

// IsPictographic reports whether r carries the Extended_Pictographic or the
// Emoji_Presentation property. A detached modifier or variation selector
// alone is not pictographic.
func IsPictographic(r rune) bool {
	SetupEmojiClasses()
	return ClassForRune(r) != Other
}

// IsRegionalIndicator reports whether r is one of the 26 regional indicator
// symbols that pair up into flag sequences.
func IsRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}
