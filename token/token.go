// Package token defines the token data model for the tokenizer: a classified
// unit of text plus the mutable, doubly-linked sequence that the splitting
// passes operate on.
package token

// Token is a unit of text together with the metadata the pipeline maintains
// for it. Markup tokens represent structural content (tags, entities) and are
// permanently excluded from splitting; locked tokens have been classified as
// final units by some pass. SpaceAfter records whether the source had
// whitespace immediately after the token; FirstInSentence and LastInSentence
// carry pre-existing sentence-boundary flags. OriginalSpelling holds the
// literal source substring whenever it differs from Text.
type Token struct {
	Text             string
	Markup           bool
	Locked           bool
	Class            string
	SpaceAfter       bool
	FirstInSentence  bool
	LastInSentence   bool
	OriginalSpelling string
}

// NewToken creates a plain word token with default spacing.
func NewToken(text string) Token {
	return Token{Text: text, SpaceAfter: true}
}

// NewMarkupToken creates a locked markup token, e.g. for an XML tag.
func NewMarkupToken(text string) Token {
	return Token{Text: text, Markup: true, Locked: true, SpaceAfter: true}
}

func (t Token) String() string {
	return t.Text
}
