/*
Package tokenizer implements a rule-based tokenizer for informal written
text in German and English, following the tokenization guidelines of the
EmpiriST 2015 shared task on automatic linguistic annotation of
computer-mediated communication / social media.

The tokenizer operates on a doubly-linked token sequence. A fixed, ordered
catalogue of splitting passes progressively fragments an initial one-token
sequence; the order of the passes is part of the tokenization grammar, as
every pass relies on earlier passes having already removed their categories
of ambiguity, and tokens locked by an earlier pass are never re-split by a
later one.
*/
package tokenizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/AndreasBlombach/SoMaJo/internal/tracing"
	"github.com/AndreasBlombach/SoMaJo/token"
)

// DefaultLanguage is used when an unsupported language is requested.
const DefaultLanguage = "de"

var supportedLanguages = map[string]bool{
	"de": true,
	"en": true,
}

// SupportedLanguage reports whether language has its own rule set.
func SupportedLanguage(language string) bool {
	return supportedLanguages[language]
}

// Tokenizer holds the compiled rule catalogue for one language
// configuration. It is created once and may then be used for any number of
// tokenization calls; the rules are never mutated after construction.
// Tokenize calls on distinct sequences are independent, so callers may run
// one Tokenizer per worker for parallel processing.
type Tokenizer struct {
	language       string
	splitCamelCase bool
	rules          *rules
}

// New creates a Tokenizer for the given language ("de" or "en"; anything
// else falls back to the default language). If splitCamelCase is set,
// tokens written in camelCase will be split, excluding established names
// and terms.
func New(language string, splitCamelCase bool) *Tokenizer {
	if !supportedLanguages[language] {
		tracing.P("language", language).Infof("unsupported language, falling back to %q", DefaultLanguage)
		language = DefaultLanguage
	}
	return &Tokenizer{
		language:       language,
		splitCamelCase: splitCamelCase,
		rules:          newRules(language),
	}
}

// Language returns the effective language of the tokenizer.
func (t *Tokenizer) Language() string {
	return t.language
}

// TokenizeParagraph tokenizes a single paragraph of text, which may contain
// line breaks, and returns the resulting tokens in order.
func (t *Tokenizer) TokenizeParagraph(paragraph string) []token.Token {
	seq := token.NewSequence(token.Token{
		Text:            paragraph,
		SpaceAfter:      true,
		FirstInSentence: true,
		LastInSentence:  true,
	})
	t.Tokenize(seq)
	return seq.Tokens()
}

// NormalizeText applies the per-token text normalization to s: canonical
// Unicode composition (NFC), whitespace collapsing and removal of control
// characters and stranded variation selectors. Normalization is idempotent.
func (t *Tokenizer) NormalizeText(s string) string {
	s = norm.NFC.String(s)
	s = sub(t.rules.spaces, s, " ")
	s = sub(t.rules.controls, s, "")
	s = sub(t.rules.strandedVariation, s, "")
	return sub(t.rules.spaces, s, " ")
}

// Tokenize runs the full splitting pipeline over seq, fragmenting it in
// place. Markup tokens pass through untouched.
func (t *Tokenizer) Tokenize(seq *token.Sequence) {
	r := t.rules

	for node := seq.First(); node != nil; node = node.Next() {
		if node.Token.Markup || node.Token.Locked {
			continue
		}
		node.Token.Text = t.NormalizeText(node.Token.Text)
	}

	// Some tokens are allowed to contain whitespace. Get those out of the
	// way first: XML declarations and tags, and obfuscated e-mail
	// addresses, which may contain spelled-out spaces.
	t.splitAllMatches(seq, r.xmlDeclaration, "XML_tag", true)
	t.splitAllMatches(seq, r.tag, "XML_tag", true)
	t.splitAllMatches(seq, r.email, "email_address", true)

	// Emoji sequences can contain zero-width joiners that look like
	// separators, so they have to precede whitespace splitting as well.
	t.splitAllMatches(seq, r.unicodeFlags, "emoticon", true)
	t.splitAllEmoji(seq, "emoticon")

	for node := seq.First(); node != nil; {
		next := node.Next()
		if node.Token.Markup || node.Token.Locked {
			node = next
			continue
		}
		text := sub(r.otherNasties, node.Token.Text, "")
		text = sub(r.spaces, text, " ")
		// some emoticons contain erroneous spaces; fix this before
		// splitting on whitespace
		text = sub(r.spaceEmoticon, text, "$1$2")
		fields := strings.Fields(text)
		for i, field := range fields {
			fragment := token.Token{Text: field, SpaceAfter: true}
			if i == 0 {
				fragment.FirstInSentence = node.Token.FirstInSentence
			}
			if i == len(fields)-1 {
				fragment.SpaceAfter = node.Token.SpaceAfter
				fragment.LastInSentence = node.Token.LastInSentence
			}
			seq.InsertBefore(fragment, node)
		}
		seq.Remove(node)
		node = next
	}

	// URLs and DOIs
	t.splitAllMatches(seq, r.simpleURLWithBrackets, "URL", true)
	t.splitAllMatches(seq, r.simpleURL, "URL", true)
	t.splitAllMatches(seq, r.doi, "URL", true)
	t.splitAllMatches(seq, r.doiWithSpace, "URL", true)
	t.splitAllMatches(seq, r.urlWithoutProtocol, "URL", true)
	t.splitAllMatches(seq, r.redditLinks, "URL", true)

	// XML entities
	t.splitAllMatches(seq, r.entity, "XML_entity", true)

	// emoticons
	t.splitAllMatches(seq, r.heartEmoticon, "emoticon", true)
	t.splitAllMatches(seq, r.emoticon, "emoticon", true)

	// mentions, hashtags
	t.splitAllMatches(seq, r.mention, "mention", true)
	t.splitAllMatches(seq, r.hashtag, "hashtag", true)
	// action words
	t.splitAllMatches(seq, r.actionWord, "action_word", true)
	// underline
	t.splitAllMatches(seq, r.underline, "regular", true)
	// textual representations of emoji
	t.splitAllMatches(seq, r.textualEmoji, "emoticon", true)

	// tokens with + or &
	t.splitAllMatches(seq, r.tokenWithPlusAmpersand, "regular", true)
	t.splitAllSet(seq, r.simplePlusAmpersandCandidates, r.simplePlusAmpersand, "regular", true)

	// camelCase
	if t.splitCamelCase {
		t.splitAllMatches(seq, r.camelCaseToken, "regular", true)
		t.splitAllSet(seq, r.simpleCamelCaseCandidates, r.simpleCamelCaseTokens, "regular", false)
		t.splitAllMatches(seq, r.inAndInnen, "regular", true)
	}

	// gender star
	t.splitAllMatches(seq, r.genderStar, "regular", true)

	// English possessive and contracted forms
	if t.language == "en" {
		t.splitAllMatches(seq, r.englishDecades, "number_compound", true)
		t.splitAllMatches(seq, r.enDms, "regular", true)
		t.splitAllMatches(seq, r.enLlreve, "regular", true)
		t.splitAllMatches(seq, r.enNot, "regular", true)
		for _, contraction := range r.enTwopartContractions {
			t.splitAllMatches(seq, contraction, "regular", true)
		}
		for _, contraction := range r.enThreepartContractions {
			t.splitAllMatches(seq, contraction, "regular", true)
		}
		t.splitAllMatches(seq, r.enNonbreakingWords, "regular", true)
		t.splitAllMatches(seq, r.enNonbreakingPrefixes, "regular", true)
		t.splitAllMatches(seq, r.enNonbreakingSuffixes, "regular", true)
	}

	// abbreviations; for non-English languages, multi-part abbreviations
	// are exploded into one token per dot-terminated segment
	t.splitAbbreviations(seq, t.language != "en")

	// dates; non-English languages split them into their named sub-groups
	splitDates := t.language != "en"
	t.splitAllMatches(seq, r.threePartDateYearFirst, "date", splitDates)
	t.splitAllMatches(seq, r.threePartDateDMY, "date", splitDates)
	t.splitAllMatches(seq, r.threePartDateMDY, "date", splitDates)
	t.splitAllMatches(seq, r.twoPartDate, "date", splitDates)
	// time
	if t.language == "en" {
		t.splitAllMatches(seq, r.enTime, "time", true)
	}
	t.splitAllMatches(seq, r.timeOfDay, "time", true)
	// US phone numbers and ZIP codes
	if t.language == "en" {
		t.splitAllMatches(seq, r.enUSPhoneNumber, "number", true)
		t.splitAllMatches(seq, r.enUSZipCode, "number", true)
		t.splitAllMatches(seq, r.enNumericalIdentifiers, "number", true)
	}
	// ordinals
	if t.language == "de" {
		t.splitAllMatches(seq, r.ordinal, "ordinal", true)
	} else if t.language == "en" {
		t.splitAllMatches(seq, r.englishOrdinal, "ordinal", true)
	}
	// fractions
	t.splitAllMatches(seq, r.fraction, "number", true)
	// amounts (1.000,-)
	t.splitAllMatches(seq, r.amount, "amount", true)
	// semesters
	t.splitAllMatches(seq, r.semester, "semester", true)
	// measurements
	t.splitAllMatches(seq, r.measurement, "measurement", true)
	// number compounds
	t.splitAllMatches(seq, r.numberCompound, "number_compound", true)
	// numbers
	t.splitAllMatches(seq, r.number, "number", true)
	t.splitAllMatches(seq, r.ipv4, "number", true)
	t.splitAllMatches(seq, r.sectionNumber, "number", true)

	// (clusters of) question marks and exclamation marks
	t.splitAllMatches(seq, r.questExclam, "symbol", true)
	// arrows
	t.splitAllMatches(seq, r.arrow, "symbol", true)
	// parens
	t.splitAllMatches(seq, r.paren, "symbol", true)
	// slashes
	if t.language == "en" {
		t.splitAllMatches(seq, r.enSlashWords, "regular", true)
	}
	if t.language == "de" {
		t.splitAllMatches(seq, r.deSlash, "symbol", true)
	}
	// O'Connor and French omitted vowels: L'Enfer, d'accord
	t.splitAllMatches(seq, r.letterApostropheWord, "regular", true)
	// other punctuation symbols
	if t.language == "en" {
		t.splitAllMatches(seq, r.enHyphen, "symbol", true)
		t.splitAllMatches(seq, r.enQuotationMarks, "symbol", true)
		t.splitAllMatches(seq, r.enOtherPunctuation, "symbol", true)
	} else {
		t.splitAllMatches(seq, r.otherPunctuation, "symbol", true)
	}
	// ellipsis
	t.splitAllMatches(seq, r.ellipsis, "symbol", true)
	// a dot fused between a lower-case and a capitalized run is a missed
	// sentence boundary
	t.splitAllMatches(seq, r.dotWithoutSpace, "symbol", true)
	// remaining dots
	t.splitAllMatches(seq, r.dot, "symbol", true)
}
