package tokenizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/AndreasBlombach/SoMaJo/internal/tracing"
	"github.com/AndreasBlombach/SoMaJo/token"
)

// Fragment is one textual position of an XML document, i.e. the text or
// tail of an element. MatchXML fills in Tokenized, which the caller writes
// back into the document tree.
type Fragment struct {
	Text      string
	Tokenized string
}

// normalizeForAlignment turns raw input text into the reference stream the
// alignment walk consumes: composed, junk-free, single-spaced, trimmed.
func (t *Tokenizer) normalizeForAlignment(s string) string {
	s = norm.NFC.String(s)
	s = sub(t.rules.junkBetweenSpaces, s, " ")
	s = sub(t.rules.spaces, s, " ")
	return strings.TrimSpace(s)
}

// isJunk reports whether r is a control character or invisible formatting
// character, i.e. something normalization strips from token texts.
func isJunk(r rune) bool {
	if r <= 0x1F || (r >= 0x7F && r <= 0x9F) {
		return true
	}
	switch r {
	case 0x00AD, 0x061C, 0x2060, 0xFEFF:
		return true
	}
	return (r >= 0x200B && r <= 0x200F) || (r >= 0x202A && r <= 0x202E) ||
		(r >= 0x2066 && r <= 0x2069)
}

func junkLen(rs []rune) int {
	n := 0
	for n < len(rs) && isJunk(rs[n]) {
		n++
	}
	return n
}

func hasRunePrefix(s, prefix []rune) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}

// consume matches the runes of text against the front of the reference
// stream, absorbing junk and spelling deviations into an original-spelling
// buffer. It returns the remaining stream, the number of runes of text it
// managed to match, and the absorbed characters.
func consume(stream, text []rune) (rest []rune, matched int, orig []rune) {
	rest = stream
	for _, c := range text {
		found := false
		for len(rest) > 0 {
			first := rest[0]
			rest = rest[1:]
			orig = append(orig, first)
			if first == c {
				found = true
				break
			}
		}
		if !found {
			tracing.P("remaining", string(rest)).
				Errorf("cannot align token %q with original text, consumed %q",
					string(text), string(orig))
			return rest, matched, orig
		}
		matched++
	}
	return rest, matched, orig
}

// extraInfoFor absorbs trailing junk and the inter-token space from the
// stream and builds the extra-info annotation for one aligned token. The
// token text is needed in case junk absorption turns a cleanly matched
// token into one with an original spelling.
func extraInfoFor(stream, text, orig []rune, haveOrig bool) (rest []rune, info string) {
	rest = stream
	if n := junkLen(rest); n > 0 {
		if !haveOrig {
			orig = append([]rune(nil), text...)
			haveOrig = true
		}
		orig = append(orig, rest[:n]...)
		rest = rest[n:]
	}
	if haveOrig {
		info = `OriginalSpelling="` + string(orig) + `"`
	}
	if len(rest) > 0 {
		if rest[0] == ' ' {
			rest = rest[1:]
		} else {
			if info != "" {
				info = ", " + info
			}
			info = "SpaceAfter=No" + info
		}
	}
	return rest, info
}

// CheckSpaces compares the final tokens with the original paragraph text
// and determines, for each token, whether it was followed by whitespace
// (SpaceAfter=No otherwise) and whether its text deviates from the original
// (OriginalSpelling). The returned slice is parallel to tokens. Alignment
// failures are traced, never returned; the affected tokens simply carry no
// annotation beyond what could be consumed.
func (t *Tokenizer) CheckSpaces(tokens []token.Token, original string) []string {
	extraInfo := make([]string, len(tokens))
	stream := []rune(t.normalizeForAlignment(original))
	for i, tok := range tokens {
		text := []rune(tok.Text)
		var orig []rune
		haveOrig := false
		if hasRunePrefix(stream, text) {
			stream = stream[len(text):]
		} else {
			stream, _, orig = consume(stream, text)
			haveOrig = true
		}
		stream, extraInfo[i] = extraInfoFor(stream, text, orig, haveOrig)
	}
	if len(stream) > 0 {
		tracing.P("remaining", string(stream)).
			Errorf("tokens do not cover the original text: %q", original)
	}
	return extraInfo
}

// MatchXML aligns the final tokens with the raw text fragments of an XML
// document and fills each fragment's Tokenized field with one
// text<TAB>class<TAB>extraInfo line per token, newline-delimited. Tokens
// are drawn from a single agenda across all fragments; a token that only
// partially matches before a fragment boundary is split, with the remainder
// pushed back to be resolved against the next fragment.
func (t *Tokenizer) MatchXML(tokens []token.Token, fragments []*Fragment) {
	agenda := make([]token.Token, len(tokens))
	for i, tok := range tokens {
		agenda[len(tokens)-1-i] = tok
	}
	for _, frag := range fragments {
		stream := []rune(t.normalizeForAlignment(frag.Text))
		var output []string
		for len(stream) > 0 {
			if len(agenda) == 0 {
				tracing.P("remaining", string(stream)).
					Errorf("ran out of tokens while aligning fragment %q", frag.Text)
				break
			}
			tok := agenda[len(agenda)-1]
			agenda = agenda[:len(agenda)-1]
			text := []rune(tok.Text)
			var orig []rune
			haveOrig := false
			switch {
			case hasRunePrefix(stream, text):
				stream = stream[len(text):]
			case hasRunePrefix(text, stream):
				// token straddles the fragment boundary
				agenda = append(agenda, token.Token{
					Text:       strings.TrimLeftFunc(string(text[len(stream):]), unicode.IsSpace),
					Class:      tok.Class,
					SpaceAfter: true,
				})
				text = stream
				stream = nil
			default:
				var matched int
				stream, matched, orig = consume(stream, text)
				if matched != len(text) {
					agenda = append(agenda, token.Token{
						Text:       strings.TrimLeftFunc(string(text[matched:]), unicode.IsSpace),
						Class:      tok.Class,
						SpaceAfter: true,
					})
					text = text[:matched]
				}
				haveOrig = true
			}
			var info string
			stream, info = extraInfoFor(stream, text, orig, haveOrig)
			class := tok.Class
			if class == "" {
				class = "regular"
			}
			output = append(output, string(text)+"\t"+class+"\t"+info)
		}
		if len(output) > 0 {
			frag.Tokenized = "\n" + strings.Join(output, "\n") + "\n"
		} else {
			frag.Tokenized = "\n"
		}
	}
	if len(agenda) > 0 {
		tracing.Tracer().Errorf("%d tokens left over after aligning all fragments", len(agenda))
	}
}
