package somajo

import (
	"bytes"
	"errors"
	"io"

	"github.com/AndreasBlombach/SoMaJo/token"
	"github.com/AndreasBlombach/SoMaJo/tokenizer"
)

var (
	// ErrUnknownSeparator is returned for a paragraph separator that is
	// neither SingleNewline nor EmptyLine.
	ErrUnknownSeparator = errors.New("somajo: unknown paragraph separator")
	// ErrNoRootElement is returned when an XML document contains no
	// elements at all.
	ErrNoRootElement = errors.New("somajo: no root element")
)

// Options configures a SoMaJo instance. All fields are fixed at
// construction and apply to every subsequent call.
type Options struct {
	// Language selects the rule set, "de" or "en". Unsupported values
	// fall back to "de".
	Language string
	// SplitCamelCase splits tokens written in camelCase, excluding
	// established names and terms.
	SplitCamelCase bool
	// TokenClasses fills in the Class field of the emitted records.
	TokenClasses bool
	// ExtraInfo annotates records with SpaceAfter=No and
	// OriginalSpelling="..." where they apply.
	ExtraInfo bool
}

// Record is one emitted token. Class and ExtraInfo are only filled in when
// the corresponding options are set.
type Record struct {
	Text      string
	Class     string
	ExtraInfo string
}

// SoMaJo tokenizes informal written text according to the guidelines of
// the EmpiriST 2015 shared task. A SoMaJo instance holds the compiled rule
// catalogue for one configuration; concurrent calls on one instance are
// safe as long as each call owns its input exclusively.
type SoMaJo struct {
	opts Options
	tok  *tokenizer.Tokenizer
}

// New creates a SoMaJo instance for the given options.
func New(opts Options) *SoMaJo {
	return &SoMaJo{
		opts: opts,
		tok:  tokenizer.New(opts.Language, opts.SplitCamelCase),
	}
}

// Language returns the effective rule set language.
func (s *SoMaJo) Language() string {
	return s.tok.Language()
}

func (s *SoMaJo) records(tokens []token.Token, extraInfo []string) []Record {
	out := make([]Record, len(tokens))
	for i, tok := range tokens {
		out[i].Text = tok.Text
		if s.opts.TokenClasses {
			switch {
			case tok.Class != "":
				out[i].Class = tok.Class
			case tok.Markup:
				out[i].Class = "XML_tag"
			default:
				out[i].Class = "regular"
			}
		}
		if extraInfo != nil {
			out[i].ExtraInfo = extraInfo[i]
		}
	}
	return out
}

// TokenizeText tokenizes a single paragraph of text, which may contain
// line breaks.
func (s *SoMaJo) TokenizeText(paragraph string) []Record {
	tokens := s.tok.TokenizeParagraph(paragraph)
	var extraInfo []string
	if s.opts.ExtraInfo {
		extraInfo = s.tok.CheckSpaces(tokens, paragraph)
	}
	return s.records(tokens, extraInfo)
}

// TokenizeFile reads plain text from r, splits it into paragraphs
// according to separator and tokenizes each paragraph. It returns one
// record slice per paragraph.
func (s *SoMaJo) TokenizeFile(r io.Reader, separator string) ([][]Record, error) {
	paragraphs, err := Paragraphs(r, separator)
	if err != nil {
		return nil, err
	}
	out := make([][]Record, len(paragraphs))
	for i, paragraph := range paragraphs {
		out[i] = s.TokenizeText(paragraph)
	}
	return out, nil
}

// TokenizeXML tokenizes the character data of an XML document. Tags are
// retained as markup records unless stripTags is set.
func (s *SoMaJo) TokenizeXML(r io.Reader, stripTags bool) ([]Record, error) {
	seq, err := ReadXML(r)
	if err != nil {
		return nil, err
	}
	s.tok.Tokenize(seq)
	tokens := seq.Tokens()
	if stripTags {
		kept := tokens[:0]
		for _, tok := range tokens {
			if !tok.Markup {
				kept = append(kept, tok)
			}
		}
		tokens = kept
	}
	return s.records(tokens, nil), nil
}

// AnnotateXML tokenizes an XML document and returns the document itself
// with every text node replaced by its tokenization, one
// text<TAB>class<TAB>extraInfo line per token.
func (s *SoMaJo) AnnotateXML(data []byte) ([]byte, error) {
	seq, err := ReadXML(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	s.tok.Tokenize(seq)
	var tokens []token.Token
	for _, tok := range seq.Tokens() {
		if !tok.Markup {
			tokens = append(tokens, tok)
		}
	}
	root, err := ParseXML(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	s.tok.MatchXML(tokens, root.Fragments())
	var buf bytes.Buffer
	if err := root.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
