package somajo

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/AndreasBlombach/SoMaJo/token"
	"github.com/AndreasBlombach/SoMaJo/tokenizer"
)

// escapeText escapes the characters that may not appear literally in
// character data.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	return strings.ReplaceAll(s, ">", "&gt;")
}

// escapeAttr escapes the characters that may not appear literally inside a
// double-quoted attribute value.
func escapeAttr(s string) string {
	return strings.ReplaceAll(escapeText(s), `"`, "&quot;")
}

func startTag(name string, attrs []xml.Attr) string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(name)
	for _, attr := range attrs {
		sb.WriteByte(' ')
		sb.WriteString(attr.Name.Local)
		sb.WriteString(`="`)
		sb.WriteString(escapeAttr(attr.Value))
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	return sb.String()
}

// ReadXML parses XML from r into a token sequence. Character data becomes
// ordinary tokens, start and end tags become markup tokens that the
// tokenization pipeline passes through verbatim.
func ReadXML(r io.Reader) (*token.Sequence, error) {
	seq := &token.Sequence{}
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return seq, nil
		}
		if err != nil {
			return nil, err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			seq.Append(token.NewMarkupToken(startTag(el.Name.Local, el.Attr)))
		case xml.EndElement:
			seq.Append(token.NewMarkupToken("</" + el.Name.Local + ">"))
		case xml.CharData:
			seq.Append(token.NewToken(string(el)))
		}
	}
}

// XMLElement is one element of a parsed XML document. Text holds the
// element's direct character data, Tail the character data between its end
// tag and the next sibling. Both are alignment fragments: after MatchXML
// has distributed the tokens over them, WriteTo serializes the tree with
// the tokenized text in place of the original.
type XMLElement struct {
	Name     string
	Attr     []xml.Attr
	Children []*XMLElement
	Text     *tokenizer.Fragment
	Tail     *tokenizer.Fragment
}

// ParseXML parses XML from r into an element tree.
func ParseXML(r io.Reader) (*XMLElement, error) {
	dec := xml.NewDecoder(r)
	var root *XMLElement
	var stack []*XMLElement
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			node := &XMLElement{
				Name: el.Name.Local,
				Attr: el.Attr,
				Text: &tokenizer.Fragment{},
				Tail: &tokenizer.Fragment{},
			}
			if len(stack) == 0 {
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			current := stack[len(stack)-1]
			if len(current.Children) == 0 {
				current.Text.Text += string(el)
			} else {
				current.Children[len(current.Children)-1].Tail.Text += string(el)
			}
		}
	}
	if root == nil {
		return nil, ErrNoRootElement
	}
	return root, nil
}

// Fragments returns the document's text fragments in document order: for
// each element its direct text, then the fragments of its children, then
// its tail.
func (e *XMLElement) Fragments() []*tokenizer.Fragment {
	fragments := []*tokenizer.Fragment{e.Text}
	for _, child := range e.Children {
		fragments = append(fragments, child.Fragments()...)
	}
	return append(fragments, e.Tail)
}

// WriteTo serializes the tree to w, substituting each fragment's tokenized
// text for its original text.
func (e *XMLElement) WriteTo(w io.Writer) error {
	if _, err := io.WriteString(w, startTag(e.Name, e.Attr)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, escapeText(e.Text.Tokenized)); err != nil {
		return err
	}
	for _, child := range e.Children {
		if err := child.WriteTo(w); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</"+e.Name+">"); err != nil {
		return err
	}
	_, err := io.WriteString(w, escapeText(e.Tail.Tokenized))
	return err
}
