package tokenizer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/AndreasBlombach/SoMaJo/internal/tracing"
	"github.com/AndreasBlombach/SoMaJo/token"
)

func TestCheckSpaces(t *testing.T) {
	tok := New("de", false)
	input := "Hallo Welt!"
	tokens := tokenizeWith(t, tok, input)
	checkTexts(t, tokens, []string{"Hallo", "Welt", "!"})
	extra := tok.CheckSpaces(tokens, input)
	want := []string{"", "SpaceAfter=No", ""}
	if !reflect.DeepEqual(extra, want) {
		t.Errorf("got extra info %v, want %v", extra, want)
	}
}

func TestCheckSpacesOriginalSpelling(t *testing.T) {
	tok := New("de", false)
	// soft hyphen inside the word is stripped from the token text but
	// still present in the original
	input := "Hal­lo Welt"
	tokens := tokenizeWith(t, tok, input)
	checkTexts(t, tokens, []string{"Hallo", "Welt"})
	extra := tok.CheckSpaces(tokens, input)
	if extra[0] != "OriginalSpelling=\"Hal­lo\"" {
		t.Errorf("token with stripped junk should carry its original spelling, got %q", extra[0])
	}
	if extra[1] != "" {
		t.Errorf("Welt needs no annotation, got %q", extra[1])
	}
}

func TestCheckSpacesCombinedAnnotation(t *testing.T) {
	tok := New("de", false)
	input := "Hal­lo!"
	tokens := tokenizeWith(t, tok, input)
	checkTexts(t, tokens, []string{"Hallo", "!"})
	extra := tok.CheckSpaces(tokens, input)
	// SpaceAfter=No comes first when both annotations apply
	if extra[0] != "SpaceAfter=No, OriginalSpelling=\"Hal­lo\"" {
		t.Errorf("unexpected combined annotation %q", extra[0])
	}
}

func TestMatchXML(t *testing.T) {
	tracing.SetTestingLog(t)
	tok := New("de", false)
	tokens := []token.Token{
		{Text: "Hallo", SpaceAfter: true},
		{Text: "Welt", SpaceAfter: true},
		{Text: "!", Class: "symbol", SpaceAfter: true},
	}
	fragments := []*Fragment{{Text: "Hallo "}, {Text: "Welt!"}}
	tok.MatchXML(tokens, fragments)
	if fragments[0].Tokenized != "\nHallo\tregular\t\n" {
		t.Errorf("unexpected first fragment: %q", fragments[0].Tokenized)
	}
	if fragments[1].Tokenized != "\nWelt\tregular\tSpaceAfter=No\n!\tsymbol\t\n" {
		t.Errorf("unexpected second fragment: %q", fragments[1].Tokenized)
	}
}

func TestMatchXMLPushback(t *testing.T) {
	tracing.SetTestingLog(t)
	tok := New("de", false)
	// one logical token straddles the fragment boundary; the unmatched
	// remainder is resolved against the next fragment
	tokens := []token.Token{{Text: "Hallo", SpaceAfter: true}}
	fragments := []*Fragment{{Text: "Hal"}, {Text: "lo"}}
	tok.MatchXML(tokens, fragments)
	if fragments[0].Tokenized != "\nHal\tregular\t\n" {
		t.Errorf("unexpected first fragment: %q", fragments[0].Tokenized)
	}
	if fragments[1].Tokenized != "\nlo\tregular\t\n" {
		t.Errorf("unexpected second fragment: %q", fragments[1].Tokenized)
	}
}

func TestMatchXMLEmptyFragment(t *testing.T) {
	tracing.SetTestingLog(t)
	tok := New("de", false)
	fragments := []*Fragment{{Text: "  "}}
	tok.MatchXML(nil, fragments)
	if fragments[0].Tokenized != "\n" {
		t.Errorf("empty fragment should tokenize to a bare newline, got %q",
			fragments[0].Tokenized)
	}
}

func TestCheckSpacesRoundTrip(t *testing.T) {
	tracing.SetTestingLog(t)
	tok := New("de", false)
	// reinterleaving the token texts with the recorded spacing and original
	// spellings must reproduce the normalized input, junk included
	input := "\u00dcber\u00adraschung gibt's  hier\u200bdr\u00fcben, F\u00fc\u00dfe\u00adm\u00fcde!"
	tokens := tokenizeWith(t, tok, input)
	extra := tok.CheckSpaces(tokens, input)
	sawSpelling := false
	var sb strings.Builder
	for i, tk := range tokens {
		piece := tk.Text
		if j := strings.Index(extra[i], "OriginalSpelling=\""); j >= 0 {
			piece = strings.TrimSuffix(extra[i][j+len("OriginalSpelling=\""):], "\"")
			sawSpelling = true
		}
		sb.WriteString(piece)
		if i < len(tokens)-1 && !strings.HasPrefix(extra[i], "SpaceAfter=No") {
			sb.WriteByte(' ')
		}
	}
	if !sawSpelling {
		t.Fatal("expected at least one original spelling annotation")
	}
	if want := tok.normalizeForAlignment(input); sb.String() != want {
		t.Errorf("reinterleaved tokens give %q, want %q", sb.String(), want)
	}
}
