package tokenizer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/AndreasBlombach/SoMaJo/internal/tracing"
	"github.com/AndreasBlombach/SoMaJo/token"
	"github.com/dlclark/regexp2"
)

func TestFindMatchesRuneOffsets(t *testing.T) {
	tracing.SetTestingLog(t)
	re := regexp2.MustCompile(`ö+`, 0)
	matches := findMatches(re, "süß öö x")
	if len(matches) != 1 {
		t.Fatalf("expected one match, got %d", len(matches))
	}
	// offsets are rune-based, multi-byte characters before the match do
	// not shift them
	if matches[0].Index != 4 || matches[0].Length != 2 {
		t.Errorf("match should span runes [4,6), spans [%d,%d)",
			matches[0].Index, matches[0].Index+matches[0].Length)
	}
}

func TestNamedGroupSpans(t *testing.T) {
	tracing.SetTestingLog(t)
	// named groups in reverse lexical order; spans must come out sorted
	// by position, and the numbered group must not contribute a span
	re := regexp2.MustCompile(`(?<z_first>\d+)(-)(?<a_second>\p{L}+)`, 0)
	m, err := re.FindStringMatch("12-ab")
	if err != nil || m == nil {
		t.Fatal("pattern should match")
	}
	spans := namedGroupSpans(m)
	want := []Boundary{{Start: 0, End: 2}, {Start: 3, End: 5}}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("got spans %v, want %v", spans, want)
	}
}

func TestSplitMatchesWithReplacement(t *testing.T) {
	tracing.SetTestingLog(t)
	tok := New("de", false)
	seq, node := singleNodeSeq("gut : ) ja")
	splitMatches(seq, node, tok.rules.spaceEmoticon, "emoticon", false,
		func(m *regexp2.Match) string {
			return strings.ReplaceAll(m.String(), " ", "")
		})
	if got := seq.Texts(); !reflect.DeepEqual(got, []string{"gut", ":)", "ja"}) {
		t.Fatalf("unexpected fragments: %v", got)
	}
	if spelled := seq.Tokens()[1].OriginalSpelling; spelled != ": )" {
		t.Errorf("repaired emoticon should record its original spelling, got %q", spelled)
	}
}

func TestSplitAllMatchesSkipsLocked(t *testing.T) {
	tracing.SetTestingLog(t)
	tok := New("de", false)
	seq := token.NewSequence(
		token.Token{Text: ":-)", Locked: true, Class: "emoticon", SpaceAfter: true},
		token.Token{Text: ":-(", SpaceAfter: true},
	)
	tok.splitAllMatches(seq, tok.rules.emoticon, "emoticon", true)
	tokens := seq.Tokens()
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %v", seq.Texts())
	}
	if !tokens[1].Locked || tokens[1].Class != "emoticon" {
		t.Error("unlocked emoticon should now be locked")
	}
}

func TestSplitAllSet(t *testing.T) {
	tracing.SetTestingLog(t)
	tok := New("de", false)
	seq := token.NewSequence(
		token.Token{Text: "bei", SpaceAfter: true},
		token.Token{Text: "h&m", SpaceAfter: true},
		token.Token{Text: "x&y", SpaceAfter: true},
	)
	tok.splitAllSet(seq, tok.rules.simplePlusAmpersandCandidates,
		tok.rules.simplePlusAmpersand, "regular", true)
	tokens := seq.Tokens()
	if !tokens[1].Locked {
		t.Error("lexicon member should be locked, case-insensitively")
	}
	if tokens[2].Locked {
		t.Error("non-member candidate must stay unlocked")
	}
}

func TestSplitAllEmoji(t *testing.T) {
	tracing.SetTestingLog(t)
	tok := New("de", false)
	seq := token.NewSequence(token.Token{Text: "na👍🏼gut✊", SpaceAfter: true})
	tok.splitAllEmoji(seq, "emoticon")
	if got := seq.Texts(); !reflect.DeepEqual(got, []string{"na", "👍🏼", "gut", "✊"}) {
		t.Fatalf("unexpected fragments: %v", got)
	}
	// keycap sequences carry the emoji variation selector
	seq = token.NewSequence(token.Token{Text: "Platz 1️⃣ hier", SpaceAfter: true})
	tok.splitAllEmoji(seq, "emoticon")
	if got := seq.Texts(); !reflect.DeepEqual(got, []string{"Platz", "1️⃣", "hier"}) {
		t.Fatalf("keycap cluster should split off, got %v", got)
	}
}

func TestSplitAbbreviations(t *testing.T) {
	tracing.SetTestingLog(t)
	tok := New("de", false)
	seq := token.NewSequence(token.Token{Text: "z.B.", SpaceAfter: true})
	tok.splitAbbreviations(seq, true)
	if got := seq.Texts(); !reflect.DeepEqual(got, []string{"z.B."}) {
		t.Fatalf("single-token abbreviation must stay whole, got %v", got)
	}

	seq = token.NewSequence(token.Token{Text: "a.a.O.", SpaceAfter: true})
	tok.splitAbbreviations(seq, true)
	if got := seq.Texts(); !reflect.DeepEqual(got, []string{"a.", "a.", "O."}) {
		t.Fatalf("multi-part abbreviation should explode at its dots, got %v", got)
	}

	// without multi-part splitting the whole match is one token
	seq = token.NewSequence(token.Token{Text: "a.a.O.", SpaceAfter: true})
	tok.splitAbbreviations(seq, false)
	if got := seq.Texts(); !reflect.DeepEqual(got, []string{"a.a.O."}) {
		t.Fatalf("multi-part splitting disabled, got %v", got)
	}
}
