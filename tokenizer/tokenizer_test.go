package tokenizer

import (
	"reflect"
	"testing"

	"github.com/AndreasBlombach/SoMaJo/internal/tracing"
	"github.com/AndreasBlombach/SoMaJo/token"
)

func tokenizeWith(t *testing.T, tok *Tokenizer, input string) []token.Token {
	t.Helper()
	tracing.SetTestingLog(t)
	return tok.TokenizeParagraph(input)
}

func texts(tokens []token.Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

func classOf(tokens []token.Token, text string) string {
	for _, tok := range tokens {
		if tok.Text == text {
			return tok.Class
		}
	}
	return ""
}

func checkTexts(t *testing.T, tokens []token.Token, want []string) {
	t.Helper()
	if got := texts(tokens); !reflect.DeepEqual(got, want) {
		t.Errorf("got tokens %v, want %v", got, want)
	}
}

func TestFallbackLanguage(t *testing.T) {
	tracing.SetTestingLog(t)
	if lang := New("fr", false).Language(); lang != "de" {
		t.Errorf("unsupported language should fall back to de, got %s", lang)
	}
	if lang := New("en", false).Language(); lang != "en" {
		t.Errorf("en should be supported, got %s", lang)
	}
}

func TestWhitespaceSplitting(t *testing.T) {
	tok := New("de", false)
	tokens := tokenizeWith(t, tok, "Das  ist\nein   Test")
	checkTexts(t, tokens, []string{"Das", "ist", "ein", "Test"})
	if !tokens[0].FirstInSentence {
		t.Error("first token should keep the FirstInSentence flag")
	}
	if !tokens[len(tokens)-1].LastInSentence {
		t.Error("last token should keep the LastInSentence flag")
	}
}

func TestGermanAbbreviations(t *testing.T) {
	tok := New("de", false)
	tokens := tokenizeWith(t, tok, "Das ist z.B. ein Test.")
	checkTexts(t, tokens, []string{"Das", "ist", "z.B.", "ein", "Test", "."})
	if c := classOf(tokens, "z.B."); c != "abbreviation" {
		t.Errorf("z.B. should be classed abbreviation, is %q", c)
	}
	if c := classOf(tokens, "."); c != "symbol" {
		t.Errorf(". should be classed symbol, is %q", c)
	}
	// multi-part abbreviations not listed as single tokens split at
	// their dots
	tokens = tokenizeWith(t, tok, "siehe a.a.O. dort")
	checkTexts(t, tokens, []string{"siehe", "a.", "a.", "O.", "dort"})
}

func TestURLs(t *testing.T) {
	tok := New("de", false)
	tokens := tokenizeWith(t, tok, "check http://example.com/foo(bar) now")
	checkTexts(t, tokens, []string{"check", "http://example.com/foo(bar)", "now"})
	if c := classOf(tokens, "http://example.com/foo(bar)"); c != "URL" {
		t.Errorf("URL with brackets should be classed URL, is %q", c)
	}
	tokens = tokenizeWith(t, tok, "Schau auf www.example.com nach.")
	checkTexts(t, tokens, []string{"Schau", "auf", "www.example.com", "nach", "."})
	tokens = tokenizeWith(t, tok, "die tagesschau.de-App")
	if c := classOf(tokens, "tagesschau.de-App"); c != "URL" {
		t.Errorf("tagesschau.de-App should be classed URL, is %q", c)
	}
}

func TestEmoticons(t *testing.T) {
	tok := New("de", false)
	tokens := tokenizeWith(t, tok, ":-)")
	checkTexts(t, tokens, []string{":-)"})
	if tokens[0].Class != "emoticon" {
		t.Errorf(":-) should be classed emoticon, is %q", tokens[0].Class)
	}
	tokens = tokenizeWith(t, tok, "Super :-) danke!")
	checkTexts(t, tokens, []string{"Super", ":-)", "danke", "!"})
	// erroneous space inside an emoticon is repaired before splitting
	tokens = tokenizeWith(t, tok, "gut : )")
	checkTexts(t, tokens, []string{"gut", ":)"})
}

func TestAmount(t *testing.T) {
	tok := New("de", false)
	tokens := tokenizeWith(t, tok, "Es kostet 1.000,- im Monat.")
	checkTexts(t, tokens, []string{"Es", "kostet", "1.000,-", "im", "Monat", "."})
	if c := classOf(tokens, "1.000,-"); c != "amount" {
		t.Errorf("1.000,- should be classed amount, is %q", c)
	}
}

func TestHashtagAndMention(t *testing.T) {
	tok := New("de", false)
	tokens := tokenizeWith(t, tok, "#nlp @someone")
	checkTexts(t, tokens, []string{"#nlp", "@someone"})
	if c := classOf(tokens, "#nlp"); c != "hashtag" {
		t.Errorf("#nlp should be classed hashtag, is %q", c)
	}
	if c := classOf(tokens, "@someone"); c != "mention" {
		t.Errorf("@someone should be classed mention, is %q", c)
	}
}

func TestGermanDates(t *testing.T) {
	tok := New("de", false)
	tokens := tokenizeWith(t, tok, "Am 13.07.2023 war es soweit.")
	checkTexts(t, tokens, []string{"Am", "13.", "07.", "2023", "war", "es", "soweit", "."})
	for _, text := range []string{"13.", "07.", "2023"} {
		if c := classOf(tokens, text); c != "date" {
			t.Errorf("%s should be classed date, is %q", text, c)
		}
	}
}

func TestEnglishDates(t *testing.T) {
	tok := New("en", false)
	tokens := tokenizeWith(t, tok, "on 07/13/2023 it happened")
	checkTexts(t, tokens, []string{"on", "07/13/2023", "it", "happened"})
	if c := classOf(tokens, "07/13/2023"); c != "date" {
		t.Errorf("07/13/2023 should be classed date, is %q", c)
	}
}

func TestEnglishContractions(t *testing.T) {
	tok := New("en", false)
	tokens := tokenizeWith(t, tok, "I don't wanna know")
	checkTexts(t, tokens, []string{"I", "do", "n't", "wan", "na", "know"})
	tokens = tokenizeWith(t, tok, "you'll see, we cannot stay")
	checkTexts(t, tokens, []string{"you", "'ll", "see", ",", "we", "can", "not", "stay"})
	tokens = tokenizeWith(t, tok, "dunno")
	checkTexts(t, tokens, []string{"du", "n", "no"})
}

func TestEnglishTime(t *testing.T) {
	tok := New("en", false)
	tokens := tokenizeWith(t, tok, "we meet at 5pm today")
	checkTexts(t, tokens, []string{"we", "meet", "at", "5", "pm", "today"})
	if classOf(tokens, "5") != "time" || classOf(tokens, "pm") != "time" {
		t.Error("5 pm should be classed time")
	}
}

func TestMeasurement(t *testing.T) {
	tok := New("de", false)
	tokens := tokenizeWith(t, tok, "noch 25km bis Hause")
	checkTexts(t, tokens, []string{"noch", "25", "km", "bis", "Hause"})
	if classOf(tokens, "25") != "measurement" || classOf(tokens, "km") != "measurement" {
		t.Error("25km should be classed measurement")
	}
}

func TestGermanOrdinal(t *testing.T) {
	tok := New("de", false)
	tokens := tokenizeWith(t, tok, "am 3. Mai")
	checkTexts(t, tokens, []string{"am", "3.", "Mai"})
	if c := classOf(tokens, "3."); c != "ordinal" {
		t.Errorf("3. should be classed ordinal, is %q", c)
	}
}

func TestEnglishOrdinal(t *testing.T) {
	tok := New("en", false)
	tokens := tokenizeWith(t, tok, "the 21st of May")
	checkTexts(t, tokens, []string{"the", "21st", "of", "May"})
	if c := classOf(tokens, "21st"); c != "ordinal" {
		t.Errorf("21st should be classed ordinal, is %q", c)
	}
}

func TestCamelCaseLexicon(t *testing.T) {
	tok := New("de", true)
	tokens := tokenizeWith(t, tok, "Mein iPhone und GitHub")
	checkTexts(t, tokens, []string{"Mein", "iPhone", "und", "GitHub"})
	tokens = tokenizeWith(t, tok, "Liebe StudentInnen!")
	checkTexts(t, tokens, []string{"Liebe", "StudentInnen", "!"})
}

func TestGenderStar(t *testing.T) {
	tok := New("de", false)
	tokens := tokenizeWith(t, tok, "Liebe Lehrer*innen und Schüler*innen!")
	checkTexts(t, tokens, []string{"Liebe", "Lehrer*innen", "und", "Schüler*innen", "!"})
}

func TestPlusAmpersandTokens(t *testing.T) {
	tok := New("de", false)
	tokens := tokenizeWith(t, tok, "Ich lerne C++ bei H&M")
	checkTexts(t, tokens, []string{"Ich", "lerne", "C++", "bei", "H&M"})
}

func TestEmoji(t *testing.T) {
	tok := New("de", false)
	tokens := tokenizeWith(t, tok, "Das 😀 ist gut")
	checkTexts(t, tokens, []string{"Das", "😀", "ist", "gut"})
	if c := classOf(tokens, "😀"); c != "emoticon" {
		t.Errorf("😀 should be classed emoticon, is %q", c)
	}
	// skin tone modifier stays in the cluster
	tokens = tokenizeWith(t, tok, "super👍🏼ja")
	checkTexts(t, tokens, []string{"super", "👍🏼", "ja"})
	// a pair of regional indicators is one flag
	tokens = tokenizeWith(t, tok, "aus 🇩🇪 hier")
	checkTexts(t, tokens, []string{"aus", "🇩🇪", "hier"})
	if c := classOf(tokens, "🇩🇪"); c != "emoticon" {
		t.Errorf("flag should be classed emoticon, is %q", c)
	}
}

func TestXMLTags(t *testing.T) {
	tok := New("de", false)
	tokens := tokenizeWith(t, tok, "Das ist <b>fett</b>.")
	checkTexts(t, tokens, []string{"Das", "ist", "<b>", "fett", "</b>", "."})
	if classOf(tokens, "<b>") != "XML_tag" || classOf(tokens, "</b>") != "XML_tag" {
		t.Error("tags should be classed XML_tag")
	}
	tokens = tokenizeWith(t, tok, "ein &amp; Zeichen")
	if c := classOf(tokens, "&amp;"); c != "XML_entity" {
		t.Errorf("&amp; should be classed XML_entity, is %q", c)
	}
}

func TestEmailAddresses(t *testing.T) {
	tok := New("de", false)
	tokens := tokenizeWith(t, tok, "Schreib an foo.bar@example.com bitte")
	checkTexts(t, tokens, []string{"Schreib", "an", "foo.bar@example.com", "bitte"})
	if c := classOf(tokens, "foo.bar@example.com"); c != "email_address" {
		t.Errorf("address should be classed email_address, is %q", c)
	}
	// obfuscated addresses keep their internal spaces
	tokens = tokenizeWith(t, tok, "Schreib an foo [at] example [dot] com bitte")
	checkTexts(t, tokens, []string{"Schreib", "an", "foo [at] example [dot] com", "bitte"})
}

func TestActionWord(t *testing.T) {
	tok := New("de", false)
	tokens := tokenizeWith(t, tok, "*lach*")
	checkTexts(t, tokens, []string{"*", "lach", "*"})
	for _, tok := range tokens {
		if tok.Class != "action_word" {
			t.Errorf("%s should be classed action_word, is %q", tok.Text, tok.Class)
		}
	}
}

func TestPunctuation(t *testing.T) {
	tok := New("de", false)
	tokens := tokenizeWith(t, tok, "Echt?!?")
	checkTexts(t, tokens, []string{"Echt", "?!?"})
	tokens = tokenizeWith(t, tok, "Na ja...")
	checkTexts(t, tokens, []string{"Na", "ja", "..."})
	if c := classOf(tokens, "..."); c != "symbol" {
		t.Errorf("... should be classed symbol, is %q", c)
	}
	// missing space after sentence-final dot
	tokens = tokenizeWith(t, tok, "gut.Das stimmt")
	checkTexts(t, tokens, []string{"gut", ".", "Das", "stimmt"})
}

func TestNumbers(t *testing.T) {
	tok := New("de", false)
	tokens := tokenizeWith(t, tok, "Es sind 1.999,95 Euro")
	checkTexts(t, tokens, []string{"Es", "sind", "1.999,95", "Euro"})
	if c := classOf(tokens, "1.999,95"); c != "number" {
		t.Errorf("1.999,95 should be classed number, is %q", c)
	}
	tokens = tokenizeWith(t, tok, "unter 192.168.0.1 erreichbar")
	if c := classOf(tokens, "192.168.0.1"); c != "number" {
		t.Errorf("192.168.0.1 should be classed number, is %q", c)
	}
}

func TestTimeOfDay(t *testing.T) {
	tok := New("de", false)
	tokens := tokenizeWith(t, tok, "um 18:30 Uhr")
	checkTexts(t, tokens, []string{"um", "18:30", "Uhr"})
	if c := classOf(tokens, "18:30"); c != "time" {
		t.Errorf("18:30 should be classed time, is %q", c)
	}
}

func TestNormalization(t *testing.T) {
	tok := New("de", false)
	// combining diaeresis composes with the base letter
	tokens := tokenizeWith(t, tok, "schön")
	checkTexts(t, tokens, []string{"schön"})
	// normalization is idempotent
	once := tok.NormalizeText("schön  hier")
	if twice := tok.NormalizeText(once); twice != once {
		t.Errorf("normalization should be idempotent: %q vs %q", once, twice)
	}
}

func TestNormalizationControlCharacters(t *testing.T) {
	tok := New("de", false)
	// only C0 and C1 controls are removed; everything above U+009F stays
	if got := tok.NormalizeText("Füße"); got != "Füße" {
		t.Errorf("non-ASCII letters must survive normalization, got %q", got)
	}
	if got := tok.NormalizeText("Fü\u0085ße\a"); got != "Füße" {
		t.Errorf("control characters should be removed, got %q", got)
	}
	in := "русский 中文 ₿"
	if got := tok.NormalizeText(in); got != in {
		t.Errorf("BMP text must survive normalization, got %q", got)
	}
}

func TestDeterminism(t *testing.T) {
	tok := New("de", true)
	input := "Am 13.07.2023 kostet es z.B. 1.000,- #nlp @someone :-) http://example.com/a(b) 😀"
	first := texts(tokenizeWith(t, tok, input))
	for i := 0; i < 3; i++ {
		if again := texts(tokenizeWith(t, tok, input)); !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, again, first)
		}
	}
}

func TestLockedTokensSurvive(t *testing.T) {
	tok := New("de", false)
	seq := token.NewSequence(token.Token{
		Text: "vorher", SpaceAfter: true,
	}, token.Token{
		Text: "arbitrary?!text", Locked: true, Class: "regular", SpaceAfter: true,
	})
	tok.Tokenize(seq)
	found := false
	for _, tk := range seq.Tokens() {
		if tk.Text == "arbitrary?!text" {
			found = true
		}
	}
	if !found {
		t.Errorf("locked token must not be split, got %v", seq.Texts())
	}
}
