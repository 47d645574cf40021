package tokenizer

import (
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/emirpasic/gods/sets/hashset"
)

// Character classes for control characters and invisible formatting
// characters: soft hyphen (00AD), Arabic letter mark (061C), zero-width
// space/non-joiner/joiner (200B-200D), directional marks and isolates
// (200E-200F, 202A-202E, 2066-2069), word joiner (2060), zero-width
// no-break space (FEFF).
const (
	controlChars = "\u0000-\u001F\u007F-\u009F"
	formatChars  = "\u00AD\u061C\u200B-\u200F\u202A-\u202E\u2060\u2066-\u2069\uFEFF"
)

// rules is the complete, order-independent catalogue of compiled patterns
// and lexicon sets for one language configuration. The pipeline in
// tokenizer.go decides which rules run, and in which order.
type rules struct {
	// normalization
	spaces            *regexp2.Regexp
	controls          *regexp2.Regexp
	strandedVariation *regexp2.Regexp
	otherNasties      *regexp2.Regexp
	junkBetweenSpaces *regexp2.Regexp

	// tags, e-mail addresses, URLs
	xmlDeclaration        *regexp2.Regexp
	tag                   *regexp2.Regexp
	email                 *regexp2.Regexp
	simpleURLWithBrackets *regexp2.Regexp
	simpleURL             *regexp2.Regexp
	doi                   *regexp2.Regexp
	doiWithSpace          *regexp2.Regexp
	urlWithoutProtocol    *regexp2.Regexp
	redditLinks           *regexp2.Regexp

	// XML entities
	entity *regexp2.Regexp

	// emoticons and emoji
	emoticon      *regexp2.Regexp
	spaceEmoticon *regexp2.Regexp
	heartEmoticon *regexp2.Regexp
	unicodeFlags  *regexp2.Regexp
	textualEmoji  *regexp2.Regexp

	// tokens with + or &
	simplePlusAmpersand           *hashset.Set
	simplePlusAmpersandCandidates *regexp2.Regexp
	tokenWithPlusAmpersand        *regexp2.Regexp

	// camelCase
	simpleCamelCaseTokens     *hashset.Set
	simpleCamelCaseCandidates *regexp2.Regexp
	camelCaseToken            *regexp2.Regexp
	inAndInnen                *regexp2.Regexp

	// gender star
	genderStar *regexp2.Regexp

	// abbreviations
	singleLetterEllipsis     *regexp2.Regexp
	andCetera                *regexp2.Regexp
	strAbbreviations         *regexp2.Regexp
	nrAbbreviations          *regexp2.Regexp
	singleTokenAbbreviation  *regexp2.Regexp
	singleLetterAbbreviation *regexp2.Regexp
	multipartAbbreviation    *regexp2.Regexp
	abbreviation             *regexp2.Regexp

	// mentions, hashtags, action words, underline
	mention    *regexp2.Regexp
	hashtag    *regexp2.Regexp
	actionWord *regexp2.Regexp
	underline  *regexp2.Regexp

	// dates, times, numbers
	threePartDateYearFirst *regexp2.Regexp
	threePartDateDMY       *regexp2.Regexp
	threePartDateMDY       *regexp2.Regexp
	twoPartDate            *regexp2.Regexp
	timeOfDay              *regexp2.Regexp
	enTime                 *regexp2.Regexp
	enUSPhoneNumber        *regexp2.Regexp
	enNumericalIdentifiers *regexp2.Regexp
	enUSZipCode            *regexp2.Regexp
	ordinal                *regexp2.Regexp
	englishOrdinal         *regexp2.Regexp
	englishDecades         *regexp2.Regexp
	fraction               *regexp2.Regexp
	amount                 *regexp2.Regexp
	semester               *regexp2.Regexp
	measurement            *regexp2.Regexp
	numberCompound         *regexp2.Regexp
	number                 *regexp2.Regexp
	ipv4                   *regexp2.Regexp
	sectionNumber          *regexp2.Regexp

	// punctuation
	questExclam             *regexp2.Regexp
	arrow                   *regexp2.Regexp
	paren                   *regexp2.Regexp
	deSlash                 *regexp2.Regexp
	enDms                   *regexp2.Regexp
	enLlreve                *regexp2.Regexp
	enNot                   *regexp2.Regexp
	enTwopartContractions   []*regexp2.Regexp
	enThreepartContractions []*regexp2.Regexp
	enSlashWords            *regexp2.Regexp
	enNonbreakingPrefixes   *regexp2.Regexp
	enNonbreakingSuffixes   *regexp2.Regexp
	enNonbreakingWords      *regexp2.Regexp
	enHyphen                *regexp2.Regexp
	letterApostropheWord    *regexp2.Regexp
	otherPunctuation        *regexp2.Regexp
	enQuotationMarks        *regexp2.Regexp
	enOtherPunctuation      *regexp2.Regexp
	ellipsis                *regexp2.Regexp
	dotWithoutSpace         *regexp2.Regexp
	dot                     *regexp2.Regexp
}

func compile(pattern string) *regexp2.Regexp {
	return regexp2.MustCompile(pattern, regexp2.None)
}

func compileI(pattern string) *regexp2.Regexp {
	return regexp2.MustCompile(pattern, regexp2.IgnoreCase)
}

// escapeAll escapes every item and joins them into one alternation.
// Items are expected to be sorted longest first.
func escapeAll(items []string) string {
	escaped := make([]string, len(items))
	for i, item := range items {
		escaped[i] = regexp2.Escape(item)
	}
	return strings.Join(escaped, "|")
}

func newRules(language string) *rules {
	r := &rules{}

	r.spaces = compile(`\s+`)
	r.controls = compile("[" + controlChars + "]")
	r.strandedVariation = compile(" \uFE0F")
	r.otherNasties = compile("[" + formatChars + "]")
	r.junkBetweenSpaces = compile(`(?:^|\s+)[\s` + controlChars + formatChars + `]+(?:\s+|$)`)

	r.xmlDeclaration = compileI(`<\?xml(?:\s+[_:A-Z][-.:\w]*\s*=\s*(?:"[^"]*"|'[^']*'))*\s*\?>`)
	// taken from Regular Expressions Cookbook
	r.tag = compileI(`<(?:([_:A-Z][-.:\w]*)(?:\s+[_:A-Z][-.:\w]*\s*=\s*(?:"[^"]*"|'[^']*'))*\s*/?|/([_:A-Z][-.:\w]*)\s*)>`)
	// obfuscated variants like "foo [at] example [dot] com" are e-mail
	// addresses, too
	r.email = compile(`\b[\w.%+-]+(?:@| \[at\] )[\w.-]+(?:\.| \[?dot\]? )\p{L}{2,}\b`)
	r.simpleURLWithBrackets = compileI(`\b(?:(?:https?|ftp|svn)://|(?:https?://)?www\.)\S+?\(\S*?\)\S*(?=$|['. "!?,;])`)
	r.simpleURL = compileI(`\b(?:(?:https?|ftp|svn)://|(?:https?://)?www\.)\S+[^'. "!?,;:)]`)
	r.doi = compileI(`\bdoi:10\.\d+/\S+`)
	r.doiWithSpace = compileI(`(?<=\bdoi: )10\.\d+/\S+`)
	// we also allow things like tagesschau.de-App
	r.urlWithoutProtocol = compileI(`\b[\w./-]+\.(?:de|com|org|net|edu|info|gov|jpg|png|gif|log|txt|xlsx?|docx?|pptx?|pdf)(?:-\w+)?\b`)
	r.redditLinks = compileI(`(?<!\w)/?[rlu](?:/\w+)+/?(?!\w)`)

	r.entity = compileI(`&(?:quot|amp|apos|lt|gt|#\d+|#x[0-9a-f]+);`)

	emoticons := readList("emoticons.txt")
	r.emoticon = compile(
		// a variety of eyes, an optional nose or tear, and a variety of mouths
		`(?:(?:[:;]|(?<!\d)8)[-'oO]?(?:\)+|\(+|[*]|([DPp])\1*(?!\w)))` +
			`|(?:\b[Xx]D+\b)` +
			`|(?:\b(?:D'?:|oO)\b)` +
			`|` + escapeAll(emoticons))
	r.spaceEmoticon = compile(`([:;])[ ]+([()])`)
	// ^3 is an emoticon, unless it is preceded by a number (with optional
	// whitespace between number and ^3)
	r.heartEmoticon = compile(`(?:^|^\D|(?<=\D[ ])|(?<=.[^\d ]))\^3`)
	r.unicodeFlags = compile("[\U0001F1E6-\U0001F1FF]{2}️?")
	r.textualEmoji = compile(`\bemojiQ\p{L}{3,}\b`)

	plusAmpersand := readList("tokens_with_plus_or_ampersand.txt")
	simpleShape := compile(`^\w+[&+]\w+$`)
	var simple, compound []string
	for _, item := range plusAmpersand {
		if ok, _ := simpleShape.MatchString(item); ok {
			simple = append(simple, item)
		} else {
			compound = append(compound, item)
		}
	}
	r.simplePlusAmpersand = newSet(simple, true)
	r.simplePlusAmpersandCandidates = compile(`\b\w+[&+]\w+\b`)
	r.tokenWithPlusAmpersand = compileI(`(?<!\w)(?:` + escapeAll(compound) + `)(?!\w)`)

	camelCaseTokens := readList("camel_case_tokens.txt")
	alnumShape := compile(`^\w+$`)
	var ccSimple, ccComplex []string
	for _, item := range camelCaseTokens {
		if ok, _ := alnumShape.MatchString(item); ok {
			ccSimple = append(ccSimple, item)
		} else {
			ccComplex = append(ccComplex, item)
		}
	}
	r.simpleCamelCaseTokens = newSet(ccSimple, false)
	r.simpleCamelCaseCandidates = compile(`\b\w*\p{Ll}\p{Lu}\w*\b`)
	r.camelCaseToken = compile(`\b(?:` + escapeAll(ccComplex) + `|Mac\p{Lu}\p{Ll}*)\b`)
	r.inAndInnen = compile(`\b\p{L}+\p{Ll}In(?:nen)?\p{Ll}*\b`)

	r.genderStar = compileI(`\b\p{L}+\*in(?:nen)?\p{Ll}*\b`)

	r.singleLetterEllipsis = compile(`(?<![\w.])(?<a_letter>\p{L})(?<b_ellipsis>\.{3})(?!\.)`)
	r.andCetera = compile(`(?<![\w.&])&c\.(?!\p{L}{1,3}\.)`)
	r.strAbbreviations = compileI(`(?<![\w.])([\p{L}-]+-Str\.)(?!\p{L})`)
	r.nrAbbreviations = compileI(`(?<![\w.])(\w+\.-?Nr\.)(?!\p{L}{1,3}\.)`)
	singleTokenAbbreviations := readList("single_token_abbreviations_" + language + ".txt")
	r.singleTokenAbbreviation = compileI(`(?<![\w.])(?:` + escapeAll(singleTokenAbbreviations) + `)(?!\p{L}{1,3}\.)`)
	r.singleLetterAbbreviation = compile(`(?<![\w.])\p{L}\.(?!\p{L}{1,3}\.)`)
	r.multipartAbbreviation = compile(`^(?:\p{L}+\.){2,}$`)
	// only abbreviations that are not matched by (?:\p{L}\.)+
	abbreviations := readList("abbreviations_" + language + ".txt")
	r.abbreviation = compileI(`(?<![\p{L}.])(?:(?:\p{L}\.){2,}|` + escapeAll(abbreviations) + `)+(?!\p{L}{1,3}\.)`)

	r.mention = compile(`[@]\w+(?!\w)`)
	r.hashtag = compile(`(?<!\w)[#]\w+(?!\w)`)
	r.actionWord = compile(`(?<!\w)(?<a_open>[*+])(?<b_middle>[^\s*]+)(?<c_close>[*])(?!\w)`)
	// a pair of underscores can be used to "underline" some text
	r.underline = compile(`(?<!\w)(?<a_open>_)(?<b_text>\w[^_]+\w)(?<c_close>_)(?!\w)`)

	// the separator group is the only unnamed group, so it is \1
	r.threePartDateYearFirst = compile(`(?<![\d.])(?<a_year>\d{4})(?<b_month_or_day>([/-])\d{1,2})(?<c_day_or_month>\1\d{1,2})(?![\d.])`)
	r.threePartDateDMY = compile(`(?<![\d.])(?<a_day>(?:0?[1-9]|1[0-9]|2[0-9]|3[01])([./-]))(?<b_month>(?:0?[1-9]|1[0-2])\1)(?<c_year>(?:\d\d){1,2})(?![\d.])`)
	r.threePartDateMDY = compile(`(?<![\d.])(?<a_month>(?:0?[1-9]|1[0-2])([./-]))(?<b_day>(?:0?[1-9]|1[0-9]|2[0-9]|3[01])\1)(?<c_year>(?:\d\d){1,2})(?![\d.])`)
	r.twoPartDate = compile(`(?<![\d.])(?<a_day_or_month>\d{1,2}([./-]))(?<b_day_or_month>\d{1,2}\1)(?![\d.])`)
	r.timeOfDay = compile(`(?<!\w)\d{1,2}(?:(?::\d{2}){1,2}){1,2}(?![\d:])`)
	r.enTime = compileI(`(?<![\w])(?<a_time>\d{1,2}(?:[.:]\d{2}){0,2}) ?(?<b_am_pm>[ap]m\b|[ap]\.m\.(?!\w))`)
	r.enUSPhoneNumber = compile(`(?<![\d-])(?:[2-9]\d{2}[/-])?\d{3}-\d{4}(?![\d-])`)
	r.enNumericalIdentifiers = compile(`(?<![\d-])\d+-(?:\d+-)+\d+(?![\d-])|(?<![\d/])\d+/(?:\d+/)+\d+(?![\d/])`)
	r.enUSZipCode = compile(`(?<![\d-])\d{5}-\d{4}(?![\d-])`)
	r.ordinal = compile(`(?<![\w.])(?:\d{1,3}|\d{5,}|[3-9]\d{3})\.(?!\d)`)
	r.englishOrdinal = compile(`\b(?:\d+(?:,\d+)*)?(?:1st|2nd|3rd|\dth)\b`)
	r.englishDecades = compile(`\b(?:[12]\d)?\d0['’]?s\b`)
	r.fraction = compile(`(?<!\w)\d+/\d+(?![\d/])`)
	r.amount = compile(`(?<!\w)(?:\d+[\d,.]*-)(?!\w)`)
	r.semester = compileI(`(?<!\w)(?<a_semester>[WS]S|SoSe|WiSe)(?<b_jahr>\d\d(?:/\d\d)?)(?!\w)`)
	r.measurement = compileI(`(?<!\w)(?<a_amount>[−+-]?\d*[,.]?\d+) ?(?<b_unit>(?:mm|cm|dm|m|km)(?:\^?[23])?|bit|cent|eur|f|ft|g|ghz|h|hz|kg|l|lb|min|ml|qm|s|sek)(?!\w)`)
	// also Web2.0
	r.numberCompound = compile(`(?<!\w)(?:\d+-?[\p{L}@][\p{L}@-]*|[\p{L}@][\p{L}@-]*-?\d+(?:\.\d)?)(?!\w)`)
	// dot for thousands and comma for decimals (1.999,95) or the other
	// way around (1,999.95)
	r.number = compile(`(?<!\w|\d[.,]?)(?:[−+-]?(?:\d*[.,])?\d+(?:[eE][−+-]?\d+)?|\d{1,3}(?:[.]\d{3})+(?:,\d+)?|\d{1,3}(?:,\d{3})+(?:[.]\d+)?)(?![.,]?\d)`)
	r.ipv4 = compile(`(?<!\w|\d[.,]?)(?:\d{1,3}[.]){3}\d{1,3}(?![.,]?\d)`)
	r.sectionNumber = compile(`(?<!\w|\d[.,]?)(?:\d+[.])+\d+[.]?(?![.,]?\d)`)

	r.questExclam = compile(`([!?]+)`)
	r.arrow = compile("(-+>|<-+|[←-⇿])")
	r.paren = compile(`(?:(?<!\w)[\[{(](?=\w))|(?:(?<=\w)[\]})](?!\w))|(?:^[\]})](?=\w))|(?:(?<=\w-)[)](?=\w))`)
	r.deSlash = compile(`(/+)(?!in(?:nen)?|en)`)
	// English possessive and contracted forms
	r.enDms = compileI(`(?<=\w)(['’][dms])\b`)
	r.enLlreve = compileI(`(?<=\w)(['’](?:ll|re|ve))\b`)
	r.enNot = compileI(`(?<=\w)(n['’]t)\b`)
	twopart := []string{
		`\b(?<p1>a)(?<p2>lot)\b`, `\b(?<p1>gon)(?<p2>na)\b`, `\b(?<p1>got)(?<p2>ta)\b`, `\b(?<p1>lem)(?<p2>me)\b`,
		`\b(?<p1>out)(?<p2>ta)\b`, `\b(?<p1>wan)(?<p2>na)\b`, `\b(?<p1>c'm)(?<p2>on)\b`,
		`\b(?<p1>more)(?<p2>['’]n)\b`, `\b(?<p1>d['’])(?<p2>ye)\b`, `(?<!\w)(?<p1>['’]t)(?<p2>is)\b`,
		`(?<!\w)(?<p1>['’]t)(?<p2>was)\b`, `\b(?<p1>there)(?<p2>s)\b`, `\b(?<p1>i)(?<p2>m)\b`,
		`\b(?<p1>you)(?<p2>re)\b`, `\b(?<p1>he)(?<p2>s)\b`, `\b(?<p1>she)(?<p2>s)\b`,
		`\b(?<p1>ai)(?<p2>nt)\b`, `\b(?<p1>are)(?<p2>nt)\b`, `\b(?<p1>is)(?<p2>nt)\b`,
		`\b(?<p1>do)(?<p2>nt)\b`, `\b(?<p1>does)(?<p2>nt)\b`, `\b(?<p1>did)(?<p2>nt)\b`,
		`\b(?<p1>i)(?<p2>ve)\b`, `\b(?<p1>you)(?<p2>ve)\b`, `\b(?<p1>they)(?<p2>ve)\b`,
		`\b(?<p1>have)(?<p2>nt)\b`, `\b(?<p1>has)(?<p2>nt)\b`, `\b(?<p1>can)(?<p2>not)\b`,
		`\b(?<p1>ca)(?<p2>nt)\b`, `\b(?<p1>could)(?<p2>nt)\b`, `\b(?<p1>wo)(?<p2>nt)\b`,
		`\b(?<p1>would)(?<p2>nt)\b`, `\b(?<p1>you)(?<p2>ll)\b`, `\b(?<p1>let)(?<p2>s)\b`,
	}
	for _, pat := range twopart {
		r.enTwopartContractions = append(r.enTwopartContractions, compileI(pat))
	}
	threepart := []string{
		`\b(?<p1>du)(?<p2>n)(?<p3>no)\b`, `\b(?<p1>wha)(?<p2>dd)(?<p3>ya)\b`,
		`\b(?<p1>wha)(?<p2>t)(?<p3>cha)\b`, `\b(?<p1>i)(?<p2>'m)(?<p3>a)\b`,
	}
	for _, pat := range threepart {
		r.enThreepartContractions = append(r.enThreepartContractions, compileI(pat))
	}
	// w/o, w/out, b/c, b/t, l/c, w/, d/c, u/s
	r.enSlashWords = compileI(`\b(?:w/o|w/out|b/t|l/c|b/c|d/c|u/s)\b|\bw/(?!\w)`)
	if language == "en" {
		prefixes := readList("non-breaking_prefixes_en.txt")
		suffixes := readList("non-breaking_suffixes_en.txt")
		words := readList("non-breaking_hyphenated_words_en.txt")
		r.enNonbreakingPrefixes = compileI(`(?<![\w-])(?:` + escapeAll(prefixes) + `)-[\w-]+`)
		r.enNonbreakingSuffixes = compileI(`\b[\w-]+-(?:` + escapeAll(suffixes) + `)(?![\w-])`)
		r.enNonbreakingWords = compileI(`\b(?:` + escapeAll(words) + `)\b`)
	}
	r.enHyphen = compile(`(?<=\w)-+(?=\w)`)
	// L'Enfer, d'accord, O'Connor
	r.letterApostropheWord = compileI(`\b([dlo]['’]\p{L}+)\b`)
	r.otherPunctuation = compile(`([#<>%‰€$£₤¥°@~*„“”‚‘"»«›‹,;:+×÷±≤≥=&–—])`)
	r.enQuotationMarks = compile(`([„“”‚‘’"»«›‹])`)
	r.enOtherPunctuation = compile(`([#<>%‰€$£₤¥°@~*,;:+×÷±≤≥=&/–—-]+)`)
	r.ellipsis = compile(`\.{2,}|…+(?:\.{2,})?`)
	r.dotWithoutSpace = compile(`(?<=\p{Ll}{2})(\.)(?=\p{Lu}\p{Ll}{2})`)
	r.dot = compile(`(\.)`)

	return r
}
