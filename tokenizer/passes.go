package tokenizer

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/rivo/uniseg"

	"github.com/AndreasBlombach/SoMaJo/emoji"
	"github.com/AndreasBlombach/SoMaJo/internal/tracing"
	"github.com/AndreasBlombach/SoMaJo/token"
)

// findMatches returns all non-overlapping matches of re in s, left to right.
// regexp2 reports offsets in runes, which is exactly what the boundary
// splitter expects.
func findMatches(re *regexp2.Regexp, s string) []*regexp2.Match {
	var matches []*regexp2.Match
	m, err := re.FindStringMatch(s)
	for m != nil && err == nil {
		matches = append(matches, m)
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		tracing.P("rule", re.String()).Errorf("match error: %v", err)
	}
	return matches
}

// sub replaces all matches of re in s with the given substitution template.
func sub(re *regexp2.Regexp, s, template string) string {
	out, err := re.Replace(s, template, -1, -1)
	if err != nil {
		tracing.P("rule", re.String()).Errorf("replace error: %v", err)
		return s
	}
	return out
}

// namedGroupSpans collects the spans of all participating named capture
// groups of m, sorted by position. Purely numbered groups do not count.
func namedGroupSpans(m *regexp2.Match) []Boundary {
	var spans []Boundary
	for _, g := range m.Groups() {
		if len(g.Captures) == 0 {
			continue
		}
		if _, err := strconv.Atoi(g.Name); err == nil {
			// numbered group, not a named one
			continue
		}
		spans = append(spans, Boundary{Start: g.Index, End: g.Index + g.Length})
	}
	for i := 1; i < len(spans); i++ {
		for j := i; j > 0 && spans[j].Start < spans[j-1].Start; j-- {
			spans[j], spans[j-1] = spans[j-1], spans[j]
		}
	}
	return spans
}

// splitMatches turns the matches of re inside a single node into locked
// tokens. When the rule defines named capture groups and splitGroups is
// true, each group span becomes a separate boundary, so that one rule can
// demarcate several sub-tokens at once; otherwise the whole match is a
// single boundary. repl, if non-nil, rewrites each whole-match boundary.
func splitMatches(seq *token.Sequence, node *token.Node, re *regexp2.Regexp, class string, splitGroups bool, repl func(*regexp2.Match) string) {
	var boundaries []Boundary
	for _, m := range findMatches(re, node.Token.Text) {
		var spans []Boundary
		if splitGroups {
			spans = namedGroupSpans(m)
		}
		if len(spans) > 0 {
			boundaries = append(boundaries, spans...)
			continue
		}
		b := Boundary{Start: m.Index, End: m.Index + m.Length}
		if repl != nil {
			replacement := repl(m)
			b.Replacement = &replacement
		}
		boundaries = append(boundaries, b)
	}
	splitOnBoundaries(seq, node, boundaries, class)
}

// splitAllMatches runs splitMatches over the whole sequence, skipping
// markup and locked tokens.
func (t *Tokenizer) splitAllMatches(seq *token.Sequence, re *regexp2.Regexp, class string, splitGroups bool) {
	t.splitAllMatchesRepl(seq, re, class, splitGroups, nil)
}

func (t *Tokenizer) splitAllMatchesRepl(seq *token.Sequence, re *regexp2.Regexp, class string, splitGroups bool, repl func(*regexp2.Match) string) {
	for node := seq.First(); node != nil; {
		next := node.Next()
		if !node.Token.Markup && !node.Token.Locked {
			splitMatches(seq, node, re, class, splitGroups, repl)
		}
		node = next
	}
}

// splitAllSet runs a set-filtered pass: all matches of the candidate rule
// whose text (optionally case-folded) is a member of items become locked
// tokens; other candidates are left untouched.
func (t *Tokenizer) splitAllSet(seq *token.Sequence, re *regexp2.Regexp, items *hashset.Set, class string, foldCase bool) {
	for node := seq.First(); node != nil; {
		next := node.Next()
		if node.Token.Markup || node.Token.Locked {
			node = next
			continue
		}
		var boundaries []Boundary
		for _, m := range findMatches(re, node.Token.Text) {
			instance := m.String()
			if foldCase {
				instance = strings.ToLower(instance)
			}
			if items.Contains(instance) {
				boundaries = append(boundaries, Boundary{Start: m.Index, End: m.Index + m.Length})
			}
		}
		splitOnBoundaries(seq, node, boundaries, class)
		node = next
	}
}

// splitAllEmoji runs the grapheme-cluster pass: the text is segmented into
// user-perceived characters, and every cluster that passes the pictographic
// property test becomes a locked token. Single-codepoint clusters must
// carry an emoji property themselves; multi-codepoint clusters also count
// when they contain an emoji variation selector, because a cluster like
// "#️⃣" is pictographic even though the detached keycap
// components are not.
func (t *Tokenizer) splitAllEmoji(seq *token.Sequence, class string) {
	emoji.SetupEmojiClasses()
	for node := seq.First(); node != nil; {
		next := node.Next()
		if node.Token.Markup || node.Token.Locked {
			node = next
			continue
		}
		var boundaries []Boundary
		pos := 0
		gr := uniseg.NewGraphemes(node.Token.Text)
		for gr.Next() {
			cluster := gr.Runes()
			pictographic := false
			for _, r := range cluster {
				if emoji.IsPictographic(r) || (len(cluster) > 1 && r == emoji.VariationSelector16) {
					pictographic = true
					break
				}
			}
			if pictographic {
				boundaries = append(boundaries, Boundary{Start: pos, End: pos + len(cluster)})
			}
			pos += len(cluster)
		}
		splitOnBoundaries(seq, node, boundaries, class)
		node = next
	}
}

// splitAbbreviations turns instances of abbreviations into tokens. For
// languages with splitMultipart set, an abbreviation matching the general
// multi-dot shape is exploded into one token per dot-terminated segment.
func (t *Tokenizer) splitAbbreviations(seq *token.Sequence, splitMultipart bool) {
	t.splitAllMatches(seq, t.rules.singleLetterEllipsis, "abbreviation", true)
	t.splitAllMatches(seq, t.rules.andCetera, "abbreviation", true)
	t.splitAllMatches(seq, t.rules.strAbbreviations, "abbreviation", true)
	t.splitAllMatches(seq, t.rules.nrAbbreviations, "abbreviation", true)
	t.splitAllMatches(seq, t.rules.singleTokenAbbreviation, "abbreviation", true)
	t.splitAllMatches(seq, t.rules.singleLetterAbbreviation, "abbreviation", true)

	for node := seq.First(); node != nil; {
		next := node.Next()
		if node.Token.Markup || node.Token.Locked {
			node = next
			continue
		}
		var boundaries []Boundary
		for _, m := range findMatches(t.rules.abbreviation, node.Token.Text) {
			instance := m.String()
			multipart, _ := t.rules.multipartAbbreviation.MatchString(instance)
			if splitMultipart && multipart {
				start := m.Index
				s := start
				for i, c := range []rune(instance) {
					if c == '.' {
						boundaries = append(boundaries, Boundary{Start: s, End: start + i + 1})
						s = start + i + 1
					}
				}
			} else {
				boundaries = append(boundaries, Boundary{Start: m.Index, End: m.Index + m.Length})
			}
		}
		splitOnBoundaries(seq, node, boundaries, "abbreviation")
		node = next
	}
}
