package tokenizer

import (
	"strings"

	"github.com/AndreasBlombach/SoMaJo/token"
)

// Boundary is a span within a token's text that marks a sub-unit to extract.
// Start and End are 0-based rune offsets into the text. If Replacement is
// non-nil and differs from the matched text, the match is emitted as
// *Replacement and the matched text is recorded as the token's original
// spelling.
type Boundary struct {
	Start, End  int
	Replacement *string
}

// splitOnBoundaries rewrites node into left/match/right fragments, one
// match fragment per boundary. Boundaries must be sorted by Start and
// non-overlapping; this is a precondition the pass runners guarantee, not
// something that is checked here.
//
// Every non-empty left part becomes a new unlocked token; every match
// becomes a token locked with class; a non-empty right part after the last
// boundary becomes one final unlocked token. Whitespace adjacent to a
// fragment boundary is never embedded in a fragment's text, it only decides
// the SpaceAfter flags. FirstInSentence survives only on the very first
// emitted fragment, LastInSentence only on the last one. The original node
// is removed; with an empty boundary list the node is left untouched.
func splitOnBoundaries(seq *token.Sequence, node *token.Node, boundaries []Boundary, class string) {
	n := len(boundaries)
	if n == 0 {
		return
	}
	text := []rune(node.Token.Text)
	prevEnd := 0
	firstInSentence := false
	for i, b := range boundaries {
		originalSpelling := ""
		left := string(text[prevEnd:b.Start])
		match := string(text[b.Start:b.End])
		if b.Replacement != nil && match != *b.Replacement {
			originalSpelling = match
			match = *b.Replacement
		}
		right := string(text[b.End:])
		prevEnd = b.End

		// adjacency is whitespace-derived, not assumed
		leftSpaceAfter := strings.HasSuffix(left, " ") || strings.HasPrefix(match, " ")
		matchSpaceAfter := strings.HasSuffix(match, " ") || strings.HasPrefix(right, " ")
		if !matchSpaceAfter && right == "" {
			matchSpaceAfter = node.Token.SpaceAfter
		}
		left = strings.TrimSpace(left)
		match = strings.TrimSpace(match)
		right = strings.TrimSpace(right)

		matchLastInSentence := false
		rightLastInSentence := false
		if i == 0 {
			firstInSentence = node.Token.FirstInSentence
		}
		if i == n-1 {
			matchLastInSentence = node.Token.LastInSentence
			if right != "" {
				matchLastInSentence = false
				rightLastInSentence = node.Token.LastInSentence
			}
		}
		if left != "" {
			seq.InsertBefore(token.Token{
				Text:            left,
				SpaceAfter:      leftSpaceAfter,
				FirstInSentence: firstInSentence,
			}, node)
			firstInSentence = false
		}
		seq.InsertBefore(token.Token{
			Text:             match,
			Locked:           true,
			Class:            class,
			SpaceAfter:       matchSpaceAfter,
			OriginalSpelling: originalSpelling,
			FirstInSentence:  firstInSentence,
			LastInSentence:   matchLastInSentence,
		}, node)
		firstInSentence = false
		if i == n-1 && right != "" {
			seq.InsertBefore(token.Token{
				Text:           right,
				SpaceAfter:     node.Token.SpaceAfter,
				LastInSentence: rightLastInSentence,
			}, node)
		}
	}
	seq.Remove(node)
}
