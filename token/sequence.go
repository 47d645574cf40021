package token

// Node is an element of a Sequence. Nodes are owned by exactly one sequence;
// the prev/next links are navigational only. Passes address tokens by node
// reference, so node identity is stable across splicing.
type Node struct {
	prev, next *Node
	seq        *Sequence
	Token      Token
}

// Next returns the following node, or nil at the end of the sequence.
// The link survives removal of n itself, so an iteration may continue
// from a node that has just been spliced out.
func (n *Node) Next() *Node {
	return n.next
}

// Prev returns the preceding node, or nil at the head of the sequence.
func (n *Node) Prev() *Node {
	return n.prev
}

// Sequence is an ordered, doubly-linked list of token nodes. It supports
// O(1) append, insert-before and removal, which the splitting passes use to
// rewrite one node into several fragments without disturbing global order.
//
// A sequence is not safe for concurrent use; every tokenization call owns
// its sequence exclusively.
type Sequence struct {
	first, last *Node
	size        int
}

// NewSequence creates a sequence holding the given tokens in order.
func NewSequence(tokens ...Token) *Sequence {
	seq := &Sequence{}
	for _, t := range tokens {
		seq.Append(t)
	}
	return seq
}

// First returns the head node, or nil if the sequence is empty.
func (s *Sequence) First() *Node {
	return s.first
}

// Last returns the tail node, or nil if the sequence is empty.
func (s *Sequence) Last() *Node {
	return s.last
}

// Len returns the number of nodes in the sequence.
func (s *Sequence) Len() int {
	return s.size
}

// Append adds a new trailing node holding t and returns it.
func (s *Sequence) Append(t Token) *Node {
	node := &Node{prev: s.last, Token: t, seq: s}
	if s.last != nil {
		s.last.next = node
	}
	if s.first == nil {
		s.first = node
	}
	s.last = node
	s.size++
	return node
}

// InsertBefore splices a new node holding t immediately before ref and
// returns it. ref must belong to this sequence.
func (s *Sequence) InsertBefore(t Token, ref *Node) *Node {
	node := &Node{prev: ref.prev, next: ref, Token: t, seq: s}
	if ref.prev != nil {
		ref.prev.next = node
	}
	ref.prev = node
	if s.first == ref {
		s.first = node
	}
	s.size++
	return node
}

// Remove unlinks node from the sequence. The node's own links are left
// intact so that an iteration positioned on it can still step off of it.
func (s *Sequence) Remove(node *Node) {
	if s.first == node {
		s.first = node.next
	}
	if s.last == node {
		s.last = node.prev
	}
	if node.prev != nil {
		node.prev.next = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	}
	node.seq = nil
	s.size--
}

// NextMatching walks forward from node and returns the first node for which
// match returns true, skipping nodes for which skip returns true. Returns
// nil if no such node exists. skip may be nil.
func (s *Sequence) NextMatching(node *Node, match func(Token) bool, skip func(Token) bool) *Node {
	return findMatching(node, match, skip, true)
}

// PrevMatching is NextMatching in the other direction.
func (s *Sequence) PrevMatching(node *Node, match func(Token) bool, skip func(Token) bool) *Node {
	return findMatching(node, match, skip, false)
}

func findMatching(node *Node, match func(Token) bool, skip func(Token) bool, forward bool) *Node {
	step := (*Node).Next
	if !forward {
		step = (*Node).Prev
	}
	for current := step(node); current != nil; current = step(current) {
		if skip != nil && skip(current.Token) {
			continue
		}
		if match(current.Token) {
			return current
		}
	}
	return nil
}

// Tokens materializes the current tokens in order.
func (s *Sequence) Tokens() []Token {
	tokens := make([]Token, 0, s.size)
	for n := s.first; n != nil; n = n.next {
		tokens = append(tokens, n.Token)
	}
	return tokens
}

// Texts materializes the current token texts in order.
func (s *Sequence) Texts() []string {
	texts := make([]string, 0, s.size)
	for n := s.first; n != nil; n = n.next {
		texts = append(texts, n.Token.Text)
	}
	return texts
}
