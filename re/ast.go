// Package re implements the regex abstract syntax tree, the recursive
// descent parser that produces it, and the position annotator (nullable /
// firstpos / lastpos / followpos) used by the direct DFA construction.
//
// The alphabet is exactly the 256 byte values; there is no Unicode
// normalization, no capture groups, and no anchors. See the package-level
// Non-goals in the project's design notes.
package re

import "github.com/refaengine/refa/internal/sparse"

// Kind identifies which of Node's fields are meaningful, acting as the tag
// of a tagged union.
type Kind uint8

const (
	// KindEps matches the empty byte sequence.
	KindEps Kind = iota
	// KindChar matches exactly one byte (Node.Byte).
	KindChar
	// KindKleene matches zero or more repetitions of Node.Child.
	KindKleene
	// KindConcat matches its Children in order.
	KindConcat
	// KindDisjunction matches any one of its Children.
	KindDisjunction
)

func (k Kind) String() string {
	switch k {
	case KindEps:
		return "Eps"
	case KindChar:
		return "Char"
	case KindKleene:
		return "Kleene"
	case KindConcat:
		return "Concat"
	case KindDisjunction:
		return "Disjunction"
	default:
		return "Unknown"
	}
}

// LeafID uniquely identifies a Char leaf in a position-annotated tree,
// assigned by left-to-right post-order traversal. LeafID is only
// meaningful after Annotate has run on the tree containing the node.
type LeafID int

// Node is a regex AST node. Each inner node exclusively owns its Children
// (or Child); there is no subtree sharing — callers that need to reuse a
// subexpression (the `+` expansion) must Clone it first, or position
// annotation will assign the same leaf ids to both occurrences and corrupt
// firstpos/followpos.
type Node struct {
	Kind Kind

	// Byte is valid when Kind == KindChar.
	Byte byte

	// Child is valid when Kind == KindKleene.
	Child *Node

	// Children is valid when Kind == KindConcat or KindDisjunction.
	Children []*Node

	// --- populated by Annotate (read by package dfa and cmd/refadot) ---

	// Leaf is valid when Kind == KindChar, after Annotate has run.
	Leaf LeafID

	Nullable bool
	FirstPos *sparse.Set
	LastPos  *sparse.Set
}

// Eps returns a new Eps node.
func Eps() *Node { return &Node{Kind: KindEps} }

// Char returns a new Char node matching b.
func Char(b byte) *Node { return &Node{Kind: KindChar, Byte: b} }

// Kleene returns a new Kleene node matching zero or more of child.
func Kleene(child *Node) *Node { return &Node{Kind: KindKleene, Child: child} }

// Concat returns a new Concat node matching its children in order.
func Concat(children ...*Node) *Node { return &Node{Kind: KindConcat, Children: children} }

// Disjunction returns a new Disjunction node matching any one child.
func Disjunction(children ...*Node) *Node { return &Node{Kind: KindDisjunction, Children: children} }

// AnyByte returns a Disjunction of all 256 Char leaves, the expansion of `.`.
func AnyByte() *Node {
	children := make([]*Node, 256)
	for i := range children {
		children[i] = Char(byte(i))
	}
	return Disjunction(children...)
}

// Clone returns a deep copy of n. Required whenever a subexpression must
// appear more than once in the tree (e.g. `r+` desugars to
// Concat(r, Kleene(Clone(r)))) so that each occurrence gets distinct leaf
// ids during annotation.
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	out := &Node{Kind: n.Kind, Byte: n.Byte}
	if n.Child != nil {
		out.Child = Clone(n.Child)
	}
	if n.Children != nil {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = Clone(c)
		}
	}
	return out
}
