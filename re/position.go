package re

import "github.com/refaengine/refa/internal/sparse"

// Tables holds the side-tables produced by Annotate: the byte each leaf
// position labels, and the followpos relation between leaf positions.
// These are consumed by the direct DFA builder (package dfa) and then
// discarded; they carry no state useful after a single DFA construction.
type Tables struct {
	LeafPos   map[LeafID]byte
	FollowPos map[LeafID]*sparse.Set
	LeafCount int
}

// Annotate performs the bottom-up position annotation of Aho §3.9.4: it
// assigns each Char leaf a LeafID (left-to-right traversal order) and
// populates Nullable/FirstPos/LastPos on every node, plus the LeafPos and
// FollowPos side-tables. After Annotate, FirstPos(root) is the start state
// for direct DFA construction and FollowPos is complete.
func Annotate(root *Node) *Tables {
	leafCount := countLeaves(root)
	cap := uint32(leafCount)
	t := &Tables{
		LeafPos:   make(map[LeafID]byte, leafCount),
		FollowPos: make(map[LeafID]*sparse.Set, leafCount),
		LeafCount: leafCount,
	}
	next := LeafID(0)

	var visit func(n *Node)
	visit = func(n *Node) {
		switch n.Kind {
		case KindEps:
			n.Nullable = true
			n.FirstPos = sparse.New(cap)
			n.LastPos = sparse.New(cap)

		case KindChar:
			n.Leaf = next
			t.LeafPos[n.Leaf] = n.Byte
			t.FollowPos[n.Leaf] = sparse.New(cap)
			next++

			n.Nullable = false
			n.FirstPos = sparse.New(cap)
			n.FirstPos.Insert(uint32(n.Leaf))
			n.LastPos = sparse.New(cap)
			n.LastPos.Insert(uint32(n.Leaf))

		case KindKleene:
			visit(n.Child)
			n.Nullable = true
			n.FirstPos = n.Child.FirstPos.Clone()
			n.LastPos = n.Child.LastPos.Clone()
			n.LastPos.Iter(func(p uint32) {
				t.FollowPos[LeafID(p)].Union(n.FirstPos)
			})

		case KindConcat:
			for _, c := range n.Children {
				visit(c)
			}
			n.Nullable = true
			for _, c := range n.Children {
				if !c.Nullable {
					n.Nullable = false
					break
				}
			}

			n.FirstPos = sparse.New(cap)
			nullableSoFar := true
			for _, c := range n.Children {
				if nullableSoFar {
					n.FirstPos.Union(c.FirstPos)
				}
				if !c.Nullable {
					nullableSoFar = false
				}
			}

			n.LastPos = sparse.New(cap)
			nullableFromEnd := true
			for i := len(n.Children) - 1; i >= 0; i-- {
				c := n.Children[i]
				if nullableFromEnd {
					n.LastPos.Union(c.LastPos)
				}
				if !c.Nullable {
					nullableFromEnd = false
				}
			}

			// tmpLastPos accumulates lastpos across a run of nullable
			// children instead of resetting at each one, so a position
			// coupled to an optional middle child (e.g. "ab?c") still
			// gets c's firstpos added to its followpos.
			var tmpLastPos *sparse.Set
			for i, c := range n.Children {
				if i == 0 {
					tmpLastPos = c.LastPos.Clone()
					continue
				}
				tmpLastPos.Iter(func(p uint32) {
					t.FollowPos[LeafID(p)].Union(c.FirstPos)
				})
				if c.Nullable {
					tmpLastPos.Union(c.LastPos)
				} else {
					tmpLastPos = c.LastPos.Clone()
				}
			}

		case KindDisjunction:
			n.Nullable = false
			n.FirstPos = sparse.New(cap)
			n.LastPos = sparse.New(cap)
			for _, c := range n.Children {
				visit(c)
				if c.Nullable {
					n.Nullable = true
				}
				n.FirstPos.Union(c.FirstPos)
				n.LastPos.Union(c.LastPos)
			}
		}
	}
	visit(root)
	return t
}

func countLeaves(n *Node) int {
	switch n.Kind {
	case KindChar:
		return 1
	case KindKleene:
		return countLeaves(n.Child)
	case KindConcat, KindDisjunction:
		total := 0
		for _, c := range n.Children {
			total += countLeaves(c)
		}
		return total
	default:
		return 0
	}
}
