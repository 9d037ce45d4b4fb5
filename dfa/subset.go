package dfa

import (
	"github.com/refaengine/refa/internal/sparse"
	"github.com/refaengine/refa/nfa"
)

// FromNFA performs subset construction (Aho Alg. 3.20 / §4.5) with
// DefaultLimits: each DFA state is the ε-closure of a set of NFA states,
// interned by content. A DFA state's terminal id is the minimum terminal
// id among its member NFA states that have one, encoding lexer
// priority-by-rule-index.
func FromNFA(n *nfa.NFA) (*DFA, error) {
	return FromNFAWithLimits(n, DefaultLimits())
}

// FromNFAWithLimits is FromNFA with caller-supplied size limits. State sets
// are interned with a sparse.Set sized to the NFA's state count rather
// than a fixed-width bit-set; construction over a larger NFA, or one whose
// subset construction would exceed MaxDfaStates, fails fast instead of
// growing interning cost unboundedly.
func FromNFAWithLimits(n *nfa.NFA, limits Limits) (*DFA, error) {
	if uint32(n.NumStates()) > limits.MaxNfaStates {
		return nil, ErrTooLargeNfa(n.NumStates())
	}
	cap := uint32(n.NumStates())

	d := &DFA{}
	interned := make(map[string]StateID)
	type pending struct {
		id  StateID
		set *sparse.Set
	}

	start := closureSet(n, []nfa.StateID{n.Start()}, cap)
	startID := d.addState()
	interned[start.Key()] = startID
	queue := []pending{{startID, start}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		d.Nodes[cur.id].Terminal = minTerminal(n, cur.set)

		members := toNfaStates(cur.set)
		for bi := 0; bi < 256; bi++ {
			b := byte(bi)
			moved := n.Move(members, b)
			if len(moved) == 0 {
				continue
			}
			u := closureSet(n, moved, cap)
			if u.IsEmpty() {
				continue
			}
			key := u.Key()
			target, ok := interned[key]
			if !ok {
				if uint32(len(d.Nodes)) >= limits.MaxDfaStates {
					return nil, ErrTooLargeDfa(len(d.Nodes))
				}
				target = d.addState()
				interned[key] = target
				queue = append(queue, pending{target, u})
			}
			if d.Nodes[cur.id].Edges == nil {
				d.Nodes[cur.id].Edges = make(map[byte]StateID, 1)
			}
			d.Nodes[cur.id].Edges[b] = target
		}
	}

	return d, nil
}

func closureSet(n *nfa.NFA, seed []nfa.StateID, cap uint32) *sparse.Set {
	closure := n.EpsilonClosure(seed)
	s := sparse.New(cap)
	for _, st := range closure {
		s.Insert(uint32(st))
	}
	return s
}

func toNfaStates(s *sparse.Set) []nfa.StateID {
	values := s.Values()
	out := make([]nfa.StateID, len(values))
	for i, v := range values {
		out[i] = nfa.StateID(v)
	}
	return out
}

func minTerminal(n *nfa.NFA, s *sparse.Set) uint32 {
	best := NoTerminal
	s.Iter(func(v uint32) {
		if t := n.Nodes[v].Terminal; t != nfa.NoTerminal && t < best {
			best = t
		}
	})
	return best
}
