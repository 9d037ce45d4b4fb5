// Package nfa implements the Thompson-construction ε-NFA front end (Aho
// Alg. 3.23): compiling a regex AST into a non-deterministic automaton with
// ε-transitions, ready for subset construction (package dfa).
package nfa

import (
	"sort"

	"github.com/refaengine/refa/internal/conv"
)

// StateID identifies an NFA node by index into NFA.Nodes. nodes[0] is
// always the start state.
type StateID uint32

// InvalidState is the sentinel "no state" value, following the same
// pattern coregx's Thompson-NFA package uses for its own StateID type.
const InvalidState StateID = ^StateID(0)

// NoTerminal is the sentinel "not an accepting state" value for Node.Terminal.
const NoTerminal uint32 = ^uint32(0)

// Node is one NFA state: optionally an accepting state carrying a token
// id, plus its outgoing ε-edges and byte-labeled edges.
type Node struct {
	// Terminal is NoTerminal unless this node accepts, in which case it
	// holds the token id of the regex whose match terminates here.
	Terminal uint32

	// EpsEdges are ε-transitions out of this node.
	EpsEdges []StateID

	// Edges maps a byte to the states reachable by consuming it. Thompson
	// construction never needs more than one target per byte per node, but
	// the slice form keeps ε-closure/move symmetric and cheap to build
	// incrementally during construction.
	Edges map[byte][]StateID
}

func newNode() Node {
	return Node{Terminal: NoTerminal}
}

// NFA is a Thompson-constructed non-deterministic finite automaton.
// Nodes[0] is the start state.
type NFA struct {
	Nodes []Node
}

// NumStates returns the number of states in the automaton.
func (n *NFA) NumStates() int { return len(n.Nodes) }

// Start returns the NFA's start state.
func (n *NFA) Start() StateID { return 0 }

// EpsilonClosure returns the set of states reachable from seed using only
// ε-transitions, including seed itself, as a sorted de-duplicated slice
// (duplicates in seed are collapsed too).
func (n *NFA) EpsilonClosure(seed []StateID) []StateID {
	visited := make(map[StateID]bool, len(seed))
	var stack, out []StateID
	for _, s := range seed {
		if !visited[s] {
			visited[s] = true
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, s)
		for _, t := range n.Nodes[s].EpsEdges {
			if !visited[t] {
				visited[t] = true
				stack = append(stack, t)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Move returns the set of states reachable from any state in from by
// consuming byte b (no ε-closure applied).
func (n *NFA) Move(from []StateID, b byte) []StateID {
	var out []StateID
	for _, s := range from {
		out = append(out, n.Nodes[s].Edges[b]...)
	}
	return out
}

func (n *NFA) addState() StateID {
	id := StateID(len(n.Nodes))
	n.Nodes = append(n.Nodes, newNode())
	return id
}

func validateEdges(n *NFA) bool {
	count := conv.IntToUint32(len(n.Nodes))
	for _, node := range n.Nodes {
		for _, e := range node.EpsEdges {
			if uint32(e) >= count {
				return false
			}
		}
		for _, targets := range node.Edges {
			for _, e := range targets {
				if uint32(e) >= count {
					return false
				}
			}
		}
	}
	return true
}
