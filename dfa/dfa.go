// Package dfa implements the deterministic finite automaton produced by
// either compilation front end: the direct position-construction builder
// (§4.3) or Thompson NFA + subset construction (§4.5), plus the
// transformations shared by both — dead-state removal (§4.6) and Hopcroft
// partition-refinement minimization (§4.7) — and matching (§4.8).
package dfa

import "github.com/refaengine/refa/internal/conv"

// StateID identifies a DFA state by index into DFA.Nodes. Nodes[0] is
// always the start state.
type StateID uint32

// InvalidState is the sentinel "no state" value.
const InvalidState StateID = ^StateID(0)

// NoTerminal is the sentinel "not an accepting state" value for Node.Terminal.
const NoTerminal uint32 = ^uint32(0)

// Node is one DFA state: at most one outgoing edge per byte, and an
// optional terminal token id.
type Node struct {
	// Terminal is NoTerminal unless this node accepts, in which case it
	// holds the token id of the regex (or lexer rule) whose match
	// terminates here.
	Terminal uint32

	// Edges maps an input byte to the single state reached by consuming
	// it. Absence of a key means "no transition" (implicit reject).
	Edges map[byte]StateID
}

func newNode() Node {
	return Node{Terminal: NoTerminal}
}

// IsAccepting reports whether this node is a terminal state.
func (n *Node) IsAccepting() bool { return n.Terminal != NoTerminal }

// DFA is a deterministic finite automaton over the 256-byte alphabet.
// Nodes[0] is the start state. A built DFA is immutable under matching:
// multiple goroutines may call Accept on the same *DFA concurrently.
type DFA struct {
	Nodes []Node
}

// NumStates returns the number of states in the automaton.
func (d *DFA) NumStates() int { return len(d.Nodes) }

// Start returns the DFA's start state.
func (d *DFA) Start() StateID { return 0 }

func (d *DFA) addState() StateID {
	id := StateID(len(d.Nodes))
	d.Nodes = append(d.Nodes, newNode())
	return id
}

// Accept walks the DFA from the start state consuming s one byte at a
// time. It returns the terminal id of the state reached and true if that
// state accepts, or (0, false) on rejection (a byte with no outgoing
// edge). Empty input returns the start state's terminal status. A DFA with
// no states (an empty language after dead-state removal) rejects every
// input.
func (d *DFA) Accept(s []byte) (uint32, bool) {
	if len(d.Nodes) == 0 {
		return 0, false
	}
	cur := d.Start()
	for _, b := range s {
		next, ok := d.Nodes[cur].Edges[b]
		if !ok {
			return 0, false
		}
		cur = next
	}
	n := &d.Nodes[cur]
	if !n.IsAccepting() {
		return 0, false
	}
	return n.Terminal, true
}

func validateEdges(d *DFA) bool {
	count := conv.IntToUint32(len(d.Nodes))
	for _, node := range d.Nodes {
		for _, target := range node.Edges {
			if uint32(target) >= count {
				return false
			}
		}
	}
	return true
}
