package dfa

// RemoveDeadState prunes states that cannot reach any accepting state and
// reindexes the survivors so the start state remains at index 0 (§4.6).
//
// A state is terminable iff it is accepting or at least one of its
// successors is terminable. This is a backward-reachability fixpoint:
// every accepting state is terminable, and terminability propagates along
// reverse edges by worklist BFS, so a state in a cycle is marked
// terminable as soon as any state it can reach is, regardless of which
// order its outgoing edges are visited in (map iteration order in Go is
// randomized, so a forward memoized DFS cannot be trusted to converge on
// cycles). Survivors are then reindexed by BFS from state 0 over the
// induced subgraph, and edges to non-terminable targets are dropped.
func (d *DFA) RemoveDeadState() {
	n := len(d.Nodes)
	terminable := make([]bool, n)
	reverse := make([][]StateID, n)
	worklist := make([]StateID, 0, n)
	for s := 0; s < n; s++ {
		for _, target := range d.Nodes[s].Edges {
			reverse[target] = append(reverse[target], StateID(s))
		}
		if d.Nodes[s].IsAccepting() {
			terminable[s] = true
			worklist = append(worklist, StateID(s))
		}
	}
	for head := 0; head < len(worklist); head++ {
		s := worklist[head]
		for _, pred := range reverse[s] {
			if !terminable[pred] {
				terminable[pred] = true
				worklist = append(worklist, pred)
			}
		}
	}

	if !terminable[0] {
		d.Nodes = nil
		return
	}

	newIndex := make([]StateID, n)
	for i := range newIndex {
		newIndex[i] = InvalidState
	}
	order := []StateID{0}
	newIndex[0] = 0
	for head := 0; head < len(order); head++ {
		s := order[head]
		for _, target := range d.Nodes[s].Edges {
			if terminable[target] && newIndex[target] == InvalidState {
				newIndex[target] = StateID(len(order))
				order = append(order, target)
			}
		}
	}

	nodes := make([]Node, len(order))
	for i, old := range order {
		oldNode := d.Nodes[old]
		newNode := Node{Terminal: oldNode.Terminal}
		for b, target := range oldNode.Edges {
			if !terminable[target] {
				continue
			}
			if newNode.Edges == nil {
				newNode.Edges = make(map[byte]StateID, len(oldNode.Edges))
			}
			newNode.Edges[b] = newIndex[target]
		}
		nodes[i] = newNode
	}
	d.Nodes = nodes
}
