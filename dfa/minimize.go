package dfa

// Minimize applies Hopcroft-style partition refinement (Aho Alg. 3.39,
// §4.7) in place. The DFA is first dead-state-pruned so every surviving
// state can reach acceptance, then a synthetic dead-sink state D — which
// self-loops on every byte and accepts nothing — stands in for "no edge"
// so every (state, byte) pair has a defined target during refinement.
//
// Minimize is idempotent: minimizing an already-minimal DFA reproduces it
// up to state renumbering.
func (d *DFA) Minimize() {
	d.RemoveDeadState()
	n := len(d.Nodes)
	if n == 0 {
		return
	}
	deadSink := StateID(n)

	blockOf := make([]int, n+1)
	byTerminal := make(map[uint32][]StateID)
	var nonAccepting []StateID
	for s := 0; s < n; s++ {
		node := &d.Nodes[s]
		if node.IsAccepting() {
			byTerminal[node.Terminal] = append(byTerminal[node.Terminal], StateID(s))
		} else {
			nonAccepting = append(nonAccepting, StateID(s))
		}
	}

	var blocks [][]StateID
	for _, states := range byTerminal {
		blocks = append(blocks, states)
	}
	if len(nonAccepting) > 0 {
		blocks = append(blocks, nonAccepting)
	}
	blocks = append(blocks, []StateID{deadSink})

	assign := func() {
		for bi, states := range blocks {
			for _, s := range states {
				blockOf[s] = bi
			}
		}
	}
	assign()

	targetBlock := func(s StateID, b byte) int {
		if s == deadSink {
			return blockOf[deadSink]
		}
		target, ok := d.Nodes[s].Edges[b]
		if !ok {
			return blockOf[deadSink]
		}
		return blockOf[target]
	}

	for changed := true; changed; {
		changed = false
		var next [][]StateID
		for _, block := range blocks {
			if len(block) <= 1 {
				next = append(next, block)
				continue
			}
			split := false
			for b := 0; b < 256 && !split; b++ {
				groups := make(map[int][]StateID)
				var order []int
				for _, s := range block {
					tb := targetBlock(s, byte(b))
					if _, ok := groups[tb]; !ok {
						order = append(order, tb)
					}
					groups[tb] = append(groups[tb], s)
				}
				if len(groups) > 1 {
					for _, tb := range order {
						next = append(next, groups[tb])
					}
					split = true
					changed = true
				}
			}
			if !split {
				next = append(next, block)
			}
		}
		blocks = next
		assign()
	}

	zeroBlock := blockOf[0]
	if zeroBlock != 0 {
		blocks[0], blocks[zeroBlock] = blocks[zeroBlock], blocks[0]
		assign()
	}
	deadBlockIdx := blockOf[deadSink]

	newIndexForBlock := make([]int, len(blocks))
	outCount := 0
	for bi := range blocks {
		if bi == deadBlockIdx {
			newIndexForBlock[bi] = -1
			continue
		}
		newIndexForBlock[bi] = outCount
		outCount++
	}

	nodes := make([]Node, outCount)
	for bi, block := range blocks {
		if bi == deadBlockIdx {
			continue
		}
		idx := newIndexForBlock[bi]
		term := d.Nodes[block[0]].Terminal
		for _, s := range block[1:] {
			if d.Nodes[s].Terminal != term {
				panic("dfa: minimize produced a block with disagreeing terminal ids")
			}
		}
		node := Node{Terminal: term}
		for b := 0; b < 256; b++ {
			tb := targetBlock(block[0], byte(b))
			for _, s := range block[1:] {
				if targetBlock(s, byte(b)) != tb {
					panic("dfa: minimize produced a block that disagrees on a byte transition")
				}
			}
			if tb == deadBlockIdx {
				continue
			}
			if node.Edges == nil {
				node.Edges = make(map[byte]StateID, 1)
			}
			node.Edges[byte(b)] = StateID(newIndexForBlock[tb])
		}
		nodes[idx] = node
	}
	d.Nodes = nodes
	d.RemoveDeadState()
}
