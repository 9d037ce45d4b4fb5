package dfa

import (
	"github.com/refaengine/refa/internal/sparse"
	"github.com/refaengine/refa/re"
)

// termByte is the end-marker byte augmenting the AST for direct
// construction (Aho §3.9.5). A pattern can have Char(0x00) leaves of its
// own (`.`, negated classes, a literal NUL byte), so the end-marker's
// position is left out of byte grouping: it only marks acceptance and
// never produces an edge, while the pattern's own NUL leaves keep theirs.
const termByte byte = 0x00

// BuildFromAST runs the McNaughton–Yamada–Thompson position construction
// (§4.3) with DefaultLimits: augments root with an end-marker, annotates
// it, and builds DFA states directly as sets of leaf positions — no
// intermediate NFA. Any state containing the end-marker's leaf position is
// accepting with id.
func BuildFromAST(root *re.Node, id uint32) (*DFA, error) {
	return BuildFromASTWithLimits(root, id, DefaultLimits())
}

// BuildFromASTWithLimits is BuildFromAST with caller-supplied size limits.
func BuildFromASTWithLimits(root *re.Node, id uint32, limits Limits) (*DFA, error) {
	augmented := re.Concat(root, re.Char(termByte))
	tables := re.Annotate(augmented)
	termLeaf := augmented.Children[1].Leaf

	d := &DFA{}
	interned := make(map[string]StateID)
	type pending struct {
		id  StateID
		set *sparse.Set
	}

	start := augmented.FirstPos.Clone()
	startID := d.addState()
	interned[start.Key()] = startID
	queue := []pending{{startID, start}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.set.Contains(uint32(termLeaf)) {
			d.Nodes[cur.id].Terminal = id
		}

		groups := make(map[byte]*sparse.Set)
		cur.set.Iter(func(p uint32) {
			if re.LeafID(p) == termLeaf {
				return
			}
			b := tables.LeafPos[re.LeafID(p)]
			g, ok := groups[b]
			if !ok {
				g = sparse.New(uint32(tables.LeafCount))
				groups[b] = g
			}
			g.Union(tables.FollowPos[re.LeafID(p)])
		})

		for b, u := range groups {
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
