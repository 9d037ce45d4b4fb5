package nfa

import "github.com/refaengine/refa/re"

// fragment is a compiled sub-expression: its own start and end state. Only
// the end state of the *whole* expression is ever marked accepting; a
// fragment's end is wired (via ε) into whatever follows it.
type fragment struct {
	start, end StateID
}

// compiler recursively compiles a re.Node into NFA fragments (Aho Alg. 3.23).
type compiler struct {
	b *Builder
}

func (c *compiler) compile(n *re.Node) fragment {
	switch n.Kind {
	case re.KindEps:
		start, end := c.b.AddState(), c.b.AddState()
		c.b.AddEps(start, end)
		return fragment{start, end}

	case re.KindChar:
		start, end := c.b.AddState(), c.b.AddState()
		c.b.AddByte(start, n.Byte, end)
		return fragment{start, end}

	case re.KindKleene:
		start := c.b.AddState()
		inner := c.compile(n.Child)
		end := c.b.AddState()
		c.b.AddEps(start, inner.start)
		c.b.AddEps(start, end)
		c.b.AddEps(inner.end, inner.start)
		c.b.AddEps(inner.end, end)
		return fragment{start, end}

	case re.KindConcat:
		if len(n.Children) == 0 {
			start, end := c.b.AddState(), c.b.AddState()
			c.b.AddEps(start, end)
			return fragment{start, end}
		}
		first := c.compile(n.Children[0])
		prevEnd := first.end
		for _, child := range n.Children[1:] {
			f := c.compile(child)
			c.b.AddEps(prevEnd, f.start)
			prevEnd = f.end
		}
		return fragment{first.start, prevEnd}

	case re.KindDisjunction:
		start, end := c.b.AddState(), c.b.AddState()
		if len(n.Children) == 0 {
			// Matches nothing: start has no outgoing edges at all.
			return fragment{start, end}
		}
		for _, child := range n.Children {
			f := c.compile(child)
			c.b.AddEps(start, f.start)
			c.b.AddEps(f.end, end)
		}
		return fragment{start, end}

	default:
		panic("nfa: unknown re.Kind")
	}
}

// CompileAST compiles a single regex AST into a Thompson NFA whose sole
// accepting state carries token id.
func CompileAST(root *re.Node, id uint32) *NFA {
	b := NewBuilder()
	c := &compiler{b: b}
	f := c.compile(root)
	b.SetTerminal(f.end, id)
	return b.Build()
}

// CompilePatterns compiles multiple regex patterns into one lexer-mode
// union NFA: a fresh start state ε-fans-out to each pattern's own Thompson
// fragment, so the result has one accepting state per pattern, each
// carrying its ids[i]. ids must be the same length as asts, and need not
// be 0..k-1 (lexer priority is by ids[i]'s numeric value, see package dfa).
func CompilePatterns(asts []*re.Node, ids []uint32) *NFA {
	if len(asts) != len(ids) {
		panic("nfa: asts and ids must have the same length")
	}
	b := NewBuilder()
	start := b.AddState()
	for i, root := range asts {
		c := &compiler{b: b}
		f := c.compile(root)
		b.AddEps(start, f.start)
		b.SetTerminal(f.end, ids[i])
	}
	return b.Build()
}
