package lexer

import (
	"fmt"

	"github.com/coregx/ahocorasick"
	"github.com/refaengine/refa/re"
)

// ErrNotLiteral indicates BuildLiteralAccelerator was asked to accelerate a
// pattern set containing at least one non-literal rule (a Kleene or
// Disjunction anywhere in its AST).
var ErrNotLiteral = fmt.Errorf("lexer: pattern set contains a non-literal rule")

// BuildLiteralAccelerator builds a github.com/coregx/ahocorasick Automaton
// over a pattern set, following coregx's meta/compile.go construction for
// its UseAhoCorasick strategy (NewBuilder / AddPattern / Build). It
// succeeds only when every rule's pattern is a pure literal — a Concat of
// plain Char leaves, no Kleene or Disjunction anywhere in its AST — and
// returns ErrNotLiteral otherwise.
//
// The automaton is an optional accelerator for a cheap yes/no literal-set
// membership pre-check (IsMatch) before falling back to the canonical
// minimized lexer DFA for the authoritative, priority-correct answer: it
// never replaces dfa.DFA.Accept as the source of truth for which rule (and
// thus which token id) matched.
func BuildLiteralAccelerator(rules []Rule) (*ahocorasick.Automaton, error) {
	builder := ahocorasick.NewBuilder()
	for _, r := range rules {
		root, err := re.Parse(r.Pattern)
		if err != nil {
			return nil, err
		}
		lit, ok := literalBytes(root)
		if !ok {
			return nil, ErrNotLiteral
		}
		builder.AddPattern(lit)
	}
	return builder.Build()
}

// literalBytes returns the exact byte string n recognizes if n's AST
// contains no Kleene or Disjunction node (i.e. it matches exactly one
// string), and false otherwise.
func literalBytes(n *re.Node) ([]byte, bool) {
	switch n.Kind {
	case re.KindEps:
		return nil, true
	case re.KindChar:
		return []byte{n.Byte}, true
	case re.KindConcat:
		var out []byte
		for _, c := range n.Children {
			b, ok := literalBytes(c)
			if !ok {
				return nil, false
			}
			out = append(out, b...)
		}
		return out, true
	default: // KindKleene, KindDisjunction
		return nil, false
	}
}
