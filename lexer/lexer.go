// Package lexer provides a multi-pattern convenience wrapper over the
// Thompson NFA builder and subset construction, plus an optional
// Aho-Corasick literal fast-path accelerator for pattern sets that are
// pure literals.
package lexer

import (
	"github.com/refaengine/refa/dfa"
	"github.com/refaengine/refa/nfa"
	"github.com/refaengine/refa/re"
)

// Rule is one lexer pattern: its source bytes and the token id it produces
// on match. Lower ids win ties per §4.5's priority-by-rule-index rule, so
// callers ordering rules most-specific-first get the expected precedence.
type Rule struct {
	Pattern []byte
	ID      uint32
}

// Build parses every rule's pattern, compiles the union into one Thompson
// NFA (§4.4's lexer-mode union), runs subset construction (§4.5), and
// minimizes (§4.7) — the canonical, priority-correct multi-pattern DFA.
func Build(rules []Rule) (*dfa.DFA, error) {
	asts := make([]*re.Node, len(rules))
	ids := make([]uint32, len(rules))
	for i, r := range rules {
		root, err := re.Parse(r.Pattern)
		if err != nil {
			return nil, err
		}
		asts[i] = root
		ids[i] = r.ID
	}
	n := nfa.CompilePatterns(asts, ids)
	d, err := dfa.FromNFA(n)
	if err != nil {
		return nil, err
	}
	d.Minimize()
	return d, nil
}
