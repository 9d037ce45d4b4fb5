// Package refa compiles regular-expression patterns into minimized
// deterministic finite automata over byte-valued inputs.
//
// Two compilation paths are provided and are language-equivalent: a direct
// path (McNaughton–Yamada–Thompson position construction, Aho §3.9.5,
// package dfa) and an indirect path (Thompson NFA construction, package
// nfa, followed by subset construction, package dfa). Both feed a common
// dead-state remover and Hopcroft-style partition-refinement minimizer.
//
// Multiple patterns can be combined into one lexer-mode automaton (package
// lexer) where each accepting state carries the token id of the rule whose
// match it terminates, with priority-by-rule-index tie-breaking.
//
// Basic usage:
//
//	d, err := refa.DFAFromPattern([]byte(`[0-9]+`), 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if id, ok := d.Accept([]byte("42")); ok {
//	    fmt.Println("matched rule", id)
//	}
package refa

import (
	"github.com/refaengine/refa/dfa"
	"github.com/refaengine/refa/nfa"
	"github.com/refaengine/refa/re"
)

// Parse parses pattern into an AST. See package re for the grammar and
// escape table.
func Parse(pattern []byte) (*re.Node, error) {
	return re.Parse(pattern)
}

// DFAFromAST builds a minimized DFA directly from an AST via position
// construction (§4.3), without an intermediate NFA. Accepting states carry
// id.
func DFAFromAST(root *re.Node, id uint32) (*dfa.DFA, error) {
	d, err := dfa.BuildFromAST(root, id)
	if err != nil {
		return nil, err
	}
	d.Minimize()
	return d, nil
}

// DFAFromPattern is the convenience composition of Parse and DFAFromAST:
// parse pattern, build the direct DFA, minimize.
func DFAFromPattern(pattern []byte, id uint32) (*dfa.DFA, error) {
	root, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	return DFAFromAST(root, id)
}

// NFAFromAST compiles an AST into a Thompson-construction NFA (§4.4).
// Accepting state carries id.
func NFAFromAST(root *re.Node, id uint32) *nfa.NFA {
	return nfa.CompileAST(root, id)
}

// NFAFromPatterns parses and compiles multiple patterns into one
// lexer-mode union NFA (§4.4's lexer-mode union): pattern i's accepting
// state carries ids[i]. len(patterns) must equal len(ids).
func NFAFromPatterns(patterns [][]byte, ids []uint32) (*nfa.NFA, error) {
	asts := make([]*re.Node, len(patterns))
	for i, p := range patterns {
		root, err := Parse(p)
		if err != nil {
			return nil, err
		}
		asts[i] = root
	}
	return nfa.CompilePatterns(asts, ids), nil
}

// DFAFromNFA runs subset construction (§4.5) over n, then minimizes.
func DFAFromNFA(n *nfa.NFA) (*dfa.DFA, error) {
	d, err := dfa.FromNFA(n)
	if err != nil {
		return nil, err
	}
	d.Minimize()
	return d, nil
}
