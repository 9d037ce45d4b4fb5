package dfa

import "testing"

func TestMinimize_PreservesLanguage(t *testing.T) {
	patterns := []string{"a*b", "(a|b)*abb", "[0-9]+", "a+|b+", "a?b?c?", "(ab)*"}
	probes := []string{"", "a", "b", "ab", "aabb", "abb", "aaabb", "1234", "abc", "ababab"}

	for _, p := range patterns {
		d := mustBuild(t, mustParse(t, p), 0)
		before := make(map[string]bool, len(probes))
		for _, s := range probes {
			_, ok := d.Accept([]byte(s))
			before[s] = ok
		}
		d.Minimize()
		for _, s := range probes {
			_, ok := d.Accept([]byte(s))
			if ok != before[s] {
				t.Errorf("%q: Accept(%q) changed after Minimize: was %v, now %v", p, s, before[s], ok)
			}
		}
	}
}

func TestMinimize_Idempotent(t *testing.T) {
	d := mustBuild(t, mustParse(t, "(a|b)*abb"), 0)
	d.Minimize()
	n1 := len(d.Nodes)
	d.Minimize()
	n2 := len(d.Nodes)
	if n1 != n2 {
		t.Errorf("minimize not idempotent: %d states then %d", n1, n2)
	}
}

func TestMinimize_NoDeadOrDuplicateStatesRemain(t *testing.T) {
	d := mustBuild(t, mustParse(t, "(a|b)*abb"), 0)
	d.Minimize()
	if !validateEdges(d) {
		t.Fatal("minimized DFA has an out-of-range edge")
	}
	// The minimal DFA for (a|b)*abb has exactly 4 states; any more would
	// mean two equivalent states survived.
	if len(d.Nodes) != 4 {
		t.Errorf("minimized (a|b)*abb has %d states, want 4", len(d.Nodes))
	}
	// Every state must be able to reach acceptance (RemoveDeadState ran as
	// the final step of Minimize).
	d2 := &DFA{Nodes: append([]Node(nil), d.Nodes...)}
	before := len(d2.Nodes)
	d2.RemoveDeadState()
	if len(d2.Nodes) != before {
		t.Errorf("minimized DFA still had dead states: %d -> %d", before, len(d2.Nodes))
	}
}

func TestMinimize_KeepsDistinctTerminalsOfSeparateDFAs(t *testing.T) {
	// Two separately built DFAs with the same shape must remain
	// distinguishable by id after each is minimized on its own.
	d1 := mustBuild(t, mustParse(t, "a+"), 0)
	d2 := mustBuild(t, mustParse(t, "a+"), 1)
	d1.Minimize()
	d2.Minimize()
	id1, _ := d1.Accept([]byte("aaa"))
	id2, _ := d2.Accept([]byte("aaa"))
	if id1 == id2 {
		t.Fatalf("expected distinct terminal ids to survive independent minimization, got %d and %d", id1, id2)
	}
}
