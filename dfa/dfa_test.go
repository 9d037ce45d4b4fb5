package dfa

import "testing"

func TestAccept_EmptyInputReturnsStartState(t *testing.T) {
	d := &DFA{Nodes: []Node{{Terminal: 4}}}
	id, ok := d.Accept(nil)
	if !ok || id != 4 {
		t.Errorf("Accept(nil) = (%d,%v), want (4,true)", id, ok)
	}
}

func TestAccept_RejectsOnMissingEdge(t *testing.T) {
	d := &DFA{Nodes: []Node{{Terminal: NoTerminal, Edges: map[byte]StateID{'a': 1}}, {Terminal: 0}}}
	if _, ok := d.Accept([]byte("b")); ok {
		t.Errorf("Accept(b) should reject: no edge on 'b'")
	}
}

func TestIsAccepting(t *testing.T) {
	accepting := Node{Terminal: 0}
	nonAccepting := Node{Terminal: NoTerminal}
	if !accepting.IsAccepting() {
		t.Error("expected accepting node to report IsAccepting() == true")
	}
	if nonAccepting.IsAccepting() {
		t.Error("expected non-accepting node to report IsAccepting() == false")
	}
}
