package lexer

import (
	"testing"

	"github.com/refaengine/refa/re"
)

func mustParse(t *testing.T, pattern string) *re.Node {
	t.Helper()
	root, err := re.Parse([]byte(pattern))
	if err != nil {
		t.Fatalf("re.Parse(%q) failed: %v", pattern, err)
	}
	return root
}

func TestBuildLiteralAccelerator_Agreement(t *testing.T) {
	rules := []Rule{
		{Pattern: []byte("select"), ID: 0},
		{Pattern: []byte("insert"), ID: 1},
		{Pattern: []byte("update"), ID: 2},
	}
	auto, err := BuildLiteralAccelerator(rules)
	if err != nil {
		t.Fatalf("BuildLiteralAccelerator: %v", err)
	}
	d, err := Build(rules)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, s := range []string{"select", "insert", "update", "delete", "", "sel"} {
		_, dfaOK := d.Accept([]byte(s))
		acOK := auto.IsMatch([]byte(s))
		if dfaOK != acOK {
			t.Errorf("%q: dfa.Accept ok=%v, automaton.IsMatch=%v (must agree per property 9)", s, dfaOK, acOK)
		}
	}
}

func TestBuildLiteralAccelerator_RejectsNonLiteral(t *testing.T) {
	_, err := BuildLiteralAccelerator([]Rule{{Pattern: []byte("a+"), ID: 0}})
	if err != ErrNotLiteral {
		t.Errorf("expected ErrNotLiteral, got %v", err)
	}
}

func TestLiteralBytes(t *testing.T) {
	for _, tt := range []struct {
		pattern string
		want    string
		ok      bool
	}{
		{"abc", "abc", true},
		{"", "", true},
		{"a*", "", false},
		{"a|b", "", false},
		{"a+", "", false},
	} {
		root := mustParse(t, tt.pattern)
		b, ok := literalBytes(root)
		if ok != tt.ok {
			t.Errorf("%q: ok = %v, want %v", tt.pattern, ok, tt.ok)
			continue
		}
		if ok && string(b) != tt.want {
			t.Errorf("%q: literalBytes = %q, want %q", tt.pattern, b, tt.want)
		}
	}
}
