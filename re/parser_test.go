package re

import "testing"

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"empty", ""},
		{"literal", "abc"},
		{"alternation", "a|b|c"},
		{"kleene", "a*"},
		{"plus", "a+"},
		{"question", "a?"},
		{"group", "(ab)*"},
		{"nested_group", "(a(b|c)d)+"},
		{"any_byte", "a.b"},
		{"class", "[abc]"},
		{"class_range", "[a-z0-9]"},
		{"class_negated", "[^a-z]"},
		{"empty_class", "[]"},
		{"empty_group", "()"},
		{"escape_literal", `a\.b`},
		{"escape_digit", `\d+`},
		{"escape_word", `\w*`},
		{"escape_space", `a\sb`},
		{"dash_literal", "[a-]"},
		{"lone_dash", "[-abc]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.pattern)); err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.pattern, err)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantKnd ParseErrorKind
	}{
		{"unterminated_bracket", "[abc", UnterminatedBracket},
		{"unterminated_paren", "(abc", UnterminatedParen},
		{"stray_close_bracket", "abc]", StrayCloseBracket},
		{"stray_close_paren", "abc)", StrayCloseParen},
		{"empty_star", "*", EmptyQuantifier},
		{"empty_plus", "+", EmptyQuantifier},
		{"empty_question", "?", EmptyQuantifier},
		{"trailing_backslash", `a\`, IncompleteEscape},
		{"unknown_escape", `\q`, UnknownEscape},
		{"meta_in_class", `[a(b]`, UnsupportedMetaInClass},
		{"reversed_range", "[9-0]", InvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.pattern))
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got nil", tt.pattern)
			}
			pe, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("Parse(%q) error is %T, want *ParseError", tt.pattern, err)
			}
			if pe.Kind != tt.wantKnd {
				t.Errorf("Parse(%q) kind = %v, want %v", tt.pattern, pe.Kind, tt.wantKnd)
			}
		})
	}
}

func TestParse_CharClassContents(t *testing.T) {
	root, err := Parse([]byte("[ab]"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if root.Kind != KindConcat || len(root.Children) != 1 {
		t.Fatalf("expected single-atom Concat, got %+v", root)
	}
	dis := root.Children[0]
	if dis.Kind != KindDisjunction || len(dis.Children) != 2 {
		t.Fatalf("expected 2-way Disjunction, got %+v", dis)
	}
	seen := map[byte]bool{}
	for _, c := range dis.Children {
		if c.Kind != KindChar {
			t.Fatalf("expected Char children, got %v", c.Kind)
		}
		seen[c.Byte] = true
	}
	if !seen['a'] || !seen['b'] {
		t.Fatalf("expected {a, b}, got %v", seen)
	}
}

func TestParse_NegatedClassExcludes(t *testing.T) {
	root, err := Parse([]byte("[^a]"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	dis := root.Children[0]
	if len(dis.Children) != 255 {
		t.Fatalf("expected 255 bytes in negated class, got %d", len(dis.Children))
	}
	for _, c := range dis.Children {
		if c.Byte == 'a' {
			t.Fatalf("negated class should not contain 'a'")
		}
	}
}

func TestParse_PlusClonesSubtree(t *testing.T) {
	root, err := Parse([]byte("a+"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	// a+ => Concat(Char(a), Kleene(Clone(Char(a))))
	atom := root.Children[0]
	if atom.Kind != KindConcat || len(atom.Children) != 2 {
		t.Fatalf("expected Concat(Char, Kleene), got %+v", atom)
	}
	first := atom.Children[0]
	kleene := atom.Children[1]
	if first.Kind != KindChar || kleene.Kind != KindKleene {
		t.Fatalf("unexpected shape: %+v", atom)
	}
	if first == kleene.Child {
		t.Fatalf("expected distinct node instances from Clone, got shared pointer")
	}
}
