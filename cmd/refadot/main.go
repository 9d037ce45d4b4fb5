// Command refadot renders a regex pattern's AST, Thompson NFA, or
// minimized DFA as Graphviz DOT, for visual inspection of the compilation
// pipeline. It is a read-only collaborator: it never mutates the core
// library's types, only walks them.
package main

import (
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/refaengine/refa/dfa"
	"github.com/refaengine/refa/nfa"
	"github.com/refaengine/refa/re"
)

type options struct {
	Regex   string
	Type    string
	Output  string
	Verbose bool
}

func parseFlags() *options {
	opts := &options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Render a regex pattern's AST, NFA, or minimized DFA as Graphviz DOT.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Regex, "regex", "re", "", "regex pattern to compile"),
		flagSet.StringVarP(&opts.Type, "type", "t", "dfa", "automaton to render: ast, nfa, or dfa"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file (default stdout)"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "annotate AST nodes with nullable/firstpos/lastpos"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s\n", err)
	}

	if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	if opts.Regex == "" {
		gologger.Fatal().Msgf("-regex is required")
	}
	switch opts.Type {
	case "ast", "nfa", "dfa":
	default:
		gologger.Fatal().Msgf("invalid -type %q: must be ast, nfa, or dfa", opts.Type)
	}

	return opts
}

func main() {
	opts := parseFlags()

	root, err := re.Parse([]byte(opts.Regex))
	if err != nil {
		gologger.Fatal().Msgf("parse failed: %v", err)
	}

	out := os.Stdout
	if opts.Output != "" {
		f, err := os.OpenFile(opts.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			gologger.Fatal().Msgf("could not open %s: %v", opts.Output, err)
		}
		defer f.Close()
		out = f
	}

	switch opts.Type {
	case "ast":
		if opts.Verbose {
			re.Annotate(root)
		}
		writeDotAST(out, root, opts.Verbose)

	case "nfa":
		n := nfa.CompileAST(root, 0)
		gologger.Debug().Msgf("compiled NFA with %d states", n.NumStates())
		writeDotNFA(out, n)

	case "dfa":
		d, err := dfa.BuildFromAST(root, 0)
		if err != nil {
			gologger.Fatal().Msgf("direct DFA build failed: %v", err)
		}
		d.Minimize()
		gologger.Debug().Msgf("minimized DFA has %d states", d.NumStates())
		writeDotDFA(out, d)
	}
}
