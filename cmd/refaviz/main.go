package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cantor-lang/refa/automaton"
	"github.com/cantor-lang/refa/convert"
	"github.com/cantor-lang/refa/re"
	"github.com/cantor-lang/refa/render"
)

func main() {
	pattern := flag.String("re", "", "regular expression, concrete syntax (required)")
	lnfaFlag := flag.Bool("lnfa", false, "export the Thompson lambda-NFA")
	nfaFlag := flag.Bool("nfa", false, "export the lambda-free NFA")
	dfaFlag := flag.Bool("dfa", false, "export the subset-construction DFA")
	outFile := flag.String("o", "graph.dot", "output file, or '-' for stdout")
	pngFlag := flag.Bool("png", false, "also render a PNG via `dot -Tpng` (requires dot on PATH)")
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: refaviz -re <pattern> [-lnfa|-nfa|-dfa] [-o file] [-png]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	fa, err := buildStage(*pattern, *lnfaFlag, *nfaFlag, *dfaFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if *pngFlag {
		pngFile := *outFile
		if pngFile == "-" || pngFile == "graph.dot" {
			pngFile = "graph.png"
		}
		if err := render.RenderDotPNG(fa, *outFile, pngFile); err != nil {
			fmt.Fprintf(os.Stderr, "dot failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("PNG written to %s\n", pngFile)
		return
	}

	w := os.Stdout
	if *outFile != "-" {
		f, err := os.Create(*outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot create %s: %v\n", *outFile, err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	if err := render.ExportDot(w, fa); err != nil {
		fmt.Fprintf(os.Stderr, "export: %v\n", err)
		os.Exit(1)
	}
	if *outFile != "-" {
		fmt.Printf("DOT written to %s\n", *outFile)
	}
}

// buildStage parses pattern and runs it through the pipeline up to whichever
// stage the caller asked for, defaulting to the minimal DFA.
func buildStage(pattern string, lnfaOnly, nfaOnly, dfaOnly bool) (*automaton.FA, error) {
	expr, err := re.FromExpressionString(pattern)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	lnfa, err := convert.Re2Lnfa(expr)
	if err != nil {
		return nil, fmt.Errorf("re2lnfa: %w", err)
	}
	if lnfaOnly {
		return lnfa, nil
	}

	nfa, err := convert.Lnfa2Nfa(lnfa)
	if err != nil {
		return nil, fmt.Errorf("lnfa2nfa: %w", err)
	}
	if nfaOnly {
		return nfa, nil
	}

	dfa, err := convert.Nfa2Dfa(nfa)
	if err != nil {
		return nil, fmt.Errorf("nfa2dfa: %w", err)
	}
	if dfaOnly {
		return dfa, nil
	}

	minDfa, err := convert.Dfa2MinDfa(dfa)
	if err != nil {
		return nil, fmt.Errorf("dfa2mindfa: %w", err)
	}
	return minDfa, nil
}
