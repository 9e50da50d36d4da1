package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cantor-lang/refa/automaton"
	"github.com/cantor-lang/refa/convert"
	"github.com/cantor-lang/refa/equiv"
	"github.com/cantor-lang/refa/re"
	"github.com/cantor-lang/refa/render"
)

func main() {
	expr, err := re.FromExpressionString("a(b+c)*d")
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	dfa, err := toMinDfa(expr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println(dfa)

	f, err := os.Create("dfa.dot")
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := render.ExportDot(f, dfa); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println("dfa.dot written (run: dot -Tpng dfa.dot -o dfa.png)")

	rdr := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("pattern> ")
		pat, err := rdr.ReadString('\n')
		if err != nil || len(pat) <= 1 {
			break
		}
		pat = pat[:len(pat)-1]

		candidate, err := re.FromExpressionString(pat)
		if err != nil {
			fmt.Println("parse error:", err)
			continue
		}
		candidateDfa, err := toMinDfa(candidate)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}

		equal, err := equiv.LanguageEquivalent(dfa, candidateDfa)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Printf("language-equivalent to a(b+c)*d: %v\n", equal)

		fmt.Print("text> ")
		word, err := rdr.ReadString('\n')
		if err != nil {
			break
		}
		word = word[:len(word)-1]

		matched, err := automaton.Matches(candidateDfa, word)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println("matches:", matched)
	}
}

func toMinDfa(expr *re.RE) (*automaton.FA, error) {
	lnfa, err := convert.Re2Lnfa(expr)
	if err != nil {
		return nil, err
	}
	nfa, err := convert.Lnfa2Nfa(lnfa)
	if err != nil {
		return nil, err
	}
	dfa, err := convert.Nfa2Dfa(nfa)
	if err != nil {
		return nil, err
	}
	return convert.Dfa2MinDfa(dfa)
}
