// Package render exports automata and regular expressions to the external
// formats the rest of the pipeline is inspected through: Graphviz DOT and
// standalone LaTeX documents, both optionally rendered to an image/PDF by
// shelling out to the corresponding tool.
package render

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/cantor-lang/refa/automaton"
)

// ExportDot writes a's Graphviz representation to w: a left-to-right digraph
// with an invisible point node feeding the start state, accepting states
// drawn with extra penwidth, and one label per (start, end) pair listing
// every letter that transitions between them.
func ExportDot(w io.Writer, a *automaton.FA) error {
	var b strings.Builder

	b.WriteString("digraph FiniteAutomata {\n")
	b.WriteString("\trankdir=LR;\n")
	b.WriteString("\tnodesep=1.0;\n")
	b.WriteString("\tranksep=1.0;\n")
	b.WriteString("\t\"$\" [shape=point, style=invis, width=0];\n")
	fmt.Fprintf(&b, "\t\"$\" -> %q;\n", a.Start())

	for _, s := range a.Accepting() {
		fmt.Fprintf(&b, "\t%q [penwidth=5];\n", s)
	}

	type parallel struct {
		from, to string
	}
	parallelEdges := make(map[parallel][]automaton.Letter)
	for _, s := range a.States() {
		for _, letter := range a.OutgoingLetters(s) {
			for _, to := range a.TransitionOn(s, letter) {
				key := parallel{from: s, to: to}
				parallelEdges[key] = append(parallelEdges[key], letter)
			}
		}
	}

	keys := make([]parallel, 0, len(parallelEdges))
	for k := range parallelEdges {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].from != keys[j].from {
			return keys[i].from < keys[j].from
		}
		return keys[i].to < keys[j].to
	})

	for _, k := range keys {
		letters := parallelEdges[k]
		labels := make([]string, len(letters))
		for i, l := range letters {
			labels[i] = l.String()
		}
		sort.Strings(labels)
		fmt.Fprintf(&b, "\t%q -> %q [label=%q];\n", k.from, k.to, strings.Join(labels, ","))
	}

	b.WriteString("}")

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderDotPNG writes a's DOT export to dotPath, then shells out to
// `dot -Tpng` to render it into pngPath. The Graphviz binary must already be
// on PATH.
func RenderDotPNG(a *automaton.FA, dotPath, pngPath string) error {
	f, err := os.Create(dotPath)
	if err != nil {
		return err
	}
	if err := ExportDot(f, a); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	cmd := exec.Command("dot", "-Tpng", dotPath, "-o", pngPath)
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
