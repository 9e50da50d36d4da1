package render

import (
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/cantor-lang/refa/re"
)

// ExportLatex writes expr.ToLatex() to w.
func ExportLatex(w io.Writer, expr *re.RE) error {
	_, err := io.WriteString(w, expr.ToLatex())
	return err
}

// RenderLatexPDF writes expr's LaTeX document to <outDir>/<name>.tex and
// compiles it with pdflatex, run twice since pdflatex sometimes needs a
// second pass to settle cross-references. Auxiliary files (.aux/.log/.out/
// .toc) are removed afterward; the pdflatex binary must already be on PATH.
func RenderLatexPDF(expr *re.RE, outDir, name string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	texPath := filepath.Join(outDir, name+".tex")
	f, err := os.Create(texPath)
	if err != nil {
		return err
	}
	if err := ExportLatex(f, expr); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	for i := 0; i < 2; i++ {
		cmd := exec.Command("pdflatex", "-output-directory="+outDir, texPath)
		cmd.Stdout = nil
		cmd.Stderr = nil
		if err := cmd.Run(); err != nil {
			return err
		}
	}

	for _, ext := range []string{".aux", ".log", ".out", ".toc"} {
		os.Remove(filepath.Join(outDir, name+ext))
	}
	return nil
}
