package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cantor-lang/refa/re"
	"github.com/cantor-lang/refa/render"
)

func TestExportLatexWritesDocument(t *testing.T) {
	expr := re.Star(re.Char('a'))

	var buf strings.Builder
	require.NoError(t, render.ExportLatex(&buf, expr))

	out := buf.String()
	assert.Contains(t, out, "\\documentclass{article}")
	assert.Contains(t, out, "a^*")
}
