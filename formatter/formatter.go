// Package formatter renders build results for humans: the assembled
// program text plus a table of snapshot labels and the specification
// instances recorded under them.
package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/dinanoe/silicon/internal/build"
	"github.com/dinanoe/silicon/sil"
)

var (
	headerStyle = color.New(color.FgCyan, color.Bold)
	labelStyle  = color.New(color.FgYellow, color.Bold)
	roleStyle   = color.New(color.FgGreen)
	dimStyle    = color.New(color.FgWhite)
)

// Format renders a program and its snapshot context.
func Format(prog *sil.Program, ctx *build.Context) string {
	var b strings.Builder

	b.WriteString(headerStyle.Sprint("=== check program ===") + "\n")
	b.WriteString(prog.String())
	b.WriteString("\n")
	b.WriteString(headerStyle.Sprint("=== snapshots ===") + "\n")
	b.WriteString(FormatContext(ctx))

	return b.String()
}

// FormatContext renders the snapshot index alone, one line per record.
func FormatContext(ctx *build.Context) string {
	if ctx.Len() == 0 {
		return dimStyle.Sprint("(no snapshots)") + "\n"
	}
	var b strings.Builder
	for _, label := range ctx.Labels() {
		for _, rec := range ctx.At(label) {
			args := make([]string, len(rec.Instance.Args))
			for i, a := range rec.Instance.Args {
				args[i] = a.Name
			}
			b.WriteString(fmt.Sprintf("%s  %s  %s(%s)  %s\n",
				labelStyle.Sprint(label),
				roleStyle.Sprint(rec.Role.String()),
				rec.Instance.Predicate,
				strings.Join(args, ", "),
				dimStyle.Sprintf("%d atoms", len(rec.Instance.Atoms)),
			))
		}
	}
	return b.String()
}
