package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bawdo/sqldrill/exercise"
	"github.com/bawdo/sqldrill/highlight"
	"github.com/bawdo/sqldrill/lex"
	"github.com/bawdo/sqldrill/trainer"
)

// presenter renders all session output to a writer. It holds styles but no
// state; the machine never reads anything back from it.
type presenter struct {
	out io.Writer

	title    lipgloss.Style
	label    lipgloss.Style
	errStyle lipgloss.Style
	hint     lipgloss.Style
	counter  lipgloss.Style
	sqlAttrs map[lex.Kind]lipgloss.Style
}

var _ trainer.Presenter = (*presenter)(nil)

func newPresenter(out io.Writer) *presenter {
	return &presenter{
		out:      out,
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		label:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		errStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		counter:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		sqlAttrs: map[lex.Kind]lipgloss.Style{
			lex.Keyword:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
			lex.String:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			lex.Number:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
			lex.Operator: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			lex.Comment:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		},
	}
}

func (p *presenter) sqlAttr(k lex.Kind) lipgloss.Style {
	if s, ok := p.sqlAttrs[k]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// renderSQL colors a SQL string through the same highlighter the editor
// uses, with lipgloss attributes instead of tcell styles.
func (p *presenter) renderSQL(sql string) string {
	var b strings.Builder
	for _, span := range highlight.Spans(sql, p.sqlAttr) {
		b.WriteString(span.Attr.Render(highlight.Text(sql, span)))
	}
	return b.String()
}

func (p *presenter) ShowCounter(shown, total int) {
	fmt.Fprintf(p.out, "\n%s\n", p.counter.Render(fmt.Sprintf("— Exercise %d of %d —", shown, total)))
}

func (p *presenter) ShowPrompt(rec exercise.Record) {
	fmt.Fprintf(p.out, "%s\n", p.title.Render(rec.Prompt))
	fmt.Fprintf(p.out, "%s\n", p.label.Render(fmt.Sprintf(
		"difficulty: %s   tables: %s   concepts: %s",
		rec.Difficulty, strings.Join(rec.Tables, ", "), strings.Join(rec.Concepts, ", "))))
}

func (p *presenter) ShowResult(res *trainer.Result) {
	fmt.Fprint(p.out, formatTable(res.Columns, res.Rows))
	if res.Truncated {
		fmt.Fprintf(p.out, "(truncated at %d rows)\n", maxRows)
	}
}

func (p *presenter) ShowError(msg string) {
	fmt.Fprintf(p.out, "%s\n", p.errStyle.Render("Error: "+msg))
}

func (p *presenter) ShowSolution(sql string) {
	fmt.Fprintf(p.out, "\n%s\n%s\n", p.label.Render("Reference solution:"), p.renderSQL(sql))
}

func (p *presenter) ShowHint(hint string) {
	fmt.Fprintf(p.out, "%s\n", p.hint.Render("Hint: "+hint))
}

func (p *presenter) ShowSchema(table string, columns []string) {
	if len(columns) == 0 {
		fmt.Fprintf(p.out, "%s: (no columns found)\n", table)
		return
	}
	fmt.Fprintf(p.out, "%s: %s\n", p.title.Render(table), strings.Join(columns, ", "))
}

// formatTable renders a psql-style ASCII table with a row-count footer.
func formatTable(columns []string, rows [][]string) string {
	if len(columns) == 0 {
		return "(0 rows)\n"
	}

	// Widths are terminal display widths, not byte counts, so multibyte and
	// wide characters keep the columns aligned.
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = runewidth.StringWidth(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	sep := separatorLine(widths)

	b.WriteString(sep)
	writeRow(&b, columns, widths)
	b.WriteString(sep)
	for _, row := range rows {
		writeRow(&b, row, widths)
	}
	b.WriteString(sep)

	if n := len(rows); n == 1 {
		b.WriteString("(1 row)\n")
	} else {
		fmt.Fprintf(&b, "(%d rows)\n", n)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	b.WriteByte('|')
	for i, cell := range cells {
		pad := widths[i] - runewidth.StringWidth(cell)
		b.WriteString(" " + cell + strings.Repeat(" ", pad) + " |")
	}
	b.WriteByte('\n')
}

func separatorLine(widths []int) string {
	var b strings.Builder
	b.WriteByte('+')
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteByte('+')
	}
	b.WriteByte('\n')
	return b.String()
}
