// Package ux renders index results for the console.
package ux

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"shortlist/pkg/common"
	"shortlist/pkg/config"

	"github.com/charmbracelet/lipgloss"
)

const EmptyMessage = "No candidates found."

// Table writes titled record listings to one writer.
type Table struct {
	out    io.Writer
	widths config.DisplayConfig

	title  lipgloss.Style
	header lipgloss.Style
	muted  lipgloss.Style
	notice lipgloss.Style
}

// NewTable styles output for w; colors are dropped when w is not a terminal.
func NewTable(w io.Writer, widths config.DisplayConfig) *Table {
	r := lipgloss.NewRenderer(w)
	return &Table{
		out:    w,
		widths: widths,
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#14B8A6")),
		header: r.NewStyle().Bold(true),
		muted:  r.NewStyle().Foreground(lipgloss.Color("#64748B")),
		notice: r.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
	}
}

// Render prints title, an underline and either the records or EmptyMessage.
func (t *Table) Render(title string, recs []common.Record) {
	fmt.Fprintf(t.out, "\n%s\n%s\n", t.title.Render(title), strings.Repeat("=", utf8.RuneCountInString(title)))
	if len(recs) == 0 {
		fmt.Fprintln(t.out, t.notice.Render(EmptyMessage))
		return
	}

	fmt.Fprintln(t.out, t.header.Render(t.row("Name", "Skill", "Score")))
	fmt.Fprintln(t.out, t.muted.Render(strings.Repeat("-", t.ruleWidth())))
	for _, rec := range recs {
		fmt.Fprintln(t.out, t.row(rec.Name, rec.Tag, fmt.Sprint(rec.Score)))
	}
	fmt.Fprintf(t.out, "\n%s\n", t.muted.Render(fmt.Sprintf("Total candidates: %d", len(recs))))
}

func (t *Table) row(name, tag, score string) string {
	return fmt.Sprintf("%-*s%-*s%-*s", t.widths.NameWidth, name, t.widths.TagWidth, tag, t.widths.ScoreWidth, score)
}

func (t *Table) ruleWidth() int {
	return t.widths.NameWidth + t.widths.TagWidth + t.widths.ScoreWidth + 4
}

// Success prints a confirmation line.
func (t *Table) Success(msg string) {
	fmt.Fprintf(t.out, "\n%s\n", t.title.Render(msg))
}

// Notice prints a warning line.
func (t *Table) Notice(msg string) {
	fmt.Fprintln(t.out, t.notice.Render(msg))
}
