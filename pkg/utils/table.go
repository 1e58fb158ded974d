package utils

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

// Table writes a bordered text table to w
type Table struct {
	w      io.Writer
	widths []int
}

// NewTable creates a table with fixed column widths
func NewTable(w io.Writer, widths ...int) *Table {
	return &Table{w: w, widths: widths}
}

// Header prints the table header
func (t *Table) Header(headers ...string) {
	styled := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = headerStyle.Render(h)
	}
	t.line()
	t.row(styled)
	t.line()
}

// Row prints a table row
func (t *Table) Row(values ...string) {
	t.row(values)
}

// Footer prints the table footer
func (t *Table) Footer() {
	t.line()
}

func (t *Table) line() {
	var b strings.Builder
	b.WriteString("+")
	for _, w := range t.widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteString("+")
	}
	fmt.Fprintln(t.w, b.String())
}

func (t *Table) row(values []string) {
	var b strings.Builder
	b.WriteString("|")
	for i, w := range t.widths {
		val := ""
		if i < len(values) {
			val = values[i]
		}
		if lipgloss.Width(val) > w {
			val = truncate(val, w-2) + ".."
		}
		pad := w - lipgloss.Width(val)
		if pad < 0 {
			pad = 0
		}
		b.WriteString(" " + val + strings.Repeat(" ", pad) + " |")
	}
	fmt.Fprintln(t.w, b.String())
}

func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen])
}

// ColumnWidths sizes each column to its widest cell, capped at limit
func ColumnWidths(limit int, rows ...[]string) []int {
	var widths []int
	for _, r := range rows {
		for i, cell := range r {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] > limit {
			widths[i] = limit
		}
	}
	return widths
}
