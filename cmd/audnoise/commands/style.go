// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	primary = lipgloss.Color("#00ff9f")
	dim     = lipgloss.Color("#6e7681")
	danger  = lipgloss.Color("#ff5f87")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(primary)
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(primary).Width(14)
	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	barStyle     = lipgloss.NewStyle().Foreground(primary)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(primary)
	warnStyle    = lipgloss.NewStyle().Foreground(danger)
)

// renderBar draws a bar of width cells, fraction of them filled.
func renderBar(fraction float64, width int) string {
	fraction = min(max(fraction, 0), 1)
	filled := int(math.Round(fraction * float64(width)))
	return barStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", width-filled))
}

// progressBar redraws itself in place on w.
type progressBar struct {
	w     io.Writer
	width int
	shown bool
}

func newProgressBar(w io.Writer, width int) *progressBar {
	return &progressBar{w: w, width: width}
}

func (p *progressBar) Update(fraction float64) {
	fmt.Fprintf(p.w, "\r%s %3.0f%%", renderBar(fraction, p.width), fraction*100)
	p.shown = true
}

// Done ends the progress line if anything was drawn.
func (p *progressBar) Done() {
	if p.shown {
		fmt.Fprintln(p.w)
		p.shown = false
	}
}

// renderFields lays out label/value rows under a title.
func renderFields(title string, fields [][2]string) string {
	lines := []string{titleStyle.Render(title)}
	for _, f := range fields {
		lines = append(lines, labelStyle.Render(f[0])+f[1])
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, successStyle.Render("✓")+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, warnStyle.Render("!")+" "+fmt.Sprintf(format, args...))
}
