package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Terminal styles for the per-invocation report. lipgloss degrades these to
// plain text when stdout is not a terminal.
var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func reportDone(w io.Writer, outDir string) {
	fmt.Fprintf(w, "%s release written to %s\n", okStyle.Render("ok"), pathStyle.Render(outDir))
}

func reportFail(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", failStyle.Render("failed"), err)
}

func reportValidated(w io.Writer, family string, count int) {
	fmt.Fprintf(w, "%s %-20s %s\n", okStyle.Render("ok"), family, dimStyle.Render(fmt.Sprintf("%d workflow(s)", count)))
}

func reportStyles(w io.Writer, family string, names []string) {
	fmt.Fprintf(w, "%s\n", pathStyle.Render(family))
	for _, n := range names {
		fmt.Fprintf(w, "  - %s\n", n)
	}
	if len(names) == 0 {
		fmt.Fprintln(w, dimStyle.Render("  (no styles declared)"))
	}
}
