package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/pavanmanishd/vector"
	"github.com/pavanmanishd/vector/internal/script"
)

var (
	opStyle      = lipgloss.NewStyle().Bold(true)
	stateStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	outputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	reallocStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	summaryStyle = lipgloss.NewStyle().Faint(true)
)

// renderStep formats one replayed instruction. state is the vector after it.
func renderStep(s script.Step, state string) string {
	op := opStyle.Render(fmt.Sprintf("%-14s", s.Instr))
	if !s.Instr.Op.Mutates() {
		return op + outputStyle.Render("-> "+s.Output)
	}

	line := op + stateStyle.Render(state) + fmt.Sprintf(" size=%d cap=%d", s.Size, s.Capacity)
	if s.Output != "" {
		line += " " + outputStyle.Render(s.Output)
	}
	if s.Reallocated {
		line += " " + reallocStyle.Render("realloc")
	}
	return line
}

// renderSummary formats the final statistics of a run.
func renderSummary(m vector.VectorMetrics) string {
	return summaryStyle.Render(fmt.Sprintf("size=%d cap=%d reallocations=%d moves=%d utilization=%.1f%%",
		m.Size, m.Capacity, m.Reallocations, m.ElementMoves, m.Utilization*100))
}
