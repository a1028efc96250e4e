package viz

import "github.com/charmbracelet/lipgloss"

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// elementSymbols maps the atomic numbers the sandbox cares about to their
// one-letter canvas glyphs; everything else renders as '@'.
var elementSymbols = map[int]rune{
	1:  'H',
	2:  'e',
	7:  'N',
	8:  'O',
	92: 'U',
}

func symbolFor(atomicNumber int) rune {
	if r, ok := elementSymbols[atomicNumber]; ok {
		return r
	}
	return '@'
}
