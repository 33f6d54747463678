package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// cellWidth is the number of terminal columns one grid cell occupies.
const cellWidth = 5

// levelStyles maps token values to styles. Crafted values above the base set
// walk up the same ramp and share the hottest color past the end.
var levelStyles = map[int]lipgloss.Style{
	1:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	2:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	4:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	8:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	16:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	32:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	64:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	128:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	256:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
	512:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	1024: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
}

var (
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	playerStyle = lipgloss.NewStyle().Background(lipgloss.Color("22")).Foreground(lipgloss.Color("15")).Bold(true)
	cursorStyle = lipgloss.NewStyle().Background(lipgloss.Color("236"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// styleFor returns the style for a token value.
func styleFor(value int) lipgloss.Style {
	if s, ok := levelStyles[value]; ok {
		return s
	}
	// Beyond the known ramp, reuse the hottest style
	return levelStyles[1024]
}

// tokenLabel renders a token value centered in a cell-wide field.
func tokenLabel(value int) string {
	s := strconv.Itoa(value)
	if len(s) > cellWidth {
		s = s[:cellWidth]
	}
	pad := cellWidth - len(s)
	left := pad / 2
	right := pad - left
	return spaces(left) + s + spaces(right)
}

// emptyLabel is the cell-wide field for an empty cell.
func emptyLabel() string {
	pad := cellWidth - 1
	left := pad / 2
	return spaces(left) + "·" + spaces(pad-left)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
