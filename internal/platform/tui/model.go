package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridtoken/internal/core"
	"github.com/vovakirdan/gridtoken/internal/game"
	"github.com/vovakirdan/gridtoken/internal/game/engine"
	"github.com/vovakirdan/gridtoken/internal/storage"
)

// chromeRows is the number of terminal rows reserved above and below the grid
// (title, status line, help line).
const chromeRows = 3

// Model is the Bubble Tea model for playing a gridtoken session.
type Model struct {
	session *game.Session
	store   *storage.Store
	keys    keyMap
	help    help.Model

	width  int
	height int

	status   string // Last outcome / event message
	won      bool
	winSaved bool
	quitting bool
	saveErr  error
}

// NewModel creates a Bubble Tea model for the given session. store may be nil
// when win persistence is unavailable.
func NewModel(session *game.Session, store *storage.Store) Model {
	return Model{
		session: session,
		store:   store,
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   80,
		height:  24,
		status:  "click a token next to you to pick it up",
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Every message runs to completion before the
// next is handled; the game has no tick loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch in := m.keys.intentFor(msg); {
	case in == core.IntentQuit:
		m.quitting = true
		return m, tea.Quit

	case in == core.IntentToggleView:
		mode := m.session.ToggleView()
		m.status = fmt.Sprintf("view mode: %s", mode)
		return m, nil

	case in.IsMovement():
		m.session.Move(in)
		return m, nil
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	coord, ok := m.cellAtScreen(msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	res, err := m.session.Click(coord)
	if err != nil {
		m.status = alertStyle.Render(fmt.Sprintf("save failed: %v", err))
		return m, nil
	}

	m.status = outcomeMessage(res)
	if res.Won {
		m.won = true
		m.saveWin(res.Value)
	}
	return m, nil
}

// saveWin records the win once per session.
func (m *Model) saveWin(value int) {
	if m.winSaved || m.store == nil {
		return
	}
	p := m.session.Params()
	if _, err := m.store.RecordWin(p.Scenario.Name, value, m.session.Crafts(), m.session.Elapsed()); err != nil {
		m.saveErr = err
		return
	}
	m.winSaved = true
}

// gridSize returns the grid span, in cells, that fits the current terminal.
func (m Model) gridSize() (rows, cols int) {
	rows = core.Max(1, m.height-chromeRows)
	cols = core.Max(1, m.width/cellWidth)
	return rows, cols
}

// gridOrigin returns the grid coordinate drawn at the top-left of the board.
func (m Model) gridOrigin() core.Coord {
	rows, cols := m.gridSize()
	center := m.session.ViewCenter().Cell()
	return core.C(center.I-rows/2, center.J-cols/2)
}

// cellAtScreen translates terminal coordinates into the grid coordinate drawn
// there, if the position is on the board.
func (m Model) cellAtScreen(x, y int) (core.Coord, bool) {
	rows, cols := m.gridSize()
	row := y - 1 // Title row above the board
	col := x / cellWidth
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return core.Coord{}, false
	}
	origin := m.gridOrigin()
	return core.C(origin.I+row, origin.J+col), true
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	rows, cols := m.gridSize()
	origin := m.gridOrigin()
	region := core.Region{
		A: core.Point{Lat: float64(origin.I), Lng: float64(origin.J)},
		B: core.Point{Lat: float64(origin.I + rows - 1), Lng: float64(origin.J + cols - 1)},
	}
	cells := m.session.CellsIn(region)

	playerCell := m.session.Player().Pos.Cell()
	centerCell := m.session.ViewCenter().Cell()
	freeView := m.session.Mode() == engine.FreeView

	var sb strings.Builder
	sb.WriteString(m.titleLine())
	sb.WriteByte('\n')

	for idx, cell := range cells {
		if idx > 0 && idx%cols == 0 {
			sb.WriteByte('\n')
		}

		var label string
		var style = emptyStyle
		if v, ok := cell.State.Value(); ok {
			label = tokenLabel(v)
			style = styleFor(v)
		} else {
			label = emptyLabel()
		}

		switch {
		case cell.Coord == playerCell:
			style = playerStyle
		case freeView && cell.Coord == centerCell:
			style = style.Inherit(cursorStyle)
		}
		sb.WriteString(style.Render(label))
	}

	sb.WriteByte('\n')
	sb.WriteString(m.statusLine())
	sb.WriteByte('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) titleLine() string {
	p := m.session.Params()
	title := fmt.Sprintf("gridtoken · %s · target %d", p.Scenario.Name, p.Target)
	if m.won {
		title += winStyle.Render("  ★ WON")
	}
	return titleStyle.Render(title)
}

func (m Model) statusLine() string {
	held := "empty-handed"
	if v, ok := m.session.Player().Holding(); ok {
		held = fmt.Sprintf("holding %d", v)
	}
	pc := m.session.Player().Pos.Cell()
	line := fmt.Sprintf("%s · %s · player (%d,%d) · %s",
		held, m.session.Mode(), pc.I, pc.J, m.status)
	if m.saveErr != nil {
		line += alertStyle.Render(fmt.Sprintf(" · win not recorded: %v", m.saveErr))
	}
	return statusStyle.Render(line)
}

// outcomeMessage renders a click result as a one-line user message.
func outcomeMessage(res engine.Result) string {
	switch res.Outcome {
	case engine.PickedUp:
		return fmt.Sprintf("picked up %d", res.Value)
	case engine.Crafted:
		if res.Won {
			return winStyle.Render(fmt.Sprintf("crafted %d, you win!", res.Value))
		}
		return fmt.Sprintf("crafted %d", res.Value)
	case engine.RejectedTooFar:
		return "too far away"
	case engine.RejectedEmpty:
		return "nothing there"
	case engine.RejectedMismatch:
		return "tokens don't match"
	default:
		return res.Outcome.String()
	}
}

// Run starts the interactive TUI for a session and blocks until it exits.
func Run(session *game.Session, store *storage.Store) error {
	p := tea.NewProgram(
		NewModel(session, store),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
