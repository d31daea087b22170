package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/pebbles/internal/client"
	"github.com/lox/pebbles/internal/pebbles"
)

// maxDrawn caps how many pebbles the sidebar draws
const maxDrawn = 60

// Game is the host as seen from the terminal
type Game interface {
	Init(ctx context.Context, cfg pebbles.Config) (client.Result, error)
	Do(ctx context.Context, a pebbles.Action) (client.Result, error)
	State(ctx context.Context) (pebbles.GameState, error)
}

// Model is the Bubble Tea model for a pebbles session
type Model struct {
	game    Game
	logger  *log.Logger
	timeout time.Duration

	// UI components
	logViewport viewport.Model
	input       textinput.Model

	// State
	gameLog     []string
	state       *pebbles.GameState
	busy        bool
	quitting    bool
	focusedPane int // 0 = log, 1 = input

	// Dimensions
	width       int
	height      int
	initialized bool
}

// resultMsg carries the outcome of a mutating command
type resultMsg struct {
	cmd    Command
	result client.Result
	err    error
}

// stateMsg carries a refreshed snapshot
type stateMsg struct {
	state pebbles.GameState
	err   error
}

// NewModel creates a model that issues every command with the given timeout
func NewModel(game Game, logger *log.Logger, timeout time.Duration) *Model {
	// Sized properly once a WindowSizeMsg arrives
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "Take pebbles (e.g. 2), or 'help'"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 64
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	return &Model{
		game:        game,
		logger:      logger.WithPrefix("tui"),
		timeout:     timeout,
		logViewport: vp,
		input:       ti,
		focusedPane: 1,
	}
}

// Run drives the model on the terminal until the user quits or ctx is done
func Run(ctx context.Context, game Game, logger *log.Logger, timeout time.Duration) error {
	p := tea.NewProgram(NewModel(game, logger, timeout), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.refresh())
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case resultMsg:
		m.busy = false
		m.showResult(msg)
		cmds = append(cmds, m.refresh())

	case stateMsg:
		m.showState(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.input.Focus()
			} else {
				m.focusedPane = 0
				m.input.Blur()
			}
		case "enter":
			if m.focusedPane == 1 {
				input := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				if cmd := m.submit(input); cmd != nil {
					cmds = append(cmds, cmd)
				}
			}
		case "up", "pgup", "home":
			if m.focusedPane == 0 {
				m.scroll(msg.String())
			}
		case "down", "pgdown", "end":
			if m.focusedPane == 0 {
				m.scroll(msg.String())
			}
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == 1 {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) scroll(key string) {
	switch key {
	case "up":
		m.logViewport.ScrollUp(1)
	case "down":
		m.logViewport.ScrollDown(1)
	case "pgup":
		m.logViewport.HalfPageUp()
	case "pgdown":
		m.logViewport.HalfPageDown()
	case "home":
		m.logViewport.GotoTop()
	case "end":
		m.logViewport.GotoBottom()
	}
}

// submit parses a line of input and returns the command that carries it out
func (m *Model) submit(input string) tea.Cmd {
	if m.busy {
		m.AddLogEntry(WarningStyle.Render("Still waiting for the host"))
		return nil
	}

	cmd, err := ParseCommand(input, m.state)
	if err != nil {
		m.AddLogEntry(ErrorStyle.Render(err.Error()))
		return nil
	}

	switch cmd.Kind {
	case CmdQuit:
		m.quitting = true
		return tea.Quit
	case CmdHelp:
		for _, line := range helpLines {
			m.AddLogEntry(line)
		}
		return nil
	case CmdState:
		return m.refresh()
	}

	if t, ok := cmd.Action.(pebbles.Turn); ok {
		m.AddLogEntry(UserStyle.Render(fmt.Sprintf("You take %d", t.Count)))
	}
	m.busy = true
	game, timeout, logger := m.game, m.timeout, m.logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		var res client.Result
		var err error
		if cmd.Kind == CmdNew {
			res, err = game.Init(ctx, cmd.Config)
		} else {
			res, err = game.Do(ctx, cmd.Action)
		}
		if err != nil {
			logger.Debug("Command rejected", "error", err)
		}
		return resultMsg{cmd: cmd, result: res, err: err}
	}
}

// refresh fetches the current snapshot
func (m *Model) refresh() tea.Cmd {
	game, timeout := m.game, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		s, err := game.State(ctx)
		return stateMsg{state: s, err: err}
	}
}

func (m *Model) showResult(msg resultMsg) {
	if msg.err != nil {
		m.AddLogEntry(ErrorStyle.Render("Rejected: " + msg.err.Error()))
		return
	}

	switch a := msg.cmd.Action.(type) {
	case nil:
		m.AddLogEntry(HeaderStyle.Render(fmt.Sprintf(" New game: %d pebbles, up to %d per turn, %s ",
			msg.cmd.Config.PebblesCount, msg.cmd.Config.MaxPebblesPerTurn, msg.cmd.Config.Difficulty)))
	case pebbles.Restart:
		m.AddLogEntry(HeaderStyle.Render(fmt.Sprintf(" Restarted: %d pebbles, up to %d per turn, %s ",
			a.PebblesCount, a.MaxPebblesPerTurn, a.Difficulty)))
	case pebbles.GiveUp:
		m.AddLogEntry(WarningStyle.Render("You give up"))
	}

	for _, ev := range msg.result.Events {
		m.AddLogEntry(describeEvent(ev))
	}
}

func (m *Model) showState(msg stateMsg) {
	switch {
	case errors.Is(msg.err, pebbles.ErrNoActiveGame):
		m.state = nil
		if len(m.gameLog) == 0 {
			m.AddLogEntry(InfoStyle.Render("No game yet. Start one with: new 15 3"))
		}
	case msg.err != nil:
		m.AddLogEntry(ErrorStyle.Render("State unavailable: " + msg.err.Error()))
	default:
		s := msg.state
		m.state = &s
	}
}

func describeEvent(ev pebbles.Event) string {
	switch e := ev.(type) {
	case pebbles.CounterTurnEvent:
		return ProgramStyle.Render(fmt.Sprintf("Program takes %d", e.Count))
	case pebbles.WonEvent:
		if e.Player == pebbles.User {
			return SuccessStyle.Render("You win!")
		}
		return ErrorStyle.Render("Program wins")
	}
	return fmt.Sprintf("%v", ev)
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	actionContent := m.renderActionPane()
	actionHeight := lipgloss.Height(actionContent)

	actionPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.borderColor(1)).
		Width(max(m.width-2, 1)).
		Height(max(actionHeight, 1)).
		Render(actionContent)

	sidebarContent := m.renderSidebarPane()
	sidebarWidth := max(lipgloss.Width(sidebarContent), 25)
	paneHeight := max(m.height-actionHeight-4, 1)

	sidebarPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(sidebarWidth).
		Height(paneHeight).
		Render(sidebarContent)

	logWidth := max(m.width-sidebarWidth-4, 1)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.Width = logWidth
	m.logViewport.Height = paneHeight
	if !m.initialized && logWidth > 1 && paneHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.borderColor(0)).
		Width(logWidth).
		Height(paneHeight).
		Render(m.logViewport.View())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, logPane, sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Top, topRow, actionPane)
}

func (m *Model) borderColor(pane int) lipgloss.Color {
	if m.focusedPane == pane {
		return lipgloss.Color("#04B575")
	}
	return lipgloss.Color("#626262")
}

func (m *Model) renderSidebarPane() string {
	var b strings.Builder
	s := m.state
	if s == nil {
		b.WriteString(InfoStyle.Render("No active game"))
		return b.String()
	}

	b.WriteString(PebbleStyle.Render(fmt.Sprintf("Pebbles: %d/%d", s.PebblesRemaining, s.PebblesCount)))
	b.WriteString("\n")
	b.WriteString(drawPebbles(s.PebblesRemaining))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Max per turn: %d\n", s.MaxPebblesPerTurn)
	fmt.Fprintf(&b, "Difficulty:   %s\n", s.Difficulty)
	fmt.Fprintf(&b, "First:        %s\n", s.FirstPlayer)
	if s.Winner != nil {
		b.WriteString("\n")
		if *s.Winner == pebbles.User {
			b.WriteString(SuccessStyle.Render("Winner: you"))
		} else {
			b.WriteString(ErrorStyle.Render("Winner: program"))
		}
	}
	return b.String()
}

// drawPebbles renders up to maxDrawn pebbles, ten per row
func drawPebbles(n uint32) string {
	drawn := min(int(n), maxDrawn)
	var rows []string
	for drawn > 0 {
		k := min(drawn, 10)
		rows = append(rows, strings.TrimSpace(strings.Repeat("o ", k)))
		drawn -= k
	}
	if int(n) > maxDrawn {
		rows = append(rows, fmt.Sprintf("+%d more", int(n)-maxDrawn))
	}
	return PebbleStyle.Render(strings.Join(rows, "\n"))
}

func (m *Model) renderActionPane() string {
	var b strings.Builder

	switch {
	case m.busy:
		b.WriteString(InfoStyle.Render("Waiting for the host..."))
	case m.state == nil:
		b.WriteString(InfoStyle.Render("Start a game with 'new <pebbles> <max> [easy|hard]'"))
	case m.state.IsOver():
		b.WriteString(InfoStyle.Render("Game over. 'restart' to play again"))
	default:
		b.WriteString(PebbleStyle.Render(fmt.Sprintf("Your turn: take 1 to %d", m.state.MaxTake())))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.focusedPane == 0 {
		b.WriteString(InfoStyle.Render("Log focused: ↑↓ scroll, PgUp/PgDn half page, Home/End, Tab to input"))
	} else {
		b.WriteString(InfoStyle.Render("Tab to scroll log • Enter to submit • Ctrl+C to quit"))
	}
	return b.String()
}

// AddLogEntry appends a line to the game log
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// Log returns a copy of the game log
func (m *Model) Log() []string {
	out := make([]string, len(m.gameLog))
	copy(out, m.gameLog)
	return out
}

// State returns the last snapshot seen, or nil before a game exists
func (m *Model) State() *pebbles.GameState {
	return m.state
}
