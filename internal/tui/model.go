package tui

import (
	"cardstack/internal/domain"
	"cardstack/internal/lifecycle"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Session is the review session the model renders and drives
type Session interface {
	Snapshot() domain.SessionState
	RemoveCard(index int)
	Reset()
}

// Editor persists deck edits
type Editor interface {
	Cards() ([]domain.Card, error)
	AddCard(prompt, answer string) (domain.Card, error)
	DeleteCard(id string) error
}

// Bridge is told when the edit screen opens and closes
type Bridge interface {
	Opened()
	Dismissed()
}

// Publisher receives app lifecycle signals derived from terminal focus and suspend
type Publisher interface {
	Publish(sig lifecycle.Signal)
}

// Options holds presentation flags
type Options struct {
	DifferentiateWithoutColor bool
	AccessibilityEnabled      bool
}

// showButtons reports whether explicit wrong/correct controls are drawn
func (o Options) showButtons() bool {
	return o.AccessibilityEnabled || o.DifferentiateWithoutColor
}

// StateChangedMsg tells the model to take a fresh session snapshot
type StateChangedMsg struct{}

// deckLoadedMsg carries the persisted deck for the edit screen
type deckLoadedMsg struct {
	cards []domain.Card
	err   error
}

type screen int

const (
	screenReview screen = iota
	screenEdit
)

const (
	fieldPrompt = iota
	fieldAnswer
)

// Model is the root bubbletea model
type Model struct {
	session   Session
	editor    Editor
	bridge    Bridge
	lifecycle Publisher
	opts      Options

	keys KeyMap
	help help.Model

	screen   screen
	state    domain.SessionState
	revealed bool

	// Edit screen
	inputs [2]textinput.Model
	field  int
	deck   []domain.Card
	cursor int
	err    error

	width  int
	height int
}

// NewModel creates the root model
func NewModel(session Session, editor Editor, bridge Bridge, lc Publisher, opts Options) Model {
	prompt := textinput.New()
	prompt.Placeholder = "Prompt"
	prompt.CharLimit = 200
	prompt.Width = cardWidth

	answer := textinput.New()
	answer.Placeholder = "Answer"
	answer.CharLimit = 200
	answer.Width = cardWidth

	return Model{
		session:   session,
		editor:    editor,
		bridge:    bridge,
		lifecycle: lc,
		opts:      opts,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		state:     session.Snapshot(),
		inputs:    [2]textinput.Model{prompt, answer},
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case StateChangedMsg:
		m.refresh()
		return m, nil

	case tea.FocusMsg:
		m.lifecycle.Publish(lifecycle.EnterForeground)
		m.refresh()
		return m, nil

	case tea.BlurMsg:
		m.lifecycle.Publish(lifecycle.ResignActive)
		m.refresh()
		return m, nil

	case tea.ResumeMsg:
		m.lifecycle.Publish(lifecycle.EnterForeground)
		m.refresh()
		return m, nil

	case deckLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.deck = msg.cards
		}
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if m.screen == screenEdit {
			return m.updateEdit(msg)
		}
		return m.updateReview(msg)
	}

	return m, nil
}

func (m Model) updateReview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Suspend):
		m.lifecycle.Publish(lifecycle.ResignActive)
		m.refresh()
		return m, tea.Suspend

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Edit):
		return m.openEdit()

	case key.Matches(msg, m.keys.Restart):
		if m.state.Finished() {
			m.session.Reset()
			m.refresh()
		}

	case key.Matches(msg, m.keys.Reveal):
		if m.state.InteractionEnabled() {
			m.revealed = !m.revealed
		}

	case key.Matches(msg, m.keys.Correct), key.Matches(msg, m.keys.Wrong):
		if m.state.InteractionEnabled() {
			m.session.RemoveCard(m.state.FrontIndex())
			m.refresh()
		}
	}

	return m, nil
}

func (m Model) openEdit() (tea.Model, tea.Cmd) {
	m.screen = screenEdit
	m.field = fieldPrompt
	m.err = nil
	m.bridge.Opened()
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	focus := m.inputs[fieldPrompt].Focus()
	return m, tea.Batch(focus, textinput.Blink, m.loadDeckCmd())
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Interrupt):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Close):
		m.screen = screenReview
		for i := range m.inputs {
			m.inputs[i].Blur()
		}
		m.bridge.Dismissed()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.inputs[m.field].Blur()
		m.field = (m.field + 1) % len(m.inputs)
		cmd := m.inputs[m.field].Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Add):
		// Enter on the prompt field moves on to the answer
		if m.field == fieldPrompt {
			m.inputs[fieldPrompt].Blur()
			m.field = fieldAnswer
			cmd := m.inputs[fieldAnswer].Focus()
			return m, cmd
		}
		prompt := m.inputs[fieldPrompt].Value()
		answer := m.inputs[fieldAnswer].Value()
		m.inputs[fieldPrompt].Reset()
		m.inputs[fieldAnswer].Reset()
		m.inputs[fieldAnswer].Blur()
		m.field = fieldPrompt
		focus := m.inputs[fieldPrompt].Focus()
		return m, tea.Batch(focus, m.addCardCmd(prompt, answer))

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.deck)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(m.deck) {
			return m, m.deleteCardCmd(m.deck[m.cursor].ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)
	return m, cmd
}

// refresh takes a new snapshot and hides the answer once the front card changes
func (m *Model) refresh() {
	prev, hadFront := m.state.Front()
	m.state = m.session.Snapshot()
	cur, ok := m.state.Front()
	if !ok || !hadFront || prev.ID != cur.ID {
		m.revealed = false
	}
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.deck) {
		m.cursor = len(m.deck) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) loadDeckCmd() tea.Cmd {
	editor := m.editor
	return func() tea.Msg {
		cards, err := editor.Cards()
		return deckLoadedMsg{cards: cards, err: err}
	}
}

func (m Model) addCardCmd(prompt, answer string) tea.Cmd {
	editor := m.editor
	return func() tea.Msg {
		if _, err := editor.AddCard(prompt, answer); err != nil {
			return deckLoadedMsg{err: err}
		}
		cards, err := editor.Cards()
		return deckLoadedMsg{cards: cards, err: err}
	}
}

func (m Model) deleteCardCmd(id string) tea.Cmd {
	editor := m.editor
	return func() tea.Msg {
		if err := editor.DeleteCard(id); err != nil {
			return deckLoadedMsg{err: err}
		}
		cards, err := editor.Cards()
		return deckLoadedMsg{cards: cards, err: err}
	}
}
