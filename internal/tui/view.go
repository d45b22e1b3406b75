package tui

import (
	"fmt"
	"strings"

	"cardstack/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

// maxStackDepth is the number of cards drawn behind the front card
const maxStackDepth = 3

const lowTimeThreshold = 10

// View renders the active screen
func (m Model) View() string {
	if m.screen == screenEdit {
		return m.editView()
	}
	return m.reviewView()
}

func (m Model) reviewView() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("cardstack"))
	b.WriteString("  ")
	b.WriteString(m.renderTimer())
	b.WriteString("\n\n")

	if m.state.IsEmpty() {
		b.WriteString(HintStyle.Render("All cards reviewed."))
		b.WriteString("\n\n")
		b.WriteString(m.renderRestart())
	} else {
		b.WriteString(m.renderStack())
		b.WriteString("\n")
		switch {
		case m.state.TimeUp():
			b.WriteString(HintStyle.Render("Time is up."))
			b.WriteString("\n\n")
			b.WriteString(m.renderRestart())
		case !m.state.IsActive:
			b.WriteString(PausedStyle.Render(m.label("⏸", "Paused")))
		case m.opts.showButtons():
			b.WriteString(m.renderButtons())
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderStack draws the front card with up to maxStackDepth card edges under it
func (m Model) renderStack() string {
	front, ok := m.state.Front()
	if !ok {
		return ""
	}

	body := PromptStyle.Render(front.Prompt)
	if m.revealed {
		body += "\n\n" + AnswerStyle.Render(front.Answer)
	} else {
		body += "\n\n" + HintStyle.Render("space to reveal")
	}
	card := CardStyle.Render(body)

	depth := len(m.state.Cards) - 1
	if depth > maxStackDepth {
		depth = maxStackDepth
	}
	if depth == 0 {
		return card
	}

	edges := make([]string, 0, depth)
	for i := depth; i >= 1; i-- {
		edges = append(edges, CardEdgeStyle.Render(strings.Repeat(" ", i)+strings.Repeat("▔", cardWidth)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, append(edges, card)...)
}

func (m Model) renderTimer() string {
	text := fmt.Sprintf("%ds", m.state.TimeRemaining)
	if m.state.TimeRemaining <= lowTimeThreshold {
		if m.opts.DifferentiateWithoutColor {
			text = "! " + text
		}
		return TimerLowStyle.Render(text)
	}
	return TimerStyle.Render(text)
}

func (m Model) renderButtons() string {
	wrong := m.label("✗", "Wrong")
	correct := m.label("✓", "Correct")
	if m.opts.DifferentiateWithoutColor {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			PlainButtonStyle.Render(wrong),
			"  ",
			PlainButtonStyle.Render(correct),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		WrongButtonStyle.Render(wrong),
		"  ",
		CorrectButtonStyle.Render(correct),
	)
}

func (m Model) renderRestart() string {
	return PlainButtonStyle.Render(m.label("↻", "Start again") + " (r)")
}

// label prefixes text with glyph when colour cues are unavailable
func (m Model) label(glyph, text string) string {
	if m.opts.DifferentiateWithoutColor {
		return glyph + " " + text
	}
	return text
}

func (m Model) renderStatusBar() string {
	return StatusBarStyle.Render(fmt.Sprintf("%d cards left", len(m.state.Cards)))
}

func (m Model) editView() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Edit cards"))
	b.WriteString("\n\n")
	b.WriteString(m.inputs[fieldPrompt].View())
	b.WriteString("\n")
	b.WriteString(m.inputs[fieldAnswer].View())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(ErrorStyle.Render(m.err.Error()))
		b.WriteString("\n\n")
	}

	if len(m.deck) == 0 {
		b.WriteString(HintStyle.Render("No cards yet."))
	}
	for i, c := range m.deck {
		b.WriteString(m.renderDeckRow(i, c))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(editKeys{m.keys}))
	return b.String()
}

func (m Model) renderDeckRow(i int, c domain.Card) string {
	row := fmt.Sprintf("%s → %s", c.Prompt, c.Answer)
	if i == m.cursor {
		return SelectedStyle.Render("> " + row)
	}
	return "  " + row
}
