package tui

import "github.com/charmbracelet/lipgloss"

// One Dark Pro color palette
var (
	ColorFgPrimary = lipgloss.Color("#ABB2BF")
	ColorFgMuted   = lipgloss.Color("#636B78")

	ColorRed     = lipgloss.Color("#E06C75")
	ColorGreen   = lipgloss.Color("#98C379")
	ColorYellow  = lipgloss.Color("#E5C07B")
	ColorBlue    = lipgloss.Color("#61AFEF")
	ColorMagenta = lipgloss.Color("#C678DD")

	ColorBorder = lipgloss.Color("#3F4451")
)

const cardWidth = 40

// Component styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta).
			Bold(true).
			PaddingLeft(1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBlue).
			Foreground(ColorFgPrimary).
			Width(cardWidth).
			Padding(1, 2).
			Align(lipgloss.Center)

	// Edge of a card lying under the front card
	CardEdgeStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	PromptStyle = lipgloss.NewStyle().
			Bold(true)

	AnswerStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	HintStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted).
			Italic(true)

	TimerStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	TimerLowStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	PausedStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	ButtonStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 2)

	WrongButtonStyle = ButtonStyle.
				BorderForeground(ColorRed).
				Foreground(ColorRed)

	CorrectButtonStyle = ButtonStyle.
				BorderForeground(ColorGreen).
				Foreground(ColorGreen)

	PlainButtonStyle = ButtonStyle.
				BorderForeground(ColorFgPrimary)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted).
			PaddingLeft(1).
			PaddingRight(1)
)
