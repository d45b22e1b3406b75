package handler

import (
	"fmt"
	"strings"

	"cardstack/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// renderCard builds the session message and its keyboard.
// Judgment and reveal buttons carry the front card id so stale taps can be detected.
func renderCard(state domain.SessionState, revealedCardID string) (string, *tele.ReplyMarkup) {
	markup := &tele.ReplyMarkup{}

	var b strings.Builder
	fmt.Fprintf(&b, "⏱ %ds · %d cards left\n\n", state.TimeRemaining, len(state.Cards))

	switch {
	case state.IsEmpty():
		b.WriteString("🎉 All cards reviewed.")
		markup.Inline(markup.Row(btnRestart))

	case state.TimeUp():
		b.WriteString("⌛ Time is up.")
		markup.Inline(markup.Row(btnRestart))

	default:
		front, _ := state.Front()
		revealed := front.ID == revealedCardID

		fmt.Fprintf(&b, "📝 %s", front.Prompt)
		if revealed {
			fmt.Fprintf(&b, "\n🔄 %s", front.Answer)
		}

		if !state.IsActive {
			b.WriteString("\n\n⏸ Paused. Send /resume to continue.")
			markup.Inline(markup.Row(btnRefresh))
			break
		}

		rows := []tele.Row{}
		if !revealed {
			rows = append(rows, markup.Row(markup.Data(btnReveal.Text, btnReveal.Unique, front.ID)))
		}
		rows = append(rows, markup.Row(
			markup.Data(btnWrong.Text, btnWrong.Unique, front.ID),
			markup.Data(btnCorrect.Text, btnCorrect.Unique, front.ID),
		))
		markup.Inline(rows...)
	}

	return b.String(), markup
}
