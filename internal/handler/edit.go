package handler

import (
	"strings"

	"cardstack/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleAdd starts the add-card flow
func (h *Handler) handleAdd(c tele.Context) error {
	userID := c.Sender().ID

	if !h.bridge.IsOpen() {
		h.bridge.Opened()
	}
	h.SetState(userID, &domain.StateData{State: domain.StateWaitingPrompt})

	return c.Send("Send the prompt for the new card", cancelMarkup())
}

// handleDone closes the add-card flow, which restarts the session with the edited deck
func (h *Handler) handleDone(c tele.Context) error {
	userID := c.Sender().ID

	if h.leaveEditing(userID) {
		h.logger.Info("Edit flow finished", zap.Int64("user_id", userID))
	}
	return h.sendCard(c, userID)
}

// leaveEditing resets userID to idle, dismissing the edit bridge if the user was editing
func (h *Handler) leaveEditing(userID int64) bool {
	editing := h.GetState(userID).Editing()
	h.ResetState(userID)
	if editing {
		h.bridge.Dismissed()
	}
	return editing
}

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	// Check authorization first
	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgError)
	}

	// If not authorized, check password
	if !authorized {
		if !h.authService.CheckPassword(text) {
			return c.Send("Wrong password")
		}

		if err := h.authService.AuthorizeUser(userID); err != nil {
			h.logger.Error("Failed to authorize user", zap.Error(err))
			return c.Send(msgError)
		}

		h.logger.Info("User authorized", zap.Int64("user_id", userID))
		h.ResetState(userID)
		if err := c.Send("✅ Access granted!"); err != nil {
			return err
		}
		return h.sendCard(c, userID)
	}

	// User is authorized, handle based on state
	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingPrompt:
		h.SetState(userID, &domain.StateData{
			State:         domain.StateWaitingAnswer,
			CurrentPrompt: text,
		})
		return c.Send("Now send the answer", cancelMarkup())

	case domain.StateWaitingAnswer:
		card, err := h.editor.AddCard(state.CurrentPrompt, text)
		if err != nil {
			h.logger.Error("Failed to save card",
				zap.Error(err),
				zap.Int64("user_id", userID),
			)
			return c.Send("Could not save the card. Try again.", cancelMarkup())
		}

		h.logger.Info("Card saved",
			zap.Int64("user_id", userID),
			zap.String("card_id", card.ID),
		)

		// Wait for the next prompt
		h.SetState(userID, &domain.StateData{State: domain.StateWaitingPrompt})

		return c.Send("✅ Saved!\n\nSend the next prompt or /done to finish", cancelMarkup())

	default:
		return h.sendCard(c, userID)
	}
}
