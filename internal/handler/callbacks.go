package handler

import (
	"strings"
	"unicode"

	"cardstack/internal/lifecycle"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Message already shows this state, usually after a double tap
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// sendCard renders the session for userID, editing the message when answering a callback
func (h *Handler) sendCard(c tele.Context, userID int64) error {
	text, markup := renderCard(h.session.Snapshot(), h.GetState(userID).RevealedCardID)

	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil // Message was already up to date, just acknowledged
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// handleCallback handles callback queries no button handler claimed
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	switch callback.Unique {
	case btnReveal.Unique:
		return h.handleReveal(c)
	case btnWrong.Unique, btnCorrect.Unique:
		return h.handleJudgment(c)
	case btnRestart.Unique:
		return h.handleRestart(c)
	case btnRefresh.Unique:
		return h.handleCard(c)
	case btnCancel.Unique:
		return h.handleDone(c)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleCard shows the card under review
func (h *Handler) handleCard(c tele.Context) error {
	return h.sendCard(c, c.Sender().ID)
}

// handleReveal shows the answer of the card named in the callback data
func (h *Handler) handleReveal(c tele.Context) error {
	userID := c.Sender().ID
	cardID := cleanCallbackData(c.Callback().Data)

	if front, ok := h.session.Snapshot().Front(); ok && front.ID == cardID {
		next := *h.GetState(userID)
		next.RevealedCardID = cardID
		h.SetState(userID, &next)
	}

	return h.sendCard(c, userID)
}

// handleJudgment removes the front card for both wrong and correct answers.
// A tap on a card that is no longer in front only refreshes the message.
func (h *Handler) handleJudgment(c tele.Context) error {
	userID := c.Sender().ID
	callback := c.Callback()
	cardID := cleanCallbackData(callback.Data)

	if h.session.RemoveCardIfFront(cardID) {
		h.logger.Info("Card judged",
			zap.Int64("user_id", userID),
			zap.String("card_id", cardID),
			zap.String("verdict", callback.Unique),
		)
	} else {
		h.logger.Debug("Ignoring judgment for card not under review",
			zap.Int64("user_id", userID),
			zap.String("card_id", cardID),
		)
	}

	return h.sendCard(c, userID)
}

// handleRestart resets a finished session
func (h *Handler) handleRestart(c tele.Context) error {
	if h.session.Snapshot().Finished() {
		h.session.Reset()
	}
	return h.sendCard(c, c.Sender().ID)
}

// handlePause publishes resign-active, freezing the countdown
func (h *Handler) handlePause(c tele.Context) error {
	h.bus.Publish(lifecycle.ResignActive)
	return h.sendCard(c, c.Sender().ID)
}

// handleResume publishes enter-foreground
func (h *Handler) handleResume(c tele.Context) error {
	h.bus.Publish(lifecycle.EnterForeground)
	return h.sendCard(c, c.Sender().ID)
}
