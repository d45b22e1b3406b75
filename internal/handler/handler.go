package handler

import (
	"sync"

	"cardstack/internal/domain"
	"cardstack/internal/lifecycle"
	"cardstack/internal/middleware"
	"cardstack/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	authService *service.AuthService
	session     *service.SessionController
	editor      *service.EditService
	bridge      *service.EditBridge
	bus         *lifecycle.Bus
	logger      *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	session *service.SessionController,
	editor *service.EditService,
	bridge *service.EditBridge,
	bus *lifecycle.Bus,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		authService: authService,
		session:     session,
		editor:      editor,
		bridge:      bridge,
		bus:         bus,
		logger:      logger,
		states:      make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Public: /start and password entry
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)

	// Everything else requires an authorized user
	g := h.bot.Group()
	g.Use(middleware.AuthMiddleware(h.authService, h.logger))

	g.Handle("/card", h.handleCard)
	g.Handle("/add", h.handleAdd)
	g.Handle("/done", h.handleDone)
	g.Handle("/pause", h.handlePause)
	g.Handle("/resume", h.handleResume)

	// Callback queries (inline buttons)
	g.Handle(&btnReveal, h.handleReveal)
	g.Handle(&btnWrong, h.handleJudgment)
	g.Handle(&btnCorrect, h.handleJudgment)
	g.Handle(&btnRestart, h.handleRestart)
	g.Handle(&btnRefresh, h.handleCard)
	g.Handle(&btnCancel, h.handleDone)

	// Generic callback handler for dynamic data
	g.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// Inline keyboard buttons
var (
	btnReveal = tele.Btn{
		Unique: "reveal",
		Text:   "👀 Reveal",
	}
	btnWrong = tele.Btn{
		Unique: "wrong",
		Text:   "✗ Wrong",
	}
	btnCorrect = tele.Btn{
		Unique: "correct",
		Text:   "✓ Correct",
	}
	btnRestart = tele.Btn{
		Unique: "restart",
		Text:   "↻ Start again",
	}
	btnRefresh = tele.Btn{
		Unique: "refresh",
		Text:   "🔄 Refresh",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "✅ Done",
	}
)

// cancelMarkup returns the keyboard shown during the add-card flow
func cancelMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnCancel))
	return menu
}
