package service

import (
	"sync"

	"cardstack/internal/domain"
	"cardstack/internal/lifecycle"

	"go.uber.org/zap"
)

// Observer is called with a fresh snapshot after every state transition.
// Observers run outside the controller lock and must not block.
type Observer func(domain.SessionState)

// SessionController owns the review session: card queue, countdown and lifecycle gate.
// All mutations are serialized behind one mutex.
type SessionController struct {
	store  *CardStore
	timer  *Countdown
	gate   *LifecycleGate
	logger *zap.Logger

	mu sync.Mutex

	obsMu     sync.RWMutex
	observers map[int]Observer
	nextObsID int
}

// NewSessionController creates a controller and performs the initial reset,
// so the deck is loaded before the first snapshot is taken
func NewSessionController(store *CardStore, budget int, logger *zap.Logger) *SessionController {
	c := &SessionController{
		store:     store,
		timer:     NewCountdown(budget),
		logger:    logger,
		observers: make(map[int]Observer),
	}
	c.gate = NewLifecycleGate(func() bool { return !store.IsEmpty() })

	c.mu.Lock()
	c.resetLocked()
	c.mu.Unlock()

	return c
}

// RemoveCard drops the card at index and deactivates the session when the stack runs out.
// Negative or stale indexes are ignored.
func (c *SessionController) RemoveCard(index int) {
	c.mu.Lock()
	if index < 0 {
		c.mu.Unlock()
		c.logger.Debug("Ignoring removal with negative index", zap.Int("index", index))
		return
	}

	removed := c.store.Remove(index)
	if c.store.IsEmpty() {
		c.gate.Deactivate()
	}
	state := c.snapshotLocked()
	c.mu.Unlock()

	if !removed {
		c.logger.Debug("Ignoring removal with out of range index", zap.Int("index", index))
		return
	}

	c.logger.Debug("Card removed",
		zap.Int("index", index),
		zap.Int("remaining_cards", len(state.Cards)),
	)
	if state.IsEmpty() {
		c.logger.Info("All cards reviewed", zap.Int("time_remaining", state.TimeRemaining))
	}
	c.notify(state)
}

// RemoveCardIfFront removes the front card only if its id is id and the session accepts judgments.
// The check and the removal happen under one lock, so a concurrent removal from another
// surface cannot make this call drop the card behind the one that was judged.
func (c *SessionController) RemoveCardIfFront(id string) bool {
	c.mu.Lock()
	state := c.snapshotLocked()
	front, ok := state.Front()
	if !ok || front.ID != id || !state.InteractionEnabled() {
		c.mu.Unlock()
		c.logger.Debug("Ignoring removal of card that is not in front", zap.String("card_id", id))
		return false
	}

	c.store.Remove(state.FrontIndex())
	if c.store.IsEmpty() {
		c.gate.Deactivate()
	}
	state = c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Debug("Card removed",
		zap.String("card_id", id),
		zap.Int("remaining_cards", len(state.Cards)),
	)
	if state.IsEmpty() {
		c.logger.Info("All cards reviewed", zap.Int("time_remaining", state.TimeRemaining))
	}
	c.notify(state)
	return true
}

// Reset restores the time budget, reactivates the session and reloads the deck
func (c *SessionController) Reset() {
	c.mu.Lock()
	c.resetLocked()
	state := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Info("Session reset",
		zap.Int("cards", len(state.Cards)),
		zap.Int("time_remaining", state.TimeRemaining),
		zap.Bool("active", state.IsActive),
	)
	c.notify(state)
}

func (c *SessionController) resetLocked() {
	c.timer.Reset()
	c.gate.Activate()
	c.store.Load()
	if c.store.IsEmpty() {
		c.gate.Deactivate()
	}
}

// Tick handles one timer event. Ticks are ignored while the gate is inactive.
func (c *SessionController) Tick() {
	c.mu.Lock()
	if !c.gate.IsActive() {
		c.mu.Unlock()
		return
	}
	changed := c.timer.Decrement()
	expired := c.timer.Expired()
	state := c.snapshotLocked()
	c.mu.Unlock()

	if !changed {
		return
	}
	if expired {
		c.logger.Info("Time is up", zap.Int("remaining_cards", len(state.Cards)))
	}
	c.notify(state)
}

// HandleLifecycle applies an app lifecycle signal to the gate
func (c *SessionController) HandleLifecycle(sig lifecycle.Signal) {
	c.mu.Lock()
	before := c.gate.State()
	c.gate.Handle(sig)
	after := c.gate.State()
	state := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Debug("Lifecycle transition",
		zap.String("signal", string(sig)),
		zap.Stringer("from", before),
		zap.Stringer("to", after),
	)
	if before != after {
		c.notify(state)
	}
}

// Listen registers the controller on bus and returns the detach function
func (c *SessionController) Listen(bus *lifecycle.Bus) func() {
	return bus.Subscribe(c.HandleLifecycle)
}

// Snapshot returns the current session state
func (c *SessionController) Snapshot() domain.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *SessionController) snapshotLocked() domain.SessionState {
	return domain.SessionState{
		Cards:         c.store.Cards(),
		TimeRemaining: c.timer.Remaining(),
		IsActive:      c.gate.IsActive(),
	}
}

// Subscribe registers fn for state changes and returns a function that removes it
func (c *SessionController) Subscribe(fn Observer) func() {
	c.obsMu.Lock()
	id := c.nextObsID
	c.nextObsID++
	c.observers[id] = fn
	c.obsMu.Unlock()

	return func() {
		c.obsMu.Lock()
		delete(c.observers, id)
		c.obsMu.Unlock()
	}
}

func (c *SessionController) notify(state domain.SessionState) {
	c.obsMu.RLock()
	observers := make([]Observer, 0, len(c.observers))
	for _, fn := range c.observers {
		observers = append(observers, fn)
	}
	c.obsMu.RUnlock()

	for _, fn := range observers {
		fn(state)
	}
}
