package service

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Resetter restarts a review session
type Resetter interface {
	Reset()
}

// EditBridge couples the card editing surface to the review session:
// dismissing the editor always restarts the session.
type EditBridge struct {
	session Resetter
	logger  *zap.Logger
	open    atomic.Bool
}

// NewEditBridge creates a bridge that resets session on dismiss
func NewEditBridge(session Resetter, logger *zap.Logger) *EditBridge {
	return &EditBridge{session: session, logger: logger}
}

// Opened records that the editing surface is shown
func (b *EditBridge) Opened() {
	b.open.Store(true)
	b.logger.Debug("Edit surface opened")
}

// Dismissed records that the editing surface closed and resets the session
func (b *EditBridge) Dismissed() {
	b.open.Store(false)
	b.logger.Debug("Edit surface dismissed, resetting session")
	b.session.Reset()
}

// IsOpen reports whether the editing surface is shown
func (b *EditBridge) IsOpen() bool {
	return b.open.Load()
}
