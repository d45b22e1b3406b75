package service

import "cardstack/internal/lifecycle"

// GateState is the state of the lifecycle gate
type GateState int

const (
	GateActive GateState = iota
	GateInactive
)

func (s GateState) String() string {
	if s == GateActive {
		return "active"
	}
	return "inactive"
}

// LifecycleGate decides whether the countdown may run.
// hasCards is consulted when the app returns to the foreground.
type LifecycleGate struct {
	state    GateState
	hasCards func() bool
}

// NewLifecycleGate creates a gate in the Active state
func NewLifecycleGate(hasCards func() bool) *LifecycleGate {
	return &LifecycleGate{state: GateActive, hasCards: hasCards}
}

// ResignActive deactivates the gate unconditionally
func (g *LifecycleGate) ResignActive() {
	g.state = GateInactive
}

// EnterForeground reactivates the gate if cards remain
func (g *LifecycleGate) EnterForeground() {
	if g.hasCards() {
		g.state = GateActive
	}
}

// Handle applies a lifecycle signal
func (g *LifecycleGate) Handle(sig lifecycle.Signal) {
	switch sig {
	case lifecycle.ResignActive:
		g.ResignActive()
	case lifecycle.EnterForeground:
		g.EnterForeground()
	}
}

func (g *LifecycleGate) Activate() { g.state = GateActive }

func (g *LifecycleGate) Deactivate() { g.state = GateInactive }

func (g *LifecycleGate) IsActive() bool { return g.state == GateActive }

func (g *LifecycleGate) State() GateState { return g.state }
