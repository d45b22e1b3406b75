package domain

// DefaultTimeBudget is the number of seconds a fresh session starts with
const DefaultTimeBudget = 100

// SessionState is a read-only snapshot of a review session
type SessionState struct {
	Cards         []Card
	TimeRemaining int
	IsActive      bool
}

// IsEmpty reports whether all cards have been reviewed
func (s SessionState) IsEmpty() bool {
	return len(s.Cards) == 0
}

// FrontIndex returns the index of the card under review, or -1 when the stack is empty.
// Callers pass it straight to RemoveCard; -1 is ignored there.
func (s SessionState) FrontIndex() int {
	if s.IsEmpty() {
		return -1
	}
	return 0
}

// Front returns the card under review
func (s SessionState) Front() (Card, bool) {
	if s.IsEmpty() {
		return Card{}, false
	}
	return s.Cards[0], true
}

// TimeUp reports whether the countdown has run out
func (s SessionState) TimeUp() bool {
	return s.TimeRemaining <= 0
}

// InteractionEnabled reports whether the presentation layer may accept card judgments
func (s SessionState) InteractionEnabled() bool {
	return s.IsActive && !s.TimeUp() && !s.IsEmpty()
}

// Finished reports whether the session ended by exhaustion or expiry
func (s SessionState) Finished() bool {
	return s.IsEmpty() || s.TimeUp()
}
