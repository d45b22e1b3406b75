package domain

// AuthorizedUsersKey is the key under which authorized bot users are persisted
const AuthorizedUsersKey = "AuthorizedUsers"

// UserState represents a bot user's current interaction state
type UserState string

const (
	StateIdle          UserState = "idle"
	StateWaitingPrompt UserState = "waiting_prompt"
	StateWaitingAnswer UserState = "waiting_answer"
)

// StateData holds temporary data for a user's current state
type StateData struct {
	State          UserState
	CurrentPrompt  string
	RevealedCardID string // card whose answer is shown
}

// Editing reports whether the user is inside the add-card flow
func (s StateData) Editing() bool {
	return s.State == StateWaitingPrompt || s.State == StateWaitingAnswer
}
