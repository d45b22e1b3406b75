package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionState_Queries(t *testing.T) {
	cards := []Card{{ID: "1", Prompt: "p1", Answer: "a1"}, {ID: "2", Prompt: "p2", Answer: "a2"}}

	tests := []struct {
		name        string
		state       SessionState
		frontIndex  int
		interaction bool
		finished    bool
	}{
		{
			name:        "active with cards and time",
			state:       SessionState{Cards: cards, TimeRemaining: 50, IsActive: true},
			frontIndex:  0,
			interaction: true,
			finished:    false,
		},
		{
			name:        "time up",
			state:       SessionState{Cards: cards, TimeRemaining: 0, IsActive: true},
			frontIndex:  0,
			interaction: false,
			finished:    true,
		},
		{
			name:        "backgrounded",
			state:       SessionState{Cards: cards, TimeRemaining: 50, IsActive: false},
			frontIndex:  0,
			interaction: false,
			finished:    false,
		},
		{
			name:        "empty stack",
			state:       SessionState{TimeRemaining: 50, IsActive: false},
			frontIndex:  -1,
			interaction: false,
			finished:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.frontIndex, tt.state.FrontIndex())
			assert.Equal(t, tt.interaction, tt.state.InteractionEnabled())
			assert.Equal(t, tt.finished, tt.state.Finished())
		})
	}
}

func TestSessionState_Front(t *testing.T) {
	state := SessionState{Cards: []Card{{ID: "1", Prompt: "p1", Answer: "a1"}}}

	card, ok := state.Front()
	assert.True(t, ok)
	assert.Equal(t, "p1", card.Prompt)

	_, ok = SessionState{}.Front()
	assert.False(t, ok)
}
