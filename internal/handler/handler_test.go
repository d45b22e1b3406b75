package handler

import (
	"testing"

	"cardstack/internal/domain"
	"cardstack/internal/lifecycle"
	"cardstack/internal/service"
	"cardstack/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(resetter service.Resetter) *Handler {
	logger := testutil.NewTestLogger()
	return NewHandler(nil, nil, nil, nil, service.NewEditBridge(resetter, logger), nil, logger)
}

func TestHandler_State(t *testing.T) {
	h := newTestHandler(new(testutil.MockResetter))

	assert.Equal(t, domain.StateIdle, h.GetState(1).State)

	h.SetState(1, &domain.StateData{State: domain.StateWaitingAnswer, CurrentPrompt: "hello"})
	assert.Equal(t, domain.StateWaitingAnswer, h.GetState(1).State)
	assert.Equal(t, "hello", h.GetState(1).CurrentPrompt)
	assert.Equal(t, domain.StateIdle, h.GetState(2).State)

	h.ResetState(1)
	assert.Equal(t, domain.StateIdle, h.GetState(1).State)
	assert.Empty(t, h.GetState(1).CurrentPrompt)
}

func TestHandler_LeaveEditing(t *testing.T) {
	tests := []struct {
		name          string
		state         domain.UserState
		expectedReset bool
	}{
		{name: "idle user", state: domain.StateIdle, expectedReset: false},
		{name: "waiting for prompt", state: domain.StateWaitingPrompt, expectedReset: true},
		{name: "waiting for answer", state: domain.StateWaitingAnswer, expectedReset: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetter := new(testutil.MockResetter)
			if tt.expectedReset {
				resetter.On("Reset").Once()
			}
			h := newTestHandler(resetter)
			h.SetState(7, &domain.StateData{State: tt.state, RevealedCardID: "card-1"})

			left := h.leaveEditing(7)

			assert.Equal(t, tt.expectedReset, left)
			assert.Equal(t, domain.StateIdle, h.GetState(7).State)
			assert.Empty(t, h.GetState(7).RevealedCardID)
			resetter.AssertExpectations(t)
			if !tt.expectedReset {
				resetter.AssertNotCalled(t, "Reset")
			}
		})
	}
}

const (
	testUserID   = int64(42)
	testPassword = "secret"
)

type flow struct {
	h       *Handler
	session *service.SessionController
	editor  *service.EditService
	bridge  *service.EditBridge
	auth    *service.AuthService
}

// newFlow wires a handler against a real session over an in-memory store
func newFlow(t *testing.T, cards []domain.Card) flow {
	t.Helper()
	logger := testutil.NewTestLogger()
	kv := testutil.NewMemoryKVWithDeck(cards)

	session := service.NewSessionController(service.NewCardStore(kv, logger), domain.DefaultTimeBudget, logger)
	bus := lifecycle.NewBus(logger)
	t.Cleanup(session.Listen(bus))

	f := flow{
		session: session,
		editor:  service.NewEditService(kv, logger),
		bridge:  service.NewEditBridge(session, logger),
		auth:    service.NewAuthService(kv, testPassword),
	}
	f.h = NewHandler(nil, f.auth, session, f.editor, f.bridge, bus, logger)
	return f
}

func (f flow) authorize(t *testing.T) {
	t.Helper()
	require.NoError(t, f.auth.AuthorizeUser(testUserID))
}

func frontCardID(t *testing.T, session *service.SessionController) string {
	t.Helper()
	front, ok := session.Snapshot().Front()
	require.True(t, ok)
	return front.ID
}

func TestHandler_Reveal(t *testing.T) {
	tests := []struct {
		name             string
		data             string
		expectedRevealed string
	}{
		{name: "front card", data: "card-1", expectedRevealed: "card-1"},
		{name: "card behind the front", data: "card-2", expectedRevealed: ""},
		{name: "empty payload", data: "", expectedRevealed: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFlow(t, testutil.NewTestDeck(3))
			c := testutil.NewFakeCallback(testUserID, btnReveal.Unique, tt.data)

			require.NoError(t, f.h.handleReveal(c))

			assert.Equal(t, tt.expectedRevealed, f.h.GetState(testUserID).RevealedCardID)
			assert.Equal(t, 1, c.Responded())
			if tt.expectedRevealed != "" {
				assert.Contains(t, c.LastReply(), "answer 1")
			} else {
				assert.NotContains(t, c.LastReply(), "answer 1")
			}
			assert.Len(t, f.session.Snapshot().Cards, 3)
		})
	}
}

func TestHandler_Restart(t *testing.T) {
	tests := []struct {
		name          string
		judged        int
		expectedCards int
	}{
		{name: "ignored while cards and time remain", judged: 1, expectedCards: 1},
		{name: "restarts an exhausted stack", judged: 2, expectedCards: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFlow(t, testutil.NewTestDeck(2))
			for i := 0; i < tt.judged; i++ {
				require.True(t, f.session.RemoveCardIfFront(frontCardID(t, f.session)))
			}

			c := testutil.NewFakeCallback(testUserID, btnRestart.Unique, "")
			require.NoError(t, f.h.handleRestart(c))

			state := f.session.Snapshot()
			assert.Len(t, state.Cards, tt.expectedCards)
			assert.True(t, state.IsActive)
		})
	}
}

func TestHandler_PauseAndResume(t *testing.T) {
	f := newFlow(t, testutil.NewTestDeck(2))

	pause := testutil.NewFakeContext(testUserID, "/pause")
	require.NoError(t, f.h.handlePause(pause))
	assert.False(t, f.session.Snapshot().IsActive)
	assert.Contains(t, pause.LastReply(), "Paused")

	// The countdown is frozen and judgments are refused while paused
	f.session.Tick()
	assert.Equal(t, domain.DefaultTimeBudget, f.session.Snapshot().TimeRemaining)
	require.NoError(t, f.h.handleJudgment(testutil.NewFakeCallback(testUserID, btnCorrect.Unique, "card-1")))
	assert.Len(t, f.session.Snapshot().Cards, 2)

	resume := testutil.NewFakeContext(testUserID, "/resume")
	require.NoError(t, f.h.handleResume(resume))
	assert.True(t, f.session.Snapshot().IsActive)
	assert.NotContains(t, resume.LastReply(), "Paused")
}

func TestHandler_ResumeOnEmptyStackStaysInactive(t *testing.T) {
	f := newFlow(t, nil)

	require.NoError(t, f.h.handleResume(testutil.NewFakeContext(testUserID, "/resume")))

	assert.False(t, f.session.Snapshot().IsActive)
}

func TestHandler_TextPassword(t *testing.T) {
	tests := []struct {
		name               string
		text               string
		expectedAuthorized bool
		expectedReplies    []string
	}{
		{
			name:               "wrong password",
			text:               "guess",
			expectedAuthorized: false,
			expectedReplies:    []string{"Wrong password"},
		},
		{
			name:               "correct password",
			text:               "  " + testPassword + " ",
			expectedAuthorized: true,
			expectedReplies:    []string{"✅ Access granted!"},
		},
		{
			name:               "commands are ignored",
			text:               "/" + testPassword,
			expectedAuthorized: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFlow(t, testutil.NewTestDeck(1))
			c := testutil.NewFakeContext(testUserID, tt.text)

			require.NoError(t, f.h.handleText(c))

			authorized, err := f.auth.IsAuthorized(testUserID)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAuthorized, authorized)

			sent := c.Sent()
			for i, reply := range tt.expectedReplies {
				require.Greater(t, len(sent), i)
				assert.Equal(t, reply, sent[i])
			}
			if tt.expectedAuthorized {
				// The card under review follows the greeting
				assert.Contains(t, c.LastReply(), "prompt 1")
			}
			if len(tt.expectedReplies) == 0 {
				assert.Empty(t, sent)
			}
		})
	}
}

func TestHandler_AddFlow(t *testing.T) {
	f := newFlow(t, testutil.NewTestDeck(1))
	f.authorize(t)

	require.NoError(t, f.h.handleAdd(testutil.NewFakeContext(testUserID, "/add")))
	assert.True(t, f.bridge.IsOpen())
	assert.Equal(t, domain.StateWaitingPrompt, f.h.GetState(testUserID).State)

	require.NoError(t, f.h.handleText(testutil.NewFakeContext(testUserID, "hola")))
	assert.Equal(t, domain.StateWaitingAnswer, f.h.GetState(testUserID).State)
	assert.Equal(t, "hola", f.h.GetState(testUserID).CurrentPrompt)

	saved := testutil.NewFakeContext(testUserID, "hello")
	require.NoError(t, f.h.handleText(saved))
	assert.Contains(t, saved.LastReply(), "Saved")
	assert.Equal(t, domain.StateWaitingPrompt, f.h.GetState(testUserID).State)

	cards, err := f.editor.Cards()
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "hola", cards[1].Prompt)
	assert.Equal(t, "hello", cards[1].Answer)

	// The running session only picks up the edit once the flow is done
	require.True(t, f.session.RemoveCardIfFront("card-1"))
	assert.True(t, f.session.Snapshot().IsEmpty())

	done := testutil.NewFakeContext(testUserID, "/done")
	require.NoError(t, f.h.handleDone(done))

	assert.False(t, f.bridge.IsOpen())
	assert.Equal(t, domain.StateIdle, f.h.GetState(testUserID).State)
	state := f.session.Snapshot()
	assert.Len(t, state.Cards, 2)
	assert.True(t, state.IsActive)
	assert.Contains(t, done.LastReply(), "prompt 1")
}

func TestHandler_AddFlowRejectsBlankAnswer(t *testing.T) {
	f := newFlow(t, nil)
	f.authorize(t)
	f.h.SetState(testUserID, &domain.StateData{State: domain.StateWaitingAnswer, CurrentPrompt: "hola"})

	c := testutil.NewFakeContext(testUserID, "   ")
	require.NoError(t, f.h.handleText(c))

	assert.Contains(t, c.LastReply(), "Could not save")
	assert.Equal(t, domain.StateWaitingAnswer, f.h.GetState(testUserID).State)
	cards, err := f.editor.Cards()
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestHandler_DoneWithoutEditingKeepsSession(t *testing.T) {
	f := newFlow(t, testutil.NewTestDeck(2))
	require.True(t, f.session.RemoveCardIfFront("card-1"))

	require.NoError(t, f.h.handleDone(testutil.NewFakeContext(testUserID, "/done")))

	assert.Len(t, f.session.Snapshot().Cards, 1)
}
