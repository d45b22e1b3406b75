package middleware

import (
	"errors"
	"testing"

	"cardstack/internal/domain"
	"cardstack/internal/service"
	"cardstack/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name              string
		authorized        bool
		callback          bool
		expectedNext      bool
		expectedReply     string
		expectedResponded int
	}{
		{
			name:         "authorized user passes through",
			authorized:   true,
			expectedNext: true,
		},
		{
			name:          "unauthorized command is asked for the password",
			expectedReply: "Hi! Send the password to continue:",
		},
		{
			name:              "unauthorized tap is acknowledged",
			callback:          true,
			expectedReply:     "Hi! Send the password to continue:",
			expectedResponded: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := service.NewAuthService(testutil.NewMemoryKV(), "secret")
			if tt.authorized {
				require.NoError(t, auth.AuthorizeUser(7))
			}

			c := testutil.NewFakeContext(7, "/card")
			if tt.callback {
				c = testutil.NewFakeCallback(7, "correct", "card-1")
			}

			called := false
			next := func(tele.Context) error {
				called = true
				return nil
			}

			err := AuthMiddleware(auth, testutil.NewTestLogger())(next)(c)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedNext, called)
			assert.Equal(t, tt.expectedResponded, c.Responded())
			if tt.expectedReply != "" {
				assert.Equal(t, []string{tt.expectedReply}, c.Sent())
			} else {
				assert.Empty(t, c.Sent())
			}
		})
	}
}

func TestAuthMiddleware_StoreError(t *testing.T) {
	kv := new(testutil.MockKVStore)
	kv.On("Get", domain.AuthorizedUsersKey).Return(nil, errors.New("connection refused"))
	auth := service.NewAuthService(kv, "secret")
	c := testutil.NewFakeContext(7, "/card")

	called := false
	err := AuthMiddleware(auth, testutil.NewTestLogger())(func(tele.Context) error {
		called = true
		return nil
	})(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, []string{"Something went wrong. Please try again later."}, c.Sent())
	kv.AssertExpectations(t)
}
