package service

import (
	"fmt"
	"testing"

	"cardstack/internal/domain"
	"cardstack/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestCardStore_Load(t *testing.T) {
	deck := testutil.NewTestDeck(3)
	encoded, _ := domain.EncodeCards(deck)

	tests := []struct {
		name          string
		mockData      []byte
		mockError     error
		previous      []domain.Card
		expectedCards []domain.Card
	}{
		{
			name:          "persisted deck",
			mockData:      encoded,
			expectedCards: deck,
		},
		{
			name:          "no data on first run",
			mockData:      nil,
			expectedCards: []domain.Card{},
		},
		{
			name:          "malformed data keeps previous cards",
			mockData:      []byte(`{not json`),
			previous:      testutil.NewTestDeck(1),
			expectedCards: testutil.NewTestDeck(1),
		},
		{
			name:          "read error keeps previous cards",
			mockError:     fmt.Errorf("db error"),
			previous:      testutil.NewTestDeck(2),
			expectedCards: testutil.NewTestDeck(2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockKV := new(testutil.MockKVStore)
			mockKV.On("Get", domain.CardsKey).Return(tt.mockData, tt.mockError)

			store := NewCardStore(mockKV, testutil.NewTestLogger())
			store.cards = tt.previous

			cards := store.Load()

			assert.Equal(t, tt.expectedCards, cards)
			assert.Equal(t, tt.expectedCards, store.Cards())
			mockKV.AssertExpectations(t)
		})
	}
}

func TestCardStore_Remove(t *testing.T) {
	tests := []struct {
		name            string
		index           int
		expectedRemoved bool
		expectedIDs     []string
	}{
		{
			name:            "front card",
			index:           0,
			expectedRemoved: true,
			expectedIDs:     []string{"card-2", "card-3"},
		},
		{
			name:            "middle card",
			index:           1,
			expectedRemoved: true,
			expectedIDs:     []string{"card-1", "card-3"},
		},
		{
			name:            "last card",
			index:           2,
			expectedRemoved: true,
			expectedIDs:     []string{"card-1", "card-2"},
		},
		{
			name:            "negative index",
			index:           -1,
			expectedRemoved: false,
			expectedIDs:     []string{"card-1", "card-2", "card-3"},
		},
		{
			name:            "index past the end",
			index:           3,
			expectedRemoved: false,
			expectedIDs:     []string{"card-1", "card-2", "card-3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewCardStore(testutil.NewMemoryKVWithDeck(testutil.NewTestDeck(3)), testutil.NewTestLogger())
			store.Load()

			removed := store.Remove(tt.index)

			assert.Equal(t, tt.expectedRemoved, removed)
			var ids []string
			for _, c := range store.Cards() {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestCardStore_IsEmpty(t *testing.T) {
	store := NewCardStore(testutil.NewMemoryKVWithDeck(testutil.NewTestDeck(1)), testutil.NewTestLogger())
	assert.True(t, store.IsEmpty())

	store.Load()
	assert.False(t, store.IsEmpty())
	assert.Len(t, store.Cards(), 1)

	store.Remove(0)
	assert.True(t, store.IsEmpty())
}

func TestCardStore_CardsIsACopy(t *testing.T) {
	store := NewCardStore(testutil.NewMemoryKVWithDeck(testutil.NewTestDeck(2)), testutil.NewTestLogger())
	store.Load()

	cards := store.Cards()
	cards[0].Prompt = "changed"

	assert.Equal(t, "prompt 1", store.Cards()[0].Prompt)
}

func TestCardStore_LoadRoundTrip(t *testing.T) {
	input, err := domain.EncodeCards([]domain.Card{
		testutil.NewTestCard("x", "Hund", "dog"),
		testutil.NewTestCard("y", "Katze", "cat & kitten"),
	})
	assert.NoError(t, err)

	kv := testutil.NewMemoryKV()
	kv.PutRaw(domain.CardsKey, input)

	store := NewCardStore(kv, testutil.NewTestLogger())
	loaded := store.Load()

	output, err := domain.EncodeCards(loaded)
	assert.NoError(t, err)
	assert.Equal(t, input, output)
}
