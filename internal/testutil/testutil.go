package testutil

import (
	"fmt"
	"sync"

	"cardstack/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestCard creates a test card
func NewTestCard(id, prompt, answer string) domain.Card {
	return domain.Card{
		ID:     id,
		Prompt: prompt,
		Answer: answer,
	}
}

// NewTestDeck creates n numbered test cards
func NewTestDeck(n int) []domain.Card {
	cards := make([]domain.Card, 0, n)
	for i := 1; i <= n; i++ {
		cards = append(cards, NewTestCard(
			fmt.Sprintf("card-%d", i),
			fmt.Sprintf("prompt %d", i),
			fmt.Sprintf("answer %d", i),
		))
	}
	return cards
}

// MemoryKV is an in-memory KVStore for tests
type MemoryKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryKV creates an empty in-memory store
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

// NewMemoryKVWithDeck creates a store holding cards under the cards key
func NewMemoryKVWithDeck(cards []domain.Card) *MemoryKV {
	kv := NewMemoryKV()
	data, err := domain.EncodeCards(cards)
	if err != nil {
		panic(err)
	}
	kv.data[domain.CardsKey] = data
	return kv
}

func (m *MemoryKV) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryKV) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// PutRaw stores raw bytes, bypassing encoding
func (m *MemoryKV) PutRaw(key string, value []byte) {
	_ = m.Put(key, value)
}
