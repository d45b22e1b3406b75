package service

import (
	"cardstack/internal/domain"
	"cardstack/internal/repository"

	"go.uber.org/zap"
)

// CardStore holds the ordered queue of cards for the current session.
// Index 0 is the front card. It is not safe for concurrent use; the
// SessionController serializes access.
type CardStore struct {
	kv     repository.KVStore
	logger *zap.Logger
	cards  []domain.Card
}

// NewCardStore creates an empty card store backed by kv
func NewCardStore(kv repository.KVStore, logger *zap.Logger) *CardStore {
	return &CardStore{
		kv:     kv,
		logger: logger,
	}
}

// Load replaces the queue with the persisted deck.
// Any failure leaves the queue unchanged.
func (s *CardStore) Load() []domain.Card {
	data, err := s.kv.Get(domain.CardsKey)
	if err != nil {
		s.logger.Warn("Failed to read persisted cards, keeping current queue", zap.Error(err))
		return s.Cards()
	}
	if data == nil {
		s.logger.Debug("No persisted cards found")
		return s.Cards()
	}

	cards, err := domain.DecodeCards(data)
	if err != nil {
		s.logger.Warn("Persisted cards are malformed, keeping current queue", zap.Error(err))
		return s.Cards()
	}

	s.cards = cards
	s.logger.Info("Cards loaded", zap.Int("count", len(cards)))
	return s.Cards()
}

// Remove drops the card at index. Out of range indexes are ignored.
func (s *CardStore) Remove(index int) bool {
	if index < 0 || index >= len(s.cards) {
		return false
	}
	s.cards = append(s.cards[:index:index], s.cards[index+1:]...)
	return true
}

// IsEmpty reports whether the queue has no cards
func (s *CardStore) IsEmpty() bool {
	return len(s.cards) == 0
}

// Cards returns a copy of the queue
func (s *CardStore) Cards() []domain.Card {
	out := make([]domain.Card, len(s.cards))
	copy(out, s.cards)
	return out
}
