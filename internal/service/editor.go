package service

import (
	"fmt"
	"strings"
	"sync"

	"cardstack/internal/domain"
	"cardstack/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EditService handles writes to the persisted card deck
type EditService struct {
	kv       repository.KVStore
	validate *validator.Validate
	logger   *zap.Logger

	mu sync.Mutex
}

// NewEditService creates a new edit service
func NewEditService(kv repository.KVStore, logger *zap.Logger) *EditService {
	return &EditService{
		kv:       kv,
		validate: validator.New(),
		logger:   logger,
	}
}

// Cards returns the persisted deck. A missing deck is empty.
func (s *EditService) Cards() ([]domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked()
}

// AddCard appends a new prompt-answer pair to the deck
func (s *EditService) AddCard(prompt, answer string) (domain.Card, error) {
	card := domain.Card{
		ID:     uuid.NewString(),
		Prompt: strings.TrimSpace(prompt),
		Answer: strings.TrimSpace(answer),
	}
	if err := s.validate.Struct(card); err != nil {
		return domain.Card{}, fmt.Errorf("prompt and answer cannot be empty: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cards, err := s.readLocked()
	if err != nil {
		return domain.Card{}, err
	}
	cards = append(cards, card)

	if err := s.writeLocked(cards); err != nil {
		return domain.Card{}, err
	}

	s.logger.Info("Card added", zap.String("card_id", card.ID), zap.Int("deck_size", len(cards)))
	return card, nil
}

// DeleteCard removes the card with id. Deleting an unknown id is not an error.
func (s *EditService) DeleteCard(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards, err := s.readLocked()
	if err != nil {
		return err
	}

	kept := cards[:0]
	for _, c := range cards {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(cards) {
		return nil
	}

	if err := s.writeLocked(kept); err != nil {
		return err
	}
	s.logger.Info("Card deleted", zap.String("card_id", id), zap.Int("deck_size", len(kept)))
	return nil
}

// Import validates cards and either appends them to the deck or replaces it.
// Cards without an id get a fresh one.
func (s *EditService) Import(cards []domain.Card, replace bool) (int, error) {
	for i := range cards {
		if cards[i].ID == "" {
			cards[i].ID = uuid.NewString()
		}
		if err := s.validate.Struct(cards[i]); err != nil {
			return 0, fmt.Errorf("invalid card %d: %w", i+1, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	deck := cards
	if !replace {
		existing, err := s.readLocked()
		if err != nil {
			return 0, err
		}
		deck = append(existing, cards...)
	}

	if err := s.writeLocked(deck); err != nil {
		return 0, err
	}

	s.logger.Info("Cards imported",
		zap.Int("imported", len(cards)),
		zap.Int("deck_size", len(deck)),
		zap.Bool("replace", replace),
	)
	return len(deck), nil
}

func (s *EditService) readLocked() ([]domain.Card, error) {
	data, err := s.kv.Get(domain.CardsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read cards: %w", err)
	}
	if data == nil {
		return []domain.Card{}, nil
	}
	return domain.DecodeCards(data)
}

func (s *EditService) writeLocked(cards []domain.Card) error {
	data, err := domain.EncodeCards(cards)
	if err != nil {
		return err
	}
	if err := s.kv.Put(domain.CardsKey, data); err != nil {
		return fmt.Errorf("failed to save cards: %w", err)
	}
	return nil
}
