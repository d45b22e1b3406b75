package domain

import (
	"encoding/json"
	"fmt"
)

// CardsKey is the key under which the card deck is persisted
const CardsKey = "Cards"

// Card represents a prompt-answer pair
type Card struct {
	ID     string `json:"id" yaml:"id" validate:"required"`
	Prompt string `json:"prompt" yaml:"prompt" validate:"required"`
	Answer string `json:"answer" yaml:"answer" validate:"required"`
}

// DecodeCards parses a persisted card deck
func DecodeCards(data []byte) ([]Card, error) {
	var cards []Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("failed to decode cards: %w", err)
	}
	return cards, nil
}

// EncodeCards serializes a card deck for persistence
func EncodeCards(cards []Card) ([]byte, error) {
	if cards == nil {
		cards = []Card{}
	}
	data, err := json.Marshal(cards)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cards: %w", err)
	}
	return data, nil
}
