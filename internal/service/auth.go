package service

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"cardstack/internal/domain"
	"cardstack/internal/repository"
)

// AuthService handles bot authentication logic
type AuthService struct {
	kv          repository.KVStore
	botPassword string

	mu sync.Mutex
}

// NewAuthService creates a new auth service
func NewAuthService(kv repository.KVStore, botPassword string) *AuthService {
	return &AuthService{
		kv:          kv,
		botPassword: botPassword,
	}
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	return password != "" && password == s.botPassword
}

// IsAuthorized checks if user is authorized
func (s *AuthService) IsAuthorized(userID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.readLocked()
	if err != nil {
		return false, err
	}
	return slices.Contains(users, userID), nil
}

// AuthorizeUser authorizes a user
func (s *AuthService) AuthorizeUser(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.readLocked()
	if err != nil {
		return err
	}
	if slices.Contains(users, userID) {
		return nil
	}

	data, err := json.Marshal(append(users, userID))
	if err != nil {
		return fmt.Errorf("failed to encode authorized users: %w", err)
	}
	return s.kv.Put(domain.AuthorizedUsersKey, data)
}

func (s *AuthService) readLocked() ([]int64, error) {
	data, err := s.kv.Get(domain.AuthorizedUsersKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read authorized users: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var users []int64
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to decode authorized users: %w", err)
	}
	return users, nil
}
