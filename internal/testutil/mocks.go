package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockKVStore is a mock for KVStore
type MockKVStore struct {
	mock.Mock
}

func (m *MockKVStore) Get(key string) ([]byte, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKVStore) Put(key string, value []byte) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func (m *MockKVStore) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

// MockResetter is a mock for Resetter
type MockResetter struct {
	mock.Mock
}

func (m *MockResetter) Reset() {
	m.Called()
}
