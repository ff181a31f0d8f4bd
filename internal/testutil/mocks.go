package testutil

import (
	"context"

	"lexibook/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockStateStore is a mock for StateStore
type MockStateStore struct {
	mock.Mock
}

func (m *MockStateStore) Get(key string) (string, bool, error) {
	args := m.Called(key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockStateStore) Set(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func (m *MockStateStore) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

// MockDictionaryGateway is a mock for DictionaryGateway
type MockDictionaryGateway struct {
	mock.Mock
}

func (m *MockDictionaryGateway) FetchWord(ctx context.Context, word string) ([]domain.Word, error) {
	args := m.Called(ctx, word)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}
