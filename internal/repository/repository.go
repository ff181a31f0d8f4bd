package repository

import (
	"context"

	"lexibook/internal/domain"
)

// StateStore defines durable key/value operations for application state
type StateStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// DictionaryGateway defines outbound lookups against the dictionary API
type DictionaryGateway interface {
	FetchWord(ctx context.Context, word string) ([]domain.Word, error)
}
