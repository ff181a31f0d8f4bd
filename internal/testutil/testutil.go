package testutil

import (
	"time"

	"lexibook/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(id, email, password string) domain.User {
	return domain.User{
		ID:        id,
		Email:     email,
		Password:  password,
		Bookmarks: []domain.Bookmark{},
	}
}

// NewTestBookmark creates a test bookmark
func NewTestBookmark(word, partOfSpeech, definition string) domain.Bookmark {
	return domain.Bookmark{
		Word:         word,
		PartOfSpeech: partOfSpeech,
		Definition:   definition,
		DateCreated:  time.Now(),
	}
}

// NewTestWord creates a dictionary entry with one meaning
func NewTestWord(word, partOfSpeech string, synonyms ...string) domain.Word {
	return domain.Word{
		Word: word,
		Meanings: []domain.Meaning{
			{
				PartOfSpeech: partOfSpeech,
				Definitions: []domain.Definition{
					{Definition: "a definition of " + word},
				},
				Synonyms: synonyms,
				Antonyms: []string{},
			},
		},
	}
}
