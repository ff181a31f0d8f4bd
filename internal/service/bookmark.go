package service

import (
	"errors"
	"time"

	"lexibook/internal/domain"
)

// ErrDuplicateBookmark indicates the (word, part of speech) pair is already saved.
var ErrDuplicateBookmark = errors.New("bookmark already exists")

// BookmarkInput carries the fields needed to save a bookmark
type BookmarkInput struct {
	Word         string
	PartOfSpeech string
	Definition   string
}

// BookmarkService manages the logged-in user's saved definitions.
// It holds no state of its own; every write is a transform applied through
// AuthService.UpdateCurrentUser.
type BookmarkService struct {
	auth *AuthService
}

// NewBookmarkService creates a new bookmark service
func NewBookmarkService(auth *AuthService) *BookmarkService {
	return &BookmarkService{auth: auth}
}

// Add saves a new bookmark for the current user. The (word, partOfSpeech)
// pair is unique within a user's collection; saving an existing pair returns
// ErrDuplicateBookmark.
func (s *BookmarkService) Add(input BookmarkInput) error {
	key := domain.BookmarkKey{Word: input.Word, PartOfSpeech: input.PartOfSpeech}
	if s.Contains(key) {
		return ErrDuplicateBookmark
	}

	bookmark := domain.Bookmark{
		Word:         input.Word,
		PartOfSpeech: input.PartOfSpeech,
		Definition:   input.Definition,
		DateCreated:  time.Now(),
	}

	return s.auth.UpdateCurrentUser(func(current domain.User) domain.User {
		for _, b := range current.Bookmarks {
			if b.Key() == key {
				// Already present, keep the collection unchanged
				return current
			}
		}
		current.Bookmarks = append(current.Bookmarks, bookmark)
		return current
	})
}

// Remove deletes every bookmark matching key. Removing an absent key is a
// no-op, not an error.
func (s *BookmarkService) Remove(key domain.BookmarkKey) error {
	return s.auth.UpdateCurrentUser(func(current domain.User) domain.User {
		kept := current.Bookmarks[:0]
		for _, b := range current.Bookmarks {
			if b.Key() != key {
				kept = append(kept, b)
			}
		}
		current.Bookmarks = kept
		return current
	})
}

// Contains reports whether the current user has a bookmark with key.
// It returns false when nobody is logged in.
func (s *BookmarkService) Contains(key domain.BookmarkKey) bool {
	user, ok := s.auth.CurrentUser()
	if !ok {
		return false
	}
	for _, b := range user.Bookmarks {
		if b.Key() == key {
			return true
		}
	}
	return false
}

// List returns the current user's bookmarks in insertion order, or an empty
// list when nobody is logged in
func (s *BookmarkService) List() []domain.Bookmark {
	user, ok := s.auth.CurrentUser()
	if !ok {
		return []domain.Bookmark{}
	}
	return user.Bookmarks
}
