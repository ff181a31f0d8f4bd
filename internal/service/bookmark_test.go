package service

import (
	"testing"

	"lexibook/internal/domain"

	"github.com/stretchr/testify/assert"
)

func newBookmarkService(t *testing.T, loggedIn bool) *BookmarkService {
	t.Helper()
	auth, _ := newAuthService(t)
	assert.NoError(t, auth.Register("a@b.com", "secret"))
	if loggedIn {
		assert.NoError(t, auth.Login("a@b.com", "secret"))
	}
	return NewBookmarkService(auth)
}

func TestBookmarkService_AddListRemove(t *testing.T) {
	bookmarks := newBookmarkService(t, true)
	key := domain.BookmarkKey{Word: "run", PartOfSpeech: "verb"}

	err := bookmarks.Add(BookmarkInput{Word: "run", PartOfSpeech: "verb", Definition: "to move fast"})
	assert.NoError(t, err)

	list := bookmarks.List()
	assert.Len(t, list, 1)
	assert.Equal(t, "run", list[0].Word)
	assert.Equal(t, "verb", list[0].PartOfSpeech)
	assert.Equal(t, "to move fast", list[0].Definition)
	assert.False(t, list[0].DateCreated.IsZero())

	assert.NoError(t, bookmarks.Remove(key))
	assert.Empty(t, bookmarks.List())
}

func TestBookmarkService_RemoveAbsentKeyIsNoop(t *testing.T) {
	bookmarks := newBookmarkService(t, true)

	assert.NoError(t, bookmarks.Add(BookmarkInput{Word: "run", PartOfSpeech: "verb", Definition: "to move fast"}))

	err := bookmarks.Remove(domain.BookmarkKey{Word: "walk", PartOfSpeech: "verb"})
	assert.NoError(t, err)
	assert.Len(t, bookmarks.List(), 1)
}

func TestBookmarkService_RemoveMatchesFullKey(t *testing.T) {
	bookmarks := newBookmarkService(t, true)

	assert.NoError(t, bookmarks.Add(BookmarkInput{Word: "run", PartOfSpeech: "verb", Definition: "to move fast"}))
	assert.NoError(t, bookmarks.Add(BookmarkInput{Word: "run", PartOfSpeech: "noun", Definition: "an act of running"}))

	// Same word, different part of speech survives
	assert.NoError(t, bookmarks.Remove(domain.BookmarkKey{Word: "run", PartOfSpeech: "verb"}))

	list := bookmarks.List()
	assert.Len(t, list, 1)
	assert.Equal(t, "noun", list[0].PartOfSpeech)
}

func TestBookmarkService_Contains(t *testing.T) {
	bookmarks := newBookmarkService(t, true)
	key := domain.BookmarkKey{Word: "run", PartOfSpeech: "verb"}

	assert.False(t, bookmarks.Contains(key))

	assert.NoError(t, bookmarks.Add(BookmarkInput{Word: "run", PartOfSpeech: "verb", Definition: "to move fast"}))
	assert.True(t, bookmarks.Contains(key))

	assert.NoError(t, bookmarks.Remove(key))
	assert.False(t, bookmarks.Contains(key))
}

func TestBookmarkService_DuplicateAdd(t *testing.T) {
	bookmarks := newBookmarkService(t, true)

	assert.NoError(t, bookmarks.Add(BookmarkInput{Word: "run", PartOfSpeech: "verb", Definition: "to move fast"}))

	err := bookmarks.Add(BookmarkInput{Word: "run", PartOfSpeech: "verb", Definition: "a different definition"})
	assert.ErrorIs(t, err, ErrDuplicateBookmark)
	assert.Len(t, bookmarks.List(), 1)
}

func TestBookmarkService_NoSession(t *testing.T) {
	bookmarks := newBookmarkService(t, false)
	key := domain.BookmarkKey{Word: "run", PartOfSpeech: "verb"}

	// Membership and listing degrade gracefully without a session
	assert.False(t, bookmarks.Contains(key))
	assert.Empty(t, bookmarks.List())

	// Writes require a session
	err := bookmarks.Add(BookmarkInput{Word: "run", PartOfSpeech: "verb", Definition: "to move fast"})
	assert.ErrorIs(t, err, ErrNoActiveSession)

	err = bookmarks.Remove(key)
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestBookmarkService_BookmarksArePerUser(t *testing.T) {
	auth, _ := newAuthService(t)
	assert.NoError(t, auth.Register("a@b.com", "secret"))
	assert.NoError(t, auth.Register("c@d.com", "secret"))
	bookmarks := NewBookmarkService(auth)

	assert.NoError(t, auth.Login("a@b.com", "secret"))
	assert.NoError(t, bookmarks.Add(BookmarkInput{Word: "run", PartOfSpeech: "verb", Definition: "to move fast"}))
	auth.Logout()

	assert.NoError(t, auth.Login("c@d.com", "secret"))
	assert.Empty(t, bookmarks.List())
}
