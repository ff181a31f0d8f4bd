package domain

import "time"

// User represents a registered account.
// Passwords are stored as plain text, matching the persisted data of the
// browser version of this application. Hardening is a known open item.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	Bookmarks []Bookmark `json:"bookmarks"`
}

// Bookmark is one saved definition belonging to a user
type Bookmark struct {
	Word         string    `json:"word"`
	PartOfSpeech string    `json:"partOfSpeech"`
	Definition   string    `json:"definition"`
	DateCreated  time.Time `json:"dateCreated"`
}

// Key returns the identity of the bookmark
func (b Bookmark) Key() BookmarkKey {
	return BookmarkKey{Word: b.Word, PartOfSpeech: b.PartOfSpeech}
}

// BookmarkKey uniquely identifies a bookmark within one user's collection
type BookmarkKey struct {
	Word         string
	PartOfSpeech string
}

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle                 UserState = "idle"
	StateWaitingSearchWord    UserState = "waiting_search_word"
	StateWaitingSynonymWord   UserState = "waiting_synonym_word"
	StateWaitingLoginEmail    UserState = "waiting_login_email"
	StateWaitingLoginPassword UserState = "waiting_login_password"
	StateWaitingRegEmail      UserState = "waiting_reg_email"
	StateWaitingRegPassword   UserState = "waiting_reg_password"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State UserState
	Email string // pending email during login/register conversations
}
