package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"lexibook/internal/domain"
	"lexibook/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Storage keys. These match the persisted shape of the browser version of
// the application, so existing exported data stays readable.
const (
	usersKey   = "userData"
	sessionKey = "loggedInUserId"
)

var (
	// ErrDuplicateEmail indicates the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrEmailNotFound indicates no account exists for the email.
	ErrEmailNotFound = errors.New("email not found")
	// ErrPasswordMismatch indicates the password does not match the account.
	ErrPasswordMismatch = errors.New("password does not match")
	// ErrNoActiveSession indicates an operation that requires a logged-in user.
	ErrNoActiveSession = errors.New("no active session")
)

// AuthService owns the registered user collection and the current session.
// All bookmark writes flow through UpdateCurrentUser, so the user collection
// has a single read-modify-write path.
type AuthService struct {
	store  repository.StateStore
	logger *zap.Logger

	mu            sync.RWMutex
	users         []domain.User
	sessionUserID string
	listeners     []func(domain.User)
}

// NewAuthService creates an auth service, loading users and the persisted
// session from the state store. Corrupt user data is a startup failure.
func NewAuthService(store repository.StateStore, logger *zap.Logger) (*AuthService, error) {
	s := &AuthService{
		store:  store,
		logger: logger,
	}

	raw, found, err := store.Get(usersKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load user data: %w", err)
	}
	if found {
		if err := json.Unmarshal([]byte(raw), &s.users); err != nil {
			return nil, fmt.Errorf("failed to parse user data: %w", err)
		}
	}

	sessionID, found, err := store.Get(sessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if found {
		s.sessionUserID = sessionID
	}

	return s, nil
}

// Register creates a new user with a fresh id and empty bookmarks.
// It does not log the new user in.
func (s *AuthService) Register(email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return ErrDuplicateEmail
		}
	}

	newUser := domain.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  password,
		Bookmarks: []domain.Bookmark{},
	}

	updated := append(append([]domain.User{}, s.users...), newUser)
	if err := s.persistUsers(updated); err != nil {
		return err
	}
	s.users = updated

	s.logger.Info("User registered", zap.String("user_id", newUser.ID))
	return nil
}

// Login sets the session to the user matching email and password
func (s *AuthService) Login(email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user *domain.User
	for i := range s.users {
		if s.users[i].Email == email {
			user = &s.users[i]
			break
		}
	}
	if user == nil {
		return ErrEmailNotFound
	}

	if user.Password != password {
		return ErrPasswordMismatch
	}

	if err := s.store.Set(sessionKey, user.ID); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	s.sessionUserID = user.ID

	s.logger.Info("User logged in", zap.String("user_id", user.ID))
	return nil
}

// Logout clears the session. It always succeeds; a failed removal of the
// persisted key is logged and the in-memory session is cleared regardless.
func (s *AuthService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessionUserID = ""
	if err := s.store.Delete(sessionKey); err != nil {
		s.logger.Warn("Failed to remove persisted session", zap.Error(err))
	}
}

// CurrentUser returns a copy of the logged-in user, if any
func (s *AuthService) CurrentUser() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.findUserLocked(s.sessionUserID)
	return user, ok
}

// UpdateCurrentUser replaces the logged-in user's record with the result of
// transform and persists the full user collection. This is the sole mutation
// path for user data after registration.
func (s *AuthService) UpdateCurrentUser(transform func(domain.User) domain.User) error {
	s.mu.Lock()

	index := -1
	for i := range s.users {
		if s.sessionUserID != "" && s.users[i].ID == s.sessionUserID {
			index = i
			break
		}
	}
	if index == -1 {
		s.mu.Unlock()
		return ErrNoActiveSession
	}

	updated := append([]domain.User{}, s.users...)
	updated[index] = transform(copyUser(s.users[index]))

	if err := s.persistUsers(updated); err != nil {
		s.mu.Unlock()
		return err
	}
	s.users = updated

	snapshot := copyUser(updated[index])
	listeners := append([]func(domain.User){}, s.listeners...)
	s.mu.Unlock()

	// Notify dependents outside the lock with their own copy
	for _, fn := range listeners {
		fn(snapshot)
	}
	return nil
}

// OnUserChanged registers a listener invoked with a snapshot of the current
// user after every successful UpdateCurrentUser
func (s *AuthService) OnUserChanged(fn func(domain.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// persistUsers writes the full user collection. Callers hold the lock and
// commit to memory only after the write succeeds.
func (s *AuthService) persistUsers(users []domain.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode user data: %w", err)
	}
	if err := s.store.Set(usersKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist user data: %w", err)
	}
	return nil
}

func (s *AuthService) findUserLocked(id string) (domain.User, bool) {
	if id == "" {
		return domain.User{}, false
	}
	for i := range s.users {
		if s.users[i].ID == id {
			return copyUser(s.users[i]), true
		}
	}
	return domain.User{}, false
}

// copyUser returns a copy whose bookmark slice does not alias the original
func copyUser(u domain.User) domain.User {
	out := u
	out.Bookmarks = append([]domain.Bookmark{}, u.Bookmarks...)
	return out
}
