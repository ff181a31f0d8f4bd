package postgres

import (
	"database/sql"
)

// StateStore implements repository.StateStore on a key/value table
type StateStore struct {
	db *sql.DB
}

// NewStateStore creates a new postgres-backed state store
func NewStateStore(db *sql.DB) *StateStore {
	return &StateStore{db: db}
}

// Get returns the value stored under key, reporting whether it exists
func (s *StateStore) Get(key string) (string, bool, error) {
	var value string
	query := `SELECT value FROM app_state WHERE key = $1`
	err := s.db.QueryRow(query, key).Scan(&value)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

// Set writes value under key, overwriting any previous value
func (s *StateStore) Set(key, value string) error {
	query := `
		INSERT INTO app_state (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value
	`
	_, err := s.db.Exec(query, key, value)
	return err
}

// Delete removes key; deleting an absent key is not an error
func (s *StateStore) Delete(key string) error {
	query := `DELETE FROM app_state WHERE key = $1`
	_, err := s.db.Exec(query, key)
	return err
}
