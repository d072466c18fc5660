package repositories

import (
	"database/sql"
	"fmt"
	"time"
)

// Credentials is the persisted session record: two durable strings whose
// presence is the sole basis for cold-start authentication status.
type Credentials struct {
	Token    string
	Username string
}

// SessionRepository persists the single session row. The table holds at
// most one record (id = 1); Save replaces it wholesale.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new [SessionRepository] with the given database connection
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Save stores the credentials, replacing any previous session.
func (r *SessionRepository) Save(creds Credentials) error {
	query := `
		INSERT INTO sessions (id, token, username, updated_at) VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET token = excluded.token, username = excluded.username, updated_at = excluded.updated_at
	`

	if _, err := r.db.Exec(query, creds.Token, creds.Username, time.Now()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// Load returns the persisted credentials, or (nil, nil) when no session
// has been stored.
func (r *SessionRepository) Load() (*Credentials, error) {
	var creds Credentials

	err := r.db.QueryRow("SELECT token, username FROM sessions WHERE id = 1").Scan(&creds.Token, &creds.Username)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	return &creds, nil
}

// Clear removes the persisted session. Clearing an absent session is not
// an error.
func (r *SessionRepository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM sessions WHERE id = 1"); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}
