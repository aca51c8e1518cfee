// Package sqlite persists sessions and pending sign-ins.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/c3devs/novamuse/internal/domain"
)

// SessionStore implements ports.SessionStore on SQLite.
// All timestamps are written in UTC.
type SessionStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSessionStore creates a store over an open, migrated database.
func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db, now: time.Now}
}

// CreateSession inserts a new session.
func (s *SessionStore) CreateSession(ctx context.Context, session *domain.Session) error {
	const query = `
		INSERT INTO sessions (id, email, bearer_token, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		session.ID,
		session.Identity.Email,
		session.Identity.BearerToken,
		session.CreatedAt.UTC(),
		session.ExpiresAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

// GetSession loads a live session. An expired session is deleted on the
// way out and reported as not found.
func (s *SessionStore) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	const query = `
		SELECT id, email, bearer_token, created_at, expires_at
		FROM sessions
		WHERE id = ?
	`

	session := &domain.Session{}

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&session.ID,
		&session.Identity.Email,
		&session.Identity.BearerToken,
		&session.CreatedAt,
		&session.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("session", "")
	}
	if err != nil {
		return nil, fmt.Errorf("query session: %w", err)
	}

	session.Identity.ExpiresAt = session.ExpiresAt

	if !s.now().Before(session.ExpiresAt) {
		if err := s.DeleteSession(ctx, id); err != nil {
			return nil, err
		}

		return nil, domain.NewNotFoundError("session", "")
	}

	return session, nil
}

// DeleteSession removes a session. Deleting an unknown id is not an error.
func (s *SessionStore) DeleteSession(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// SaveAuthRequest records a sign-in that has been started.
func (s *SessionStore) SaveAuthRequest(ctx context.Context, req *domain.AuthRequest) error {
	const query = `INSERT INTO auth_requests (state, verifier, created_at) VALUES (?, ?, ?)`

	if _, err := s.db.ExecContext(ctx, query, req.State, req.Verifier, req.CreatedAt.UTC()); err != nil {
		return fmt.Errorf("insert auth request: %w", err)
	}

	return nil
}

// TakeAuthRequest removes and returns the pending sign-in for state.
// Only the caller whose delete actually removed the row gets it back, so a
// state can be redeemed once even under concurrent callbacks.
func (s *SessionStore) TakeAuthRequest(ctx context.Context, state string) (*domain.AuthRequest, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin take auth request: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	req := &domain.AuthRequest{}

	err = tx.QueryRowContext(ctx,
		`SELECT state, verifier, created_at FROM auth_requests WHERE state = ?`, state,
	).Scan(&req.State, &req.Verifier, &req.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("sign-in request", "")
	}
	if err != nil {
		return nil, fmt.Errorf("query auth request: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM auth_requests WHERE state = ?`, state)
	if err != nil {
		return nil, fmt.Errorf("delete auth request: %w", err)
	}

	if n, err := res.RowsAffected(); err != nil || n == 0 {
		return nil, domain.NewNotFoundError("sign-in request", "")
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit take auth request: %w", err)
	}

	return req, nil
}

// PurgeExpired deletes expired sessions and stale sign-ins in one transaction.
func (s *SessionStore) PurgeExpired(ctx context.Context, now time.Time, authRequestTTL time.Duration) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin purge: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now = now.UTC()

	sessions, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, now)
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}

	requests, err := tx.ExecContext(ctx, `DELETE FROM auth_requests WHERE created_at <= ?`, now.Add(-authRequestTTL))
	if err != nil {
		return 0, fmt.Errorf("purge auth requests: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit purge: %w", err)
	}

	n1, _ := sessions.RowsAffected()
	n2, _ := requests.RowsAffected()

	return n1 + n2, nil
}

// Name returns the health check name.
func (s *SessionStore) Name() string {
	return "sqlite"
}

// Check pings the database.
func (s *SessionStore) Check(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
