package store

import (
	"context"
	"time"

	"jobdeck-engine/internal/domain"
)

func (s *Store) InsertSession(ctx context.Context, sess domain.Session) error {
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
INSERT OR REPLACE INTO sessions(token, email, created_at) VALUES(?,?,?);`,
		sess.Token, sess.Email, sess.CreatedAt.Format(time.RFC3339))
	return err
}

// GetSession resolves a token; an unknown token returns ok=false, not an error.
func (s *Store) GetSession(ctx context.Context, token string) (domain.Session, bool, error) {
	var sess domain.Session
	var at string
	err := s.db.QueryRowContext(ctx, `
SELECT token, email, created_at FROM sessions WHERE token = ?;`, token).
		Scan(&sess.Token, &sess.Email, &at)
	if isNoRows(err) {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, err
	}
	sess.CreatedAt, _ = time.Parse(time.RFC3339, at)
	return sess, true, nil
}

func (s *Store) DeleteSession(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?;`, token)
	return err
}
