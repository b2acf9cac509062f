package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"jobdeck-engine/internal/domain"
)

// Application status values.
const (
	StatusSubmitted   = "submitted"    // reached the remote API
	StatusQueuedLocal = "queued_local" // remote was unreachable, kept locally
)

func isNoRows(err error) bool { return errors.Is(err, sql.ErrNoRows) }

func (s *Store) InsertApplication(ctx context.Context, a domain.Application) (domain.Application, error) {
	if a.SubmittedAt.IsZero() {
		a.SubmittedAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx, `
INSERT INTO applications(job_id, name, email, cover_letter, resume_key, status, submitted_at)
VALUES(?,?,?,?,?,?,?);`,
		a.JobID, a.Name, a.Email, a.CoverLetter, a.ResumeKey, a.Status,
		a.SubmittedAt.Format(time.RFC3339))
	if err != nil {
		return domain.Application{}, err
	}
	a.ID, _ = res.LastInsertId()
	return a, nil
}

// ListApplications returns applications newest first.
func (s *Store) ListApplications(ctx context.Context) ([]domain.Application, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, job_id, name, email, cover_letter, resume_key, status, submitted_at
FROM applications
ORDER BY submitted_at DESC, id DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Application
	for rows.Next() {
		var a domain.Application
		var at string
		if err := rows.Scan(&a.ID, &a.JobID, &a.Name, &a.Email, &a.CoverLetter, &a.ResumeKey, &a.Status, &at); err != nil {
			return nil, err
		}
		a.SubmittedAt, _ = time.Parse(time.RFC3339, at)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) HasApplied(ctx context.Context, jobID int64) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM applications WHERE job_id = ? LIMIT 1;`, jobID).Scan(&one)
	if err == nil {
		return true, nil
	}
	if isNoRows(err) {
		return false, nil
	}
	return false, err
}
