package store

import (
	"context"
	"time"

	"jobdeck-engine/internal/domain"
)

// SaveJob bookmarks a job. Saving an already-saved job is a no-op.
func (s *Store) SaveJob(ctx context.Context, jobID int64) error {
	_, err := s.db.ExecContext(ctx, `
INSERT OR IGNORE INTO saved_jobs(job_id, saved_at) VALUES(?, ?);`,
		jobID, time.Now().UTC().Format(time.RFC3339))
	return err
}

func (s *Store) UnsaveJob(ctx context.Context, jobID int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM saved_jobs WHERE job_id = ?;`, jobID)
	return err
}

func (s *Store) IsSaved(ctx context.Context, jobID int64) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM saved_jobs WHERE job_id = ?;`, jobID).Scan(&one)
	if err == nil {
		return true, nil
	}
	if isNoRows(err) {
		return false, nil
	}
	return false, err
}

// ListSaved returns bookmarks in save order, oldest first.
func (s *Store) ListSaved(ctx context.Context) ([]domain.SavedJob, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT job_id, saved_at FROM saved_jobs ORDER BY saved_at ASC, job_id ASC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SavedJob
	for rows.Next() {
		var sj domain.SavedJob
		var at string
		if err := rows.Scan(&sj.JobID, &at); err != nil {
			return nil, err
		}
		sj.SavedAt, _ = time.Parse(time.RFC3339, at)
		out = append(out, sj)
	}
	return out, rows.Err()
}
