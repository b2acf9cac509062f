package store

import (
	"context"
	"time"
)

// Resume is an uploaded file kept locally; the mock upload flow never ships
// bytes anywhere remote.
type Resume struct {
	Key         string    `json:"key"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	Bytes       []byte    `json:"-"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

func (s *Store) PutResume(ctx context.Context, r Resume) error {
	if r.UploadedAt.IsZero() {
		r.UploadedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
INSERT OR REPLACE INTO resumes(key, filename, content_type, bytes, uploaded_at)
VALUES(?,?,?,?,?);`,
		r.Key, r.Filename, r.ContentType, r.Bytes, r.UploadedAt.Format(time.RFC3339))
	return err
}

func (s *Store) GetResume(ctx context.Context, key string) (Resume, bool, error) {
	var r Resume
	var at string
	err := s.db.QueryRowContext(ctx, `
SELECT key, filename, content_type, bytes, uploaded_at FROM resumes WHERE key = ?;`, key).
		Scan(&r.Key, &r.Filename, &r.ContentType, &r.Bytes, &at)
	if isNoRows(err) {
		return Resume{}, false, nil
	}
	if err != nil {
		return Resume{}, false, err
	}
	r.UploadedAt, _ = time.Parse(time.RFC3339, at)
	return r, true, nil
}
