package store

// Migrate brings the schema to the current version, tracked via
// PRAGMA user_version.
func (s *Store) Migrate() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}

	if v >= 1 {
		return tx.Commit()
	}

	// ---- Schema v1 ----

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS saved_jobs (
  job_id INTEGER PRIMARY KEY,
  saved_at TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS applications (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  job_id INTEGER NOT NULL,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  cover_letter TEXT NOT NULL DEFAULT '',
  resume_key TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL,
  submitted_at TEXT NOT NULL
);`,
		`CREATE INDEX IF NOT EXISTS idx_applications_job_id
ON applications(job_id);`,
		`CREATE TABLE IF NOT EXISTS profile (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  name TEXT NOT NULL DEFAULT '',
  email TEXT NOT NULL DEFAULT '',
  headline TEXT NOT NULL DEFAULT '',
  location TEXT NOT NULL DEFAULT '',
  skills TEXT NOT NULL DEFAULT '[]',
  about TEXT NOT NULL DEFAULT ''
);`,
		`CREATE TABLE IF NOT EXISTS sessions (
  token TEXT PRIMARY KEY,
  email TEXT NOT NULL,
  created_at TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS resumes (
  key TEXT PRIMARY KEY,
  filename TEXT NOT NULL,
  content_type TEXT NOT NULL,
  bytes BLOB NOT NULL,
  uploaded_at TEXT NOT NULL
);`,
	}
	for _, q := range stmts {
		if _, err := tx.Exec(q); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}
