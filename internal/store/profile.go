package store

import (
	"context"
	"encoding/json"

	"jobdeck-engine/internal/domain"
)

// GetProfile returns the single local profile; a never-saved profile comes
// back zero-valued, not as an error.
func (s *Store) GetProfile(ctx context.Context) (domain.Profile, error) {
	var p domain.Profile
	var skillsJSON string
	err := s.db.QueryRowContext(ctx, `
SELECT name, email, headline, location, skills, about FROM profile WHERE id = 1;`).
		Scan(&p.Name, &p.Email, &p.Headline, &p.Location, &skillsJSON, &p.About)
	if isNoRows(err) {
		return domain.Profile{}, nil
	}
	if err != nil {
		return domain.Profile{}, err
	}
	_ = json.Unmarshal([]byte(skillsJSON), &p.Skills)
	return p, nil
}

func (s *Store) PutProfile(ctx context.Context, p domain.Profile) error {
	skillsB, _ := json.Marshal(p.Skills)
	if p.Skills == nil {
		skillsB = []byte("[]")
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO profile(id, name, email, headline, location, skills, about)
VALUES(1,?,?,?,?,?,?)
ON CONFLICT(id) DO UPDATE SET
  name = excluded.name,
  email = excluded.email,
  headline = excluded.headline,
  location = excluded.location,
  skills = excluded.skills,
  about = excluded.about;`,
		p.Name, p.Email, p.Headline, p.Location, string(skillsB), p.About)
	return err
}
