package domain

import "time"

// Profile is the editable user profile. A single local user owns it.
type Profile struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Headline string   `json:"headline,omitempty"`
	Location string   `json:"location,omitempty"`
	Skills   []string `json:"skills,omitempty"`
	About    string   `json:"about,omitempty"`
}

// Application records an apply action against a job. Status tracks whether it
// reached the remote API or was queued locally after a failed submit.
type Application struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"jobId"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CoverLetter string    `json:"coverLetter,omitempty"`
	ResumeKey   string    `json:"resumeKey,omitempty"`
	Status      string    `json:"status"` // submitted | queued_local
	SubmittedAt time.Time `json:"submittedAt"`
}

// SavedJob marks a listing the user bookmarked.
type SavedJob struct {
	JobID   int64     `json:"jobId"`
	SavedAt time.Time `json:"savedAt"`
}

// Session is a mock-auth session. The token doubles as the keychain entry.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
