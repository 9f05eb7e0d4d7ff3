package entities

import "time"

// CoverImage is a named image used as the first page of a proposal.
type CoverImage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	LegacyRef string    `json:"legacy_ref,omitempty"`
}
