package entity

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember is a person extracted from a company team or about page. Only
// the name is guaranteed; position and email are best-effort.
type TeamMember struct {
	Name     string  `json:"name"`
	Position *string `json:"position,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// ContactRecord is the per-company harvest result stored in the catalogue.
// Emails and Phones hold the raw pattern-extracted values; CleanEmails and
// PhonesE164 hold the normalized variants computed at persistence time.
type ContactRecord struct {
	ID          uuid.UUID    `json:"id"`
	RunID       uuid.UUID    `json:"run_id"`
	CompanyName string       `json:"company_name"`
	Website     string       `json:"website"`
	Domain      string       `json:"domain"`
	Emails      []string     `json:"emails"`
	Phones      []string     `json:"phones"`
	CleanEmails []string     `json:"clean_emails,omitempty"`
	PhonesE164  []string     `json:"phones_e164,omitempty"`
	LinkedIn    *string      `json:"linkedin,omitempty"`
	TeamMembers []TeamMember `json:"team_members"`
	AboutURL    *string      `json:"about_url,omitempty"`
	ContactURL  *string      `json:"contact_url,omitempty"`
	Score       int          `json:"score"`
	HarvestedAt time.Time    `json:"harvested_at"`
	CreatedAt   time.Time    `json:"created_at"`
}
