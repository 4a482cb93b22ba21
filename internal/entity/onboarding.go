package entity

import (
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"
)

// OnboardingSubmission is a one-shot business-profile intake form. Answers
// holds the form's JSON verbatim and round-trips as JSON, not base64.
type OnboardingSubmission struct {
	ID           uuid.UUID       `json:"id"`
	BusinessName string          `json:"business_name"`
	ContactEmail string          `json:"contact_email"`
	Answers      json.RawMessage `json:"answers"`
	FilePaths    []string        `json:"file_paths"`
	CreatedAt    time.Time       `json:"created_at"`
}
