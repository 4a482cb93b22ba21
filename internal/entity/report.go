package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Report is an uploaded PDF artifact owned by a client connection.
type Report struct {
	ID           uuid.UUID `json:"id"`
	ConnectionID uuid.UUID `json:"connection_id"`
	Name         string    `json:"name"`
	ReportDate   time.Time `json:"report_date"`
	FileURL      string    `json:"file_url"`
	CreatedAt    time.Time `json:"created_at"`
}
