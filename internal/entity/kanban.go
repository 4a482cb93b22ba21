package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Kanban is an ad hoc task tracker, independent of the client-integration
// domain. Workspaces hold boards, boards hold columns, columns hold cards,
// each scoped by its parent.

type Workspace struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	// SharedLinkPassword is a plaintext shared-link deterrent, not auth.
	SharedLinkPassword string    `json:"-"`
	HasPassword        bool      `json:"has_password"`
	CreatedAt          time.Time `json:"created_at"`
}

type Board struct {
	ID                 uuid.UUID `json:"id"`
	WorkspaceID        uuid.UUID `json:"workspace_id"`
	Name               string    `json:"name"`
	SharedLinkPassword string    `json:"-"`
	HasPassword        bool      `json:"has_password"`
	CreatedAt          time.Time `json:"created_at"`
}

type WebhookTriggerMode string

const (
	TriggerEveryTime     WebhookTriggerMode = "every_time"
	TriggerFirstTimeOnly WebhookTriggerMode = "first_time_only"
)

func (m WebhookTriggerMode) Valid() bool {
	return m == TriggerEveryTime || m == TriggerFirstTimeOnly
}

type Column struct {
	ID                 uuid.UUID          `json:"id"`
	BoardID            uuid.UUID          `json:"board_id"`
	Name               string             `json:"name"`
	Position           int                `json:"position"`
	WebhookURL         string             `json:"webhook_url,omitempty"`
	WebhookTriggerMode WebhookTriggerMode `json:"webhook_trigger_mode"`
	CreatedAt          time.Time          `json:"created_at"`
}

type CardPriority string

const (
	PriorityLow    CardPriority = "low"
	PriorityMedium CardPriority = "medium"
	PriorityHigh   CardPriority = "high"
)

type Card struct {
	ID          uuid.UUID    `json:"id"`
	ColumnID    uuid.UUID    `json:"column_id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Position    int          `json:"position"`
	Priority    CardPriority `json:"priority,omitempty"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	// WebhookTriggered supports the first-time-only column trigger mode.
	WebhookTriggered bool      `json:"webhook_triggered"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CardWebhookPayload is what a column webhook receives when a card enters.
type CardWebhookPayload struct {
	Card      Card      `json:"card"`
	Column    Column    `json:"column"`
	Board     Board     `json:"board"`
	Workspace Workspace `json:"workspace"`
	MovedAt   time.Time `json:"moved_at"`
}
