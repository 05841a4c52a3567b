package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message roles
const (
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Project is a generic conversation container used to surface generation results.
type Project struct {
	ID        uuid.UUID
	UserID    string
	Name      string
	Messages  []*Message
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message is one entry of a Project.
type Message struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Role      string
	Content   string
	CreatedAt time.Time
}
