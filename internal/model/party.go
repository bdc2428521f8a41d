package model

import (
	"time"

	"github.com/google/uuid"
)

// Party is a caller resolved to one side of a vet-owner relationship.
type Party struct {
	Role      Role
	ProfileID uuid.UUID
	UserID    uuid.UUID
	Name      string
}

type Profile struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ProfileEvent is published by the records backend whenever a vet or owner profile changes.
type ProfileEvent struct {
	Role      Role      `json:"role"`
	ProfileID uuid.UUID `json:"profile_id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
}
