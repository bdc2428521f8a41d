package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleVet    Role = "vet"
	RoleOwner  Role = "owner"
	RoleSystem Role = "system"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
	// StatusClosed is accepted from storage but nothing produces it yet.
	StatusClosed Status = "closed"
)

// Window is one communication grant opened by a vet acceptance.
type Window struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Windows is stored as a jsonb array and only ever appended to.
type Windows []Window

func (w Windows) Last() (Window, bool) {
	if len(w) == 0 {
		return Window{}, false
	}
	return w[len(w)-1], true
}

// Value encodes to a JSON string; lib/pq would send []byte as bytea.
func (w Windows) Value() (driver.Value, error) {
	if w == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("failed to encode windows: %w", err)
	}
	return string(raw), nil
}

func (w *Windows) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*w = Windows{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported windows type %T", src)
	}

	if err := json.Unmarshal(raw, w); err != nil {
		return fmt.Errorf("failed to decode windows: %w", err)
	}
	return nil
}

type ThreadList []Thread

type Thread struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	VetID         uuid.UUID  `db:"vet_id" json:"vet_id"`
	OwnerID       uuid.UUID  `db:"owner_id" json:"owner_id"`
	InitiatedBy   Role       `db:"initiated_by" json:"initiated_by"`
	Pending       bool       `db:"pending" json:"pending"`
	Windows       Windows    `db:"windows" json:"windows"`
	Status        Status     `db:"status" json:"status"`
	LastMessageAt *time.Time `db:"last_message_at" json:"last_message_at,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// HasParty reports whether the profile takes part in the thread under the given role.
func (t *Thread) HasParty(p Party) bool {
	switch p.Role {
	case RoleVet:
		return t.VetID == p.ProfileID
	case RoleOwner:
		return t.OwnerID == p.ProfileID
	default:
		return false
	}
}

var ErrUnknownRole = errors.New("unknown role")

// ThreadPreview is a thread row joined with the counterpart's display name.
type ThreadPreview struct {
	Thread
	CounterpartName string `db:"counterpart_name"`
}

type ThreadPreviewList []ThreadPreview

type ThreadView struct {
	ID              uuid.UUID  `json:"id"`
	VetID           uuid.UUID  `json:"vet_id"`
	OwnerID         uuid.UUID  `json:"owner_id"`
	InitiatedBy     Role       `json:"initiated_by"`
	CounterpartName string     `json:"counterpart_name"`
	Status          Status     `json:"status"`
	CanSend         bool       `json:"can_send"`
	WindowTo        *time.Time `json:"window_to,omitempty"`
	LastMessageAt   *time.Time `json:"last_message_at,omitempty"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ThreadViewList []ThreadView
