// Package access derives a thread's status and send permission from its stored state.
//
// Nothing here reads the wall clock: callers pass now, and expiry is evaluated lazily
// on every read instead of being written back by a background job.
package access

import (
	"time"

	"github.com/vetcare/chat-service/internal/model"
)

// Status returns the effective status of t at now. The cached t.Status is ignored.
func Status(t *model.Thread, now time.Time) model.Status {
	if t.InitiatedBy == model.RoleVet {
		return model.StatusActive
	}
	if t.Pending {
		return model.StatusPending
	}

	last, ok := t.Windows.Last()
	if !ok {
		return model.StatusExpired
	}
	if !now.After(last.To) {
		return model.StatusActive
	}
	return model.StatusExpired
}

// CanSend reports whether either party may post to t at now.
func CanSend(t *model.Thread, now time.Time) bool {
	if t.InitiatedBy == model.RoleVet {
		return true
	}
	if Status(t, now) != model.StatusActive {
		return false
	}

	last, ok := t.Windows.Last()
	return ok && !now.After(last.To)
}

// WindowTo returns the end of the open window of an owner-initiated thread, or nil.
func WindowTo(t *model.Thread, now time.Time) *time.Time {
	if t.InitiatedBy != model.RoleOwner || Status(t, now) != model.StatusActive {
		return nil
	}

	last, _ := t.Windows.Last()
	to := last.To
	return &to
}

// View annotates t with the values computed at now.
func View(t *model.ThreadPreview, now time.Time) model.ThreadView {
	return model.ThreadView{
		ID:              t.ID,
		VetID:           t.VetID,
		OwnerID:         t.OwnerID,
		InitiatedBy:     t.InitiatedBy,
		CounterpartName: t.CounterpartName,
		Status:          Status(&t.Thread, now),
		CanSend:         CanSend(&t.Thread, now),
		WindowTo:        WindowTo(&t.Thread, now),
		LastMessageAt:   t.LastMessageAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
