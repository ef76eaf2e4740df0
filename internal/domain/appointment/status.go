package appointment

import "github.com/VTVServicesAR/inspection-scheduler/internal/httperr"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func InitialStatus() Status {
	return StatusPending
}

// IsLive reports whether an appointment in this status still occupies its
// slot. Only live appointments participate in conflict detection.
func (s Status) IsLive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// ===============================
// Transition guards
// ===============================

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrInvalidState("appointment_not_pending")
	}
	return nil
}

func CanCancel(current Status) error {
	if !current.IsLive() {
		return httperr.ErrInvalidState("appointment_not_cancellable")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrInvalidState("appointment_not_confirmed")
	}
	return nil
}

func CanReschedule(current Status) error {
	if current != StatusPending {
		return httperr.ErrInvalidState("appointment_not_pending")
	}
	return nil
}
