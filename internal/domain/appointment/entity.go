package appointment

import (
	"strings"
	"time"

	"github.com/VTVServicesAR/inspection-scheduler/internal/httperr"
	"github.com/VTVServicesAR/inspection-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func Cancel(ap *models.Appointment, reason string, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return httperr.ErrValidation("cancellation_reason_required")
	}

	ap.Status = string(StatusCancelled)
	ap.CancellationReason = reason
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func Reschedule(ap *models.Appointment, newTime time.Time, now time.Time) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	if !newTime.After(now) {
		return httperr.ErrValidation("scheduled_at_in_past")
	}

	ap.ScheduledAt = newTime
	return nil
}
