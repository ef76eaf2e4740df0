package appointment

import (
	"context"
	"time"

	"github.com/VTVServicesAR/inspection-scheduler/internal/audit"
	domain "github.com/VTVServicesAR/inspection-scheduler/internal/domain/appointment"
	"github.com/VTVServicesAR/inspection-scheduler/internal/httperr"
	"github.com/VTVServicesAR/inspection-scheduler/internal/models"
	"github.com/VTVServicesAR/inspection-scheduler/internal/timezone"
	"github.com/VTVServicesAR/inspection-scheduler/internal/validators"
)

type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	newTime time.Time,
	rescheduledBy string,
) (*models.Appointment, error) {

	if !validators.IsValidID(appointmentID) {
		return nil, httperr.ErrValidation("invalid_appointment_id")
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	previous := ap.ScheduledAt

	if err := domain.Reschedule(ap, newTime, timezone.Now()); err != nil {
		return nil, err
	}

	// Revalidate the slot, skipping the appointment itself so moving it
	// onto its own current time is a no-op rather than a conflict.
	if err := uc.repo.AssertNoScheduleConflict(
		ctx,
		ap.VehicleID,
		ap.ScheduledAt,
		ap.ID,
	); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actor(rescheduledBy),
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"from": previous,
			"to":   ap.ScheduledAt,
		},
	})

	return ap, nil
}
