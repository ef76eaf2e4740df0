package appointment

import (
	"context"

	"github.com/VTVServicesAR/inspection-scheduler/internal/audit"
	domain "github.com/VTVServicesAR/inspection-scheduler/internal/domain/appointment"
	"github.com/VTVServicesAR/inspection-scheduler/internal/httperr"
	"github.com/VTVServicesAR/inspection-scheduler/internal/models"
	"github.com/VTVServicesAR/inspection-scheduler/internal/timezone"
	"github.com/VTVServicesAR/inspection-scheduler/internal/validators"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	reason string,
	cancelledBy string,
) (*models.Appointment, error) {

	if !validators.IsValidID(appointmentID) {
		return nil, httperr.ErrValidation("invalid_appointment_id")
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap, reason, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actor(cancelledBy),
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"reason": ap.CancellationReason},
	})

	return ap, nil
}
