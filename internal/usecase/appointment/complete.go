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

// CompleteAppointment is not exposed over HTTP: completion only ever
// happens as the side effect of recording an inspection, and this usecase
// is the single writer for that transition.
type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {

	if !validators.IsValidID(appointmentID) {
		return nil, httperr.ErrValidation("invalid_appointment_id")
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Complete(ap, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
