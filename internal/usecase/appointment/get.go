package appointment

import (
	"context"

	domain "github.com/VTVServicesAR/inspection-scheduler/internal/domain/appointment"
	"github.com/VTVServicesAR/inspection-scheduler/internal/httperr"
	"github.com/VTVServicesAR/inspection-scheduler/internal/models"
	"github.com/VTVServicesAR/inspection-scheduler/internal/validators"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {

	if !validators.IsValidID(appointmentID) {
		return nil, httperr.ErrValidation("invalid_appointment_id")
	}

	return uc.repo.GetAppointmentByID(ctx, appointmentID)
}
