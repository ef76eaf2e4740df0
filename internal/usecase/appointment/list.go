package appointment

import (
	"context"

	domain "github.com/VTVServicesAR/inspection-scheduler/internal/domain/appointment"
	"github.com/VTVServicesAR/inspection-scheduler/internal/dto"
	"github.com/VTVServicesAR/inspection-scheduler/internal/httperr"
	"github.com/VTVServicesAR/inspection-scheduler/internal/validators"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) ([]dto.AppointmentListDTO, error) {

	if filter.VehicleID != "" && !validators.IsValidID(filter.VehicleID) {
		return nil, httperr.ErrValidation("invalid_vehicle_id")
	}

	appointments, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:                 ap.ID,
			ScheduledAt:        ap.ScheduledAt,
			Status:             ap.Status,
			VehiclePlate:       ap.Vehicle.Plate,
			VehicleBrand:       ap.Vehicle.Brand,
			VehicleModel:       ap.Vehicle.Model,
			CancellationReason: ap.CancellationReason,
		})
	}

	return out, nil
}
