package appointment

import (
	"context"
	"strings"

	domain "github.com/VTVServicesAR/inspection-scheduler/internal/domain/appointment"
	"github.com/VTVServicesAR/inspection-scheduler/internal/httperr"
	"github.com/VTVServicesAR/inspection-scheduler/internal/models"
	"github.com/VTVServicesAR/inspection-scheduler/internal/validators"
)

type ListAppointmentsByVehicle struct {
	repo domain.Repository
}

func NewListAppointmentsByVehicle(repo domain.Repository) *ListAppointmentsByVehicle {
	return &ListAppointmentsByVehicle{repo: repo}
}

func (uc *ListAppointmentsByVehicle) Execute(
	ctx context.Context,
	vehicleID string,
) ([]models.Appointment, error) {

	if !validators.IsValidID(vehicleID) {
		return nil, httperr.ErrValidation("invalid_vehicle_id")
	}

	if _, err := uc.repo.GetVehicleByID(ctx, vehicleID); err != nil {
		return nil, err
	}

	return uc.repo.ListAppointmentsByVehicle(ctx, vehicleID)
}

// ExecuteByPlate resolves the vehicle by its license plate first, then
// lists its appointments.
func (uc *ListAppointmentsByVehicle) ExecuteByPlate(
	ctx context.Context,
	plate string,
) (*models.Vehicle, []models.Appointment, error) {

	if !validators.IsValidPlate(plate) {
		return nil, nil, httperr.ErrValidation("invalid_plate")
	}

	vehicle, err := uc.repo.GetVehicleByPlate(ctx, normalizePlate(plate))
	if err != nil {
		return nil, nil, err
	}

	appointments, err := uc.repo.ListAppointmentsByVehicle(ctx, vehicle.ID)
	if err != nil {
		return nil, nil, err
	}

	return vehicle, appointments, nil
}

func normalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}
