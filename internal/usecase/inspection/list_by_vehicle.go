package inspection

import (
	"context"

	domain "github.com/VTVServicesAR/inspection-scheduler/internal/domain/inspection"
	"github.com/VTVServicesAR/inspection-scheduler/internal/httperr"
	"github.com/VTVServicesAR/inspection-scheduler/internal/models"
	"github.com/VTVServicesAR/inspection-scheduler/internal/validators"
)

type ListInspectionsByVehicle struct {
	repo domain.Repository
}

func NewListInspectionsByVehicle(repo domain.Repository) *ListInspectionsByVehicle {
	return &ListInspectionsByVehicle{repo: repo}
}

func (uc *ListInspectionsByVehicle) Execute(
	ctx context.Context,
	vehicleID string,
) ([]models.Inspection, error) {

	if !validators.IsValidID(vehicleID) {
		return nil, httperr.ErrValidation("invalid_vehicle_id")
	}

	return uc.repo.ListInspectionsByVehicle(ctx, vehicleID)
}
