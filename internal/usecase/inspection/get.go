package inspection

import (
	"context"

	domain "github.com/VTVServicesAR/inspection-scheduler/internal/domain/inspection"
	"github.com/VTVServicesAR/inspection-scheduler/internal/httperr"
	"github.com/VTVServicesAR/inspection-scheduler/internal/models"
	"github.com/VTVServicesAR/inspection-scheduler/internal/validators"
)

type GetInspection struct {
	repo domain.Repository
}

func NewGetInspection(repo domain.Repository) *GetInspection {
	return &GetInspection{repo: repo}
}

func (uc *GetInspection) Execute(
	ctx context.Context,
	inspectionID string,
) (*models.Inspection, error) {

	if !validators.IsValidID(inspectionID) {
		return nil, httperr.ErrValidation("invalid_inspection_id")
	}

	return uc.repo.GetInspectionByID(ctx, inspectionID)
}
