package inspection

import (
	"context"

	domain "github.com/VTVServicesAR/inspection-scheduler/internal/domain/inspection"
	"github.com/VTVServicesAR/inspection-scheduler/internal/httperr"
	"github.com/VTVServicesAR/inspection-scheduler/internal/models"
	"github.com/VTVServicesAR/inspection-scheduler/internal/validators"
)

type ListInspections struct {
	repo domain.Repository
}

func NewListInspections(repo domain.Repository) *ListInspections {
	return &ListInspections{repo: repo}
}

func (uc *ListInspections) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Inspection, error) {

	if filter.TechnicianID != "" && !validators.IsValidID(filter.TechnicianID) {
		return nil, httperr.ErrValidation("invalid_technician_id")
	}

	switch filter.Result {
	case "", domain.ResultApproved, domain.ResultRejected, domain.ResultRecheck:
	default:
		return nil, httperr.ErrValidation("invalid_result_filter")
	}

	return uc.repo.ListInspections(ctx, filter)
}
