package inspection

import (
	"context"

	"github.com/VTVServicesAR/inspection-scheduler/internal/audit"
	domain "github.com/VTVServicesAR/inspection-scheduler/internal/domain/inspection"
	"github.com/VTVServicesAR/inspection-scheduler/internal/httperr"
	"github.com/VTVServicesAR/inspection-scheduler/internal/models"
	"github.com/VTVServicesAR/inspection-scheduler/internal/validators"
)

// UpdateInspectionInput is a partial update. Scores, when present, must be
// a full checklist; the appointment and technician references are fixed at
// creation and cannot be patched.
type UpdateInspectionInput struct {
	Scores     []int
	ScoreNotes []string

	GeneralNotes *string
}

type UpdateInspection struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateInspection(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateInspection {
	return &UpdateInspection{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateInspection) Execute(
	ctx context.Context,
	inspectionID string,
	in UpdateInspectionInput,
) (*models.Inspection, error) {

	if !validators.IsValidID(inspectionID) {
		return nil, httperr.ErrValidation("invalid_inspection_id")
	}

	insp, err := uc.repo.GetInspectionByID(ctx, inspectionID)
	if err != nil {
		return nil, err
	}

	extra := currentExtraNotes(insp)
	if in.GeneralNotes != nil {
		extra = *in.GeneralNotes
	}

	if in.Scores != nil {
		if len(in.ScoreNotes) != 0 && len(in.ScoreNotes) != len(in.Scores) {
			return nil, httperr.ErrValidation("score_notes_count_invalid")
		}

		total, err := domain.ComputeTotal(in.Scores)
		if err != nil {
			return nil, err
		}

		result, err := domain.Classify(in.Scores)
		if err != nil {
			return nil, err
		}

		// Total, result and the automatic observations always follow the
		// scores; they are never allowed to drift apart.
		insp.Scores = buildScoreRows(in.Scores, in.ScoreNotes)
		for i := range insp.Scores {
			insp.Scores[i].InspectionID = insp.ID
		}
		insp.TotalScore = total
		insp.Result = string(result)
		insp.GeneralNotes = domain.CombineNotes(domain.GenerateNotes(in.Scores, result), extra)
	} else if in.GeneralNotes != nil {
		insp.GeneralNotes = domain.CombineNotes(autoNotesFromRows(insp), extra)
	}

	if err := uc.repo.UpdateInspection(ctx, insp); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &insp.TechnicianID,
		Action:   "inspection_updated",
		Entity:   "inspection",
		EntityID: &insp.ID,
		Metadata: map[string]any{
			"total_score": insp.TotalScore,
			"result":      insp.Result,
		},
	})

	return insp, nil
}

// autoNotesFromRows regenerates the automatic observation text from the
// stored checklist so a notes-only update keeps it intact.
func autoNotesFromRows(insp *models.Inspection) string {
	scores := make([]int, 0, len(insp.Scores))
	for _, row := range insp.Scores {
		scores = append(scores, row.Value)
	}
	return domain.GenerateNotes(scores, domain.Result(insp.Result))
}

// currentExtraNotes strips the automatic prefix from the stored general
// notes, leaving whatever free text the caller appended at creation.
func currentExtraNotes(insp *models.Inspection) string {
	auto := autoNotesFromRows(insp)
	if len(insp.GeneralNotes) > len(auto)+1 && insp.GeneralNotes[:len(auto)] == auto {
		return insp.GeneralNotes[len(auto)+1:]
	}
	return ""
}
