package inspection

import (
	"context"
	"fmt"

	"github.com/VTVServicesAR/inspection-scheduler/internal/audit"
	apdomain "github.com/VTVServicesAR/inspection-scheduler/internal/domain/appointment"
	domain "github.com/VTVServicesAR/inspection-scheduler/internal/domain/inspection"
	"github.com/VTVServicesAR/inspection-scheduler/internal/httperr"
	"github.com/VTVServicesAR/inspection-scheduler/internal/models"
	"github.com/VTVServicesAR/inspection-scheduler/internal/timezone"
	"github.com/VTVServicesAR/inspection-scheduler/internal/validators"
)

// AppointmentCompleter is the one component allowed to move an appointment
// to completed; recording an inspection is the only thing that triggers it.
type AppointmentCompleter interface {
	Execute(ctx context.Context, appointmentID string) (*models.Appointment, error)
}

// CompletionError reports that the inspection was persisted but the
// appointment could not be marked completed. Callers must treat the
// inspection as created and surface the partial success.
type CompletionError struct {
	AppointmentID string
	Err           error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("inspection saved but appointment %s not completed: %v", e.AppointmentID, e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

// ======================================================
// INPUT
// ======================================================

type CreateInspectionInput struct {
	AppointmentID string
	TechnicianID  string

	Scores     []int
	ScoreNotes []string

	GeneralNotes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateInspection struct {
	repo      domain.Repository
	completer AppointmentCompleter
	audit     *audit.Dispatcher
}

func NewCreateInspection(
	repo domain.Repository,
	completer AppointmentCompleter,
	audit *audit.Dispatcher,
) *CreateInspection {
	return &CreateInspection{
		repo:      repo,
		completer: completer,
		audit:     audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateInspection) Execute(
	ctx context.Context,
	in CreateInspectionInput,
) (*models.Inspection, error) {

	if !validators.IsValidID(in.AppointmentID) {
		return nil, httperr.ErrValidation("invalid_appointment_id")
	}
	if !validators.IsValidID(in.TechnicianID) {
		return nil, httperr.ErrValidation("invalid_technician_id")
	}
	if len(in.ScoreNotes) != 0 && len(in.ScoreNotes) != len(in.Scores) {
		return nil, httperr.ErrValidation("score_notes_count_invalid")
	}

	total, err := domain.ComputeTotal(in.Scores)
	if err != nil {
		return nil, err
	}

	technician, err := uc.repo.GetUserByID(ctx, in.TechnicianID)
	if err != nil {
		return nil, err
	}
	if technician.Role != models.RoleTechnician {
		return nil, httperr.ErrValidation("technician_role_required")
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if err := apdomain.CanComplete(apdomain.Status(ap.Status)); err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetInspectionByAppointment(ctx, ap.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrConflict("inspection_already_exists")
	}

	result, err := domain.Classify(in.Scores)
	if err != nil {
		return nil, err
	}

	autoNotes := domain.GenerateNotes(in.Scores, result)

	insp := &models.Inspection{
		AppointmentID: ap.ID,
		TechnicianID:  technician.ID,
		Scores:        buildScoreRows(in.Scores, in.ScoreNotes),
		TotalScore:    total,
		Result:        string(result),
		GeneralNotes:  domain.CombineNotes(autoNotes, in.GeneralNotes),
		InspectedAt:   timezone.Now(),
	}

	if err := uc.repo.CreateInspection(ctx, insp); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &technician.ID,
		Action:   "inspection_recorded",
		Entity:   "inspection",
		EntityID: &insp.ID,
		Metadata: map[string]any{
			"appointment_id": ap.ID,
			"total_score":    total,
			"result":         result,
		},
	})

	// The inspection is already durable; a completion failure here is a
	// partial success, not a rollback.
	if _, err := uc.completer.Execute(ctx, ap.ID); err != nil {
		return insp, &CompletionError{AppointmentID: ap.ID, Err: err}
	}

	return insp, nil
}

func buildScoreRows(scores []int, notes []string) []models.InspectionScore {
	rows := make([]models.InspectionScore, 0, len(scores))
	for i, value := range scores {
		row := models.InspectionScore{
			Position: i + 1,
			Label:    domain.CheckpointLabel(i + 1),
			Value:    value,
		}
		if i < len(notes) {
			row.Notes = notes[i]
		}
		rows = append(rows, row)
	}
	return rows
}
