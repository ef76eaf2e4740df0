package inspection

import (
	"context"
	"strings"
	"testing"

	apdomain "github.com/VTVServicesAR/inspection-scheduler/internal/domain/appointment"
	domain "github.com/VTVServicesAR/inspection-scheduler/internal/domain/inspection"
	"github.com/VTVServicesAR/inspection-scheduler/internal/httperr"
	"github.com/VTVServicesAR/inspection-scheduler/internal/models"
)

func createForUpdate(t *testing.T, ctx context.Context, repo *fakeRepository, scores []int, extra string) *models.Inspection {
	t.Helper()

	uc := NewCreateInspection(repo, &fakeCompleter{repo: repo}, nil)
	tech := repo.addUser(models.RoleTechnician)
	ap := repo.addAppointment(apdomain.StatusConfirmed)

	insp, err := uc.Execute(ctx, CreateInspectionInput{
		AppointmentID: ap.ID,
		TechnicianID:  tech.ID,
		Scores:        scores,
		GeneralNotes:  extra,
	})
	if err != nil {
		t.Fatalf("could not create inspection: %v", err)
	}
	return insp
}

func TestUpdateInspection(t *testing.T) {
	ctx := context.Background()

	t.Run("new scores recompute total, result and notes", func(t *testing.T) {
		repo := newFakeRepository()
		insp := createForUpdate(t, ctx, repo, []int{8, 8, 8, 8, 8, 8, 8, 8}, "")

		uc := NewUpdateInspection(repo, nil)

		got, err := uc.Execute(ctx, insp.ID, UpdateInspectionInput{
			Scores: []int{10, 10, 10, 10, 10, 10, 10, 10},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TotalScore != 80 {
			t.Fatalf("expected total 80, got %d", got.TotalScore)
		}
		if got.Result != string(domain.ResultApproved) {
			t.Fatalf("expected approved, got %s", got.Result)
		}
		if !strings.Contains(got.GeneralNotes, "optimal condition") {
			t.Fatalf("expected regenerated notes, got %q", got.GeneralNotes)
		}
	})

	t.Run("result can never be edited directly", func(t *testing.T) {
		repo := newFakeRepository()
		insp := createForUpdate(t, ctx, repo, []int{8, 8, 8, 8, 8, 8, 8, 8}, "")

		uc := NewUpdateInspection(repo, nil)

		got, err := uc.Execute(ctx, insp.ID, UpdateInspectionInput{
			Scores: []int{4, 4, 4, 4, 4, 4, 4, 4},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Result != string(domain.ResultRecheck) {
			t.Fatalf("result must follow the scores, got %s", got.Result)
		}
	})

	t.Run("notes-only update keeps scores and result", func(t *testing.T) {
		repo := newFakeRepository()
		insp := createForUpdate(t, ctx, repo, []int{8, 8, 8, 8, 8, 8, 8, 8}, "old remark")

		uc := NewUpdateInspection(repo, nil)

		notes := "new remark"
		got, err := uc.Execute(ctx, insp.ID, UpdateInspectionInput{
			GeneralNotes: &notes,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TotalScore != insp.TotalScore || got.Result != insp.Result {
			t.Fatal("scores and result must be untouched by a notes-only update")
		}
		if !strings.HasSuffix(got.GeneralNotes, "new remark") {
			t.Fatalf("expected the new remark, got %q", got.GeneralNotes)
		}
		if strings.Contains(got.GeneralNotes, "old remark") {
			t.Fatalf("expected the old remark to be replaced, got %q", got.GeneralNotes)
		}
		if !strings.Contains(got.GeneralNotes, "Vehicle not approved") {
			t.Fatalf("expected automatic notes to survive, got %q", got.GeneralNotes)
		}
	})

	t.Run("rejects invalid replacement scores", func(t *testing.T) {
		repo := newFakeRepository()
		insp := createForUpdate(t, ctx, repo, []int{8, 8, 8, 8, 8, 8, 8, 8}, "")

		uc := NewUpdateInspection(repo, nil)

		_, err := uc.Execute(ctx, insp.ID, UpdateInspectionInput{
			Scores: []int{0, 8, 8, 8, 8, 8, 8, 8},
		})
		if !httperr.IsBusiness(err, "score_out_of_range") {
			t.Fatalf("expected score_out_of_range, got %v", err)
		}
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		uc := NewUpdateInspection(newFakeRepository(), nil)

		_, err := uc.Execute(ctx, "nope", UpdateInspectionInput{})
		if !httperr.IsBusiness(err, "invalid_inspection_id") {
			t.Fatalf("expected invalid_inspection_id, got %v", err)
		}
	})
}
