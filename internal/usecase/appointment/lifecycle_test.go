package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	domain "github.com/VTVServicesAR/inspection-scheduler/internal/domain/appointment"
	"github.com/VTVServicesAR/inspection-scheduler/internal/httperr"
)

func TestConfirmAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("confirms a pending appointment and persists it", func(t *testing.T) {
		repo := newFakeRepository()
		vehicle := repo.addVehicle("ABC123")
		ap := repo.addAppointment(vehicle.ID, futureSlot(), domain.StatusPending)

		uc := NewConfirmAppointment(repo, nil)

		got, err := uc.Execute(ctx, ap.ID, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != string(domain.StatusConfirmed) {
			t.Fatalf("expected confirmed, got %s", got.Status)
		}

		stored, _ := repo.GetAppointmentByID(ctx, ap.ID)
		if stored.Status != string(domain.StatusConfirmed) {
			t.Fatalf("expected the store to hold confirmed, got %s", stored.Status)
		}
	})

	t.Run("rejects a malformed id before hitting the store", func(t *testing.T) {
		uc := NewConfirmAppointment(newFakeRepository(), nil)

		_, err := uc.Execute(ctx, "123", "")
		if !httperr.IsBusiness(err, "invalid_appointment_id") {
			t.Fatalf("expected invalid_appointment_id, got %v", err)
		}
	})

	t.Run("reports a missing appointment as not found", func(t *testing.T) {
		uc := NewConfirmAppointment(newFakeRepository(), nil)

		_, err := uc.Execute(ctx, uuid.NewString(), "")
		if !httperr.IsKind(err, httperr.KindNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("rejects confirming twice", func(t *testing.T) {
		repo := newFakeRepository()
		vehicle := repo.addVehicle("ABC123")
		ap := repo.addAppointment(vehicle.ID, futureSlot(), domain.StatusConfirmed)

		uc := NewConfirmAppointment(repo, nil)

		_, err := uc.Execute(ctx, ap.ID, "")
		if !httperr.IsBusiness(err, "appointment_not_pending") {
			t.Fatalf("expected appointment_not_pending, got %v", err)
		}
	})
}

func TestCancelAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels with a reason", func(t *testing.T) {
		repo := newFakeRepository()
		vehicle := repo.addVehicle("ABC123")
		ap := repo.addAppointment(vehicle.ID, futureSlot(), domain.StatusConfirmed)

		uc := NewCancelAppointment(repo, nil)

		got, err := uc.Execute(ctx, ap.ID, "owner moved abroad", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != string(domain.StatusCancelled) {
			t.Fatalf("expected cancelled, got %s", got.Status)
		}
		if got.CancellationReason != "owner moved abroad" {
			t.Fatalf("expected reason to be stored, got %q", got.CancellationReason)
		}
		if got.CancelledAt == nil {
			t.Fatal("expected cancelled_at to be set")
		}
	})

	t.Run("requires a reason", func(t *testing.T) {
		repo := newFakeRepository()
		vehicle := repo.addVehicle("ABC123")
		ap := repo.addAppointment(vehicle.ID, futureSlot(), domain.StatusPending)

		uc := NewCancelAppointment(repo, nil)

		_, err := uc.Execute(ctx, ap.ID, "  ", "")
		if !httperr.IsBusiness(err, "cancellation_reason_required") {
			t.Fatalf("expected cancellation_reason_required, got %v", err)
		}
	})

	t.Run("rejects cancelling a completed appointment", func(t *testing.T) {
		repo := newFakeRepository()
		vehicle := repo.addVehicle("ABC123")
		ap := repo.addAppointment(vehicle.ID, futureSlot(), domain.StatusCompleted)

		uc := NewCancelAppointment(repo, nil)

		_, err := uc.Execute(ctx, ap.ID, "too late", "")
		if !httperr.IsBusiness(err, "appointment_not_cancellable") {
			t.Fatalf("expected appointment_not_cancellable, got %v", err)
		}
	})
}

func TestCompleteAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("completes a confirmed appointment", func(t *testing.T) {
		repo := newFakeRepository()
		vehicle := repo.addVehicle("ABC123")
		ap := repo.addAppointment(vehicle.ID, futureSlot(), domain.StatusConfirmed)

		uc := NewCompleteAppointment(repo, nil)

		got, err := uc.Execute(ctx, ap.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != string(domain.StatusCompleted) {
			t.Fatalf("expected completed, got %s", got.Status)
		}
		if got.CompletedAt == nil {
			t.Fatal("expected completed_at to be set")
		}
	})

	t.Run("rejects completing a pending appointment", func(t *testing.T) {
		repo := newFakeRepository()
		vehicle := repo.addVehicle("ABC123")
		ap := repo.addAppointment(vehicle.ID, futureSlot(), domain.StatusPending)

		uc := NewCompleteAppointment(repo, nil)

		_, err := uc.Execute(ctx, ap.ID)
		if !httperr.IsBusiness(err, "appointment_not_confirmed") {
			t.Fatalf("expected appointment_not_confirmed, got %v", err)
		}
	})
}

func TestRescheduleAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("moves a pending appointment to a free slot", func(t *testing.T) {
		repo := newFakeRepository()
		vehicle := repo.addVehicle("ABC123")
		ap := repo.addAppointment(vehicle.ID, futureSlot(), domain.StatusPending)
		target := futureSlot().Add(24 * time.Hour)

		uc := NewRescheduleAppointment(repo, nil)

		got, err := uc.Execute(ctx, ap.ID, target, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.ScheduledAt.Equal(target) {
			t.Fatalf("expected scheduled_at %v, got %v", target, got.ScheduledAt)
		}
	})

	t.Run("does not conflict with its own current slot", func(t *testing.T) {
		repo := newFakeRepository()
		vehicle := repo.addVehicle("ABC123")
		slot := futureSlot()
		ap := repo.addAppointment(vehicle.ID, slot, domain.StatusPending)

		uc := NewRescheduleAppointment(repo, nil)

		if _, err := uc.Execute(ctx, ap.ID, slot, ""); err != nil {
			t.Fatalf("moving onto its own slot must be a no-op, got %v", err)
		}
	})

	t.Run("rejects a slot held by another live appointment", func(t *testing.T) {
		repo := newFakeRepository()
		vehicle := repo.addVehicle("ABC123")
		taken := futureSlot().Add(24 * time.Hour)
		repo.addAppointment(vehicle.ID, taken, domain.StatusConfirmed)
		ap := repo.addAppointment(vehicle.ID, futureSlot(), domain.StatusPending)

		uc := NewRescheduleAppointment(repo, nil)

		_, err := uc.Execute(ctx, ap.ID, taken, "")
		if !httperr.IsBusiness(err, "schedule_conflict") {
			t.Fatalf("expected schedule_conflict, got %v", err)
		}
	})

	t.Run("rejects rescheduling a confirmed appointment", func(t *testing.T) {
		repo := newFakeRepository()
		vehicle := repo.addVehicle("ABC123")
		ap := repo.addAppointment(vehicle.ID, futureSlot(), domain.StatusConfirmed)

		uc := NewRescheduleAppointment(repo, nil)

		_, err := uc.Execute(ctx, ap.ID, futureSlot().Add(time.Hour), "")
		if !httperr.IsBusiness(err, "appointment_not_pending") {
			t.Fatalf("expected appointment_not_pending, got %v", err)
		}
	})
}
