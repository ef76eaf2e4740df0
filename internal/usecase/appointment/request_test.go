package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	domain "github.com/VTVServicesAR/inspection-scheduler/internal/domain/appointment"
	"github.com/VTVServicesAR/inspection-scheduler/internal/httperr"
)

func futureSlot() time.Time {
	return time.Now().Add(72 * time.Hour).Truncate(time.Minute)
}

func TestRequestAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending appointment", func(t *testing.T) {
		repo := newFakeRepository()
		vehicle := repo.addVehicle("ABC123")
		uc := NewRequestAppointment(repo, nil)

		ap, err := uc.Execute(ctx, RequestAppointmentInput{
			VehicleID:   vehicle.ID,
			ScheduledAt: futureSlot(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ap.Status != string(domain.StatusPending) {
			t.Fatalf("expected pending, got %s", ap.Status)
		}
		if ap.ID == "" {
			t.Fatal("expected an id to be assigned")
		}
	})

	t.Run("rejects a malformed vehicle id", func(t *testing.T) {
		repo := newFakeRepository()
		uc := NewRequestAppointment(repo, nil)

		_, err := uc.Execute(ctx, RequestAppointmentInput{
			VehicleID:   "not-a-uuid",
			ScheduledAt: futureSlot(),
		})
		if !httperr.IsBusiness(err, "invalid_vehicle_id") {
			t.Fatalf("expected invalid_vehicle_id, got %v", err)
		}
		if !httperr.IsKind(err, httperr.KindValidation) {
			t.Fatalf("malformed id must be a validation error, got %v", err)
		}
	})

	t.Run("reports a missing vehicle as not found", func(t *testing.T) {
		repo := newFakeRepository()
		uc := NewRequestAppointment(repo, nil)

		_, err := uc.Execute(ctx, RequestAppointmentInput{
			VehicleID:   uuid.NewString(),
			ScheduledAt: futureSlot(),
		})
		if !httperr.IsKind(err, httperr.KindNotFound) {
			t.Fatalf("expected not found error, got %v", err)
		}
	})

	t.Run("rejects a past slot", func(t *testing.T) {
		repo := newFakeRepository()
		vehicle := repo.addVehicle("ABC123")
		uc := NewRequestAppointment(repo, nil)

		_, err := uc.Execute(ctx, RequestAppointmentInput{
			VehicleID:   vehicle.ID,
			ScheduledAt: time.Now().Add(-time.Hour),
		})
		if !httperr.IsBusiness(err, "scheduled_at_in_past") {
			t.Fatalf("expected scheduled_at_in_past, got %v", err)
		}
	})

	t.Run("rejects a duplicate live slot for the same vehicle", func(t *testing.T) {
		repo := newFakeRepository()
		vehicle := repo.addVehicle("ABC123")
		slot := futureSlot()
		repo.addAppointment(vehicle.ID, slot, domain.StatusPending)

		uc := NewRequestAppointment(repo, nil)

		_, err := uc.Execute(ctx, RequestAppointmentInput{
			VehicleID:   vehicle.ID,
			ScheduledAt: slot,
		})
		if !httperr.IsBusiness(err, "schedule_conflict") {
			t.Fatalf("expected schedule_conflict, got %v", err)
		}
	})

	t.Run("a cancelled appointment frees its slot", func(t *testing.T) {
		repo := newFakeRepository()
		vehicle := repo.addVehicle("ABC123")
		slot := futureSlot()
		repo.addAppointment(vehicle.ID, slot, domain.StatusCancelled)

		uc := NewRequestAppointment(repo, nil)

		if _, err := uc.Execute(ctx, RequestAppointmentInput{
			VehicleID:   vehicle.ID,
			ScheduledAt: slot,
		}); err != nil {
			t.Fatalf("expected the slot to be free, got %v", err)
		}
	})

	t.Run("a completed appointment frees its slot", func(t *testing.T) {
		repo := newFakeRepository()
		vehicle := repo.addVehicle("ABC123")
		slot := futureSlot()
		repo.addAppointment(vehicle.ID, slot, domain.StatusCompleted)

		uc := NewRequestAppointment(repo, nil)

		if _, err := uc.Execute(ctx, RequestAppointmentInput{
			VehicleID:   vehicle.ID,
			ScheduledAt: slot,
		}); err != nil {
			t.Fatalf("expected the slot to be free, got %v", err)
		}
	})

	t.Run("the same slot on different vehicles does not conflict", func(t *testing.T) {
		repo := newFakeRepository()
		first := repo.addVehicle("ABC123")
		second := repo.addVehicle("AB123CD")
		slot := futureSlot()
		repo.addAppointment(first.ID, slot, domain.StatusConfirmed)

		uc := NewRequestAppointment(repo, nil)

		if _, err := uc.Execute(ctx, RequestAppointmentInput{
			VehicleID:   second.ID,
			ScheduledAt: slot,
		}); err != nil {
			t.Fatalf("expected no conflict across vehicles, got %v", err)
		}
	})
}
