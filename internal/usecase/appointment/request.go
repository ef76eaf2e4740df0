package appointment

import (
	"context"
	"time"

	"github.com/VTVServicesAR/inspection-scheduler/internal/audit"
	domain "github.com/VTVServicesAR/inspection-scheduler/internal/domain/appointment"
	"github.com/VTVServicesAR/inspection-scheduler/internal/httperr"
	"github.com/VTVServicesAR/inspection-scheduler/internal/models"
	"github.com/VTVServicesAR/inspection-scheduler/internal/timezone"
	"github.com/VTVServicesAR/inspection-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type RequestAppointmentInput struct {
	VehicleID   string
	ScheduledAt time.Time
	RequestedBy string
}

// ======================================================
// USE CASE
// ======================================================

type RequestAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRequestAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RequestAppointment {
	return &RequestAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RequestAppointment) Execute(
	ctx context.Context,
	in RequestAppointmentInput,
) (*models.Appointment, error) {

	if !validators.IsValidID(in.VehicleID) {
		return nil, httperr.ErrValidation("invalid_vehicle_id")
	}

	if !in.ScheduledAt.After(timezone.Now()) {
		return nil, httperr.ErrValidation("scheduled_at_in_past")
	}

	vehicle, err := uc.repo.GetVehicleByID(ctx, in.VehicleID)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		VehicleID:   vehicle.ID,
		ScheduledAt: in.ScheduledAt,
		Status:      string(domain.InitialStatus()),
	}

	// The conflict check runs inside the create so two racing requests
	// for the same vehicle+slot cannot both pass it.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actor(in.RequestedBy),
		Action:   "appointment_requested",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"vehicle_id":   vehicle.ID,
			"scheduled_at": in.ScheduledAt,
		},
	})

	return ap, nil
}

func actor(userID string) *string {
	if userID == "" {
		return nil
	}
	return &userID
}
