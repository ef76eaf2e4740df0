package appointment

import (
	"context"
	"time"

	"github.com/VTVServicesAR/inspection-scheduler/internal/models"
)

type Repository interface {
	// -------- Vehicle lookups --------
	GetVehicleByID(
		ctx context.Context,
		id string,
	) (*models.Vehicle, error)

	GetVehicleByPlate(
		ctx context.Context,
		plate string,
	) (*models.Vehicle, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment persists the record only if no live appointment
	// holds the same vehicle+timestamp slot; the check and the insert run
	// atomically and a clash surfaces as a conflict error.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// AssertNoScheduleConflict fails with a conflict error when a live
	// appointment for the vehicle already occupies scheduledAt. excludeID
	// skips the record being revalidated.
	AssertNoScheduleConflict(
		ctx context.Context,
		vehicleID string,
		scheduledAt time.Time,
		excludeID string,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentByID(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listings --------
	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)

	ListPendingAppointments(
		ctx context.Context,
		day *time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsByVehicle(
		ctx context.Context,
		vehicleID string,
	) ([]models.Appointment, error)
}
