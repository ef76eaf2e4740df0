package inspection

import (
	"context"

	"github.com/VTVServicesAR/inspection-scheduler/internal/models"
)

type Repository interface {
	// -------- Reference lookups --------
	GetUserByID(
		ctx context.Context,
		id string,
	) (*models.User, error)

	GetAppointmentByID(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	// -------- Inspection --------
	CreateInspection(
		ctx context.Context,
		insp *models.Inspection,
	) error

	GetInspectionByID(
		ctx context.Context,
		id string,
	) (*models.Inspection, error)

	// GetInspectionByAppointment returns (nil, nil) when the appointment
	// has no inspection yet.
	GetInspectionByAppointment(
		ctx context.Context,
		appointmentID string,
	) (*models.Inspection, error)

	// UpdateInspection replaces the score rows together with the parent
	// record in one transaction.
	UpdateInspection(
		ctx context.Context,
		insp *models.Inspection,
	) error

	ListInspections(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Inspection, error)

	ListInspectionsByVehicle(
		ctx context.Context,
		vehicleID string,
	) ([]models.Inspection, error)
}
