package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/VTVServicesAR/inspection-scheduler/internal/domain/inspection"
	"github.com/VTVServicesAR/inspection-scheduler/internal/httperr"
	"github.com/VTVServicesAR/inspection-scheduler/internal/models"
)

type InspectionGormRepository struct {
	db *gorm.DB
}

func NewInspectionGormRepository(db *gorm.DB) *InspectionGormRepository {
	return &InspectionGormRepository{db: db}
}

// --------------------------------------------------
// Reference lookups
// --------------------------------------------------

func (r *InspectionGormRepository) GetUserByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("user", id)
		}
		return nil, err
	}
	return &u, nil
}

func (r *InspectionGormRepository) GetAppointmentByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Vehicle").
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment", id)
		}
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Inspection
// --------------------------------------------------

func (r *InspectionGormRepository) CreateInspection(
	ctx context.Context,
	insp *models.Inspection,
) error {
	// gorm persists the score rows with the parent in one transaction.
	err := r.db.WithContext(ctx).Create(insp).Error
	if isUniqueViolation(err) {
		return httperr.ErrConflict("inspection_already_exists")
	}
	return err
}

func (r *InspectionGormRepository) GetInspectionByID(
	ctx context.Context,
	id string,
) (*models.Inspection, error) {

	var insp models.Inspection
	if err := r.preloaded(ctx).
		Where("id = ?", id).
		First(&insp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("inspection", id)
		}
		return nil, err
	}

	return &insp, nil
}

func (r *InspectionGormRepository) GetInspectionByAppointment(
	ctx context.Context,
	appointmentID string,
) (*models.Inspection, error) {

	var insp models.Inspection
	err := r.preloaded(ctx).
		Where("appointment_id = ?", appointmentID).
		First(&insp).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &insp, nil
}

func (r *InspectionGormRepository) UpdateInspection(
	ctx context.Context,
	insp *models.Inspection,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Replace the checklist rows wholesale; positions are stable so a
		// partial diff buys nothing.
		if err := tx.
			Where("inspection_id = ?", insp.ID).
			Delete(&models.InspectionScore{}).Error; err != nil {
			return err
		}

		return tx.Save(insp).Error
	})
}

func (r *InspectionGormRepository) ListInspections(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Inspection, error) {

	q := r.preloaded(ctx).Order("inspected_at DESC")

	if filter.TechnicianID != "" {
		q = q.Where("technician_id = ?", filter.TechnicianID)
	}
	if filter.Result != "" {
		q = q.Where("result = ?", string(filter.Result))
	}
	if filter.From != nil {
		q = q.Where("inspected_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("inspected_at <= ?", *filter.To)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}

	var insps []models.Inspection
	if err := q.Limit(limit).Find(&insps).Error; err != nil {
		return nil, err
	}

	return insps, nil
}

func (r *InspectionGormRepository) ListInspectionsByVehicle(
	ctx context.Context,
	vehicleID string,
) ([]models.Inspection, error) {

	var insps []models.Inspection
	if err := r.preloaded(ctx).
		Joins("JOIN appointments ON appointments.id = inspections.appointment_id").
		Where("appointments.vehicle_id = ?", vehicleID).
		Order("inspected_at DESC").
		Find(&insps).Error; err != nil {
		return nil, err
	}

	return insps, nil
}

func (r *InspectionGormRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Appointment").
		Preload("Appointment.Vehicle").
		Preload("Technician").
		Preload("Scores", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
}

// Compile-time check
var _ domain.Repository = (*InspectionGormRepository)(nil)
