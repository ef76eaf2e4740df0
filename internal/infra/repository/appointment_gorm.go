package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/VTVServicesAR/inspection-scheduler/internal/domain/appointment"
	"github.com/VTVServicesAR/inspection-scheduler/internal/httperr"
	"github.com/VTVServicesAR/inspection-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Vehicle lookups
// --------------------------------------------------

func (r *AppointmentGormRepository) GetVehicleByID(
	ctx context.Context,
	id string,
) (*models.Vehicle, error) {

	var v models.Vehicle
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("vehicle", id)
		}
		return nil, err
	}
	return &v, nil
}

func (r *AppointmentGormRepository) GetVehicleByPlate(
	ctx context.Context,
	plate string,
) (*models.Vehicle, error) {

	var v models.Vehicle
	if err := r.db.WithContext(ctx).
		Where("plate = ?", plate).
		First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("vehicle", plate)
		}
		return nil, err
	}
	return &v, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// liveConflictQuery selects the live appointments holding vehicleID's slot
// at scheduledAt. excludeID skips the record being revalidated.
func liveConflictQuery(
	db *gorm.DB,
	vehicleID string,
	scheduledAt time.Time,
	excludeID string,
) *gorm.DB {

	q := db.Model(&models.Appointment{}).
		Where(
			"vehicle_id = ? AND scheduled_at = ? AND status IN ?",
			vehicleID,
			scheduledAt,
			liveStatuses(),
		)

	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	return q
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Lock the conflicting rows themselves; postgres does not accept
		// FOR UPDATE together with an aggregate.
		var conflicts []models.Appointment
		if err := liveConflictQuery(tx, ap.VehicleID, ap.ScheduledAt, "").
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrConflict("schedule_conflict")
		}

		return tx.Create(ap).Error
	})

	// The partial unique index can still fire when two transactions race;
	// report it the same way as the in-transaction check.
	if isUniqueViolation(err) {
		return httperr.ErrConflict("schedule_conflict")
	}

	return err
}

func (r *AppointmentGormRepository) AssertNoScheduleConflict(
	ctx context.Context,
	vehicleID string,
	scheduledAt time.Time,
	excludeID string,
) error {

	var count int64
	if err := liveConflictQuery(
		r.db.WithContext(ctx),
		vehicleID,
		scheduledAt,
		excludeID,
	).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrConflict("schedule_conflict")
	}

	return nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
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

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	err := r.db.WithContext(ctx).Save(ap).Error
	if isUniqueViolation(err) {
		return httperr.ErrConflict("schedule_conflict")
	}
	return err
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Vehicle").
		Order("scheduled_at DESC")

	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	if filter.VehicleID != "" {
		q = q.Where("vehicle_id = ?", filter.VehicleID)
	}
	if filter.From != nil {
		q = q.Where("scheduled_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("scheduled_at <= ?", *filter.To)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}

	var aps []models.Appointment
	if err := q.Limit(limit).Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListPendingAppointments(
	ctx context.Context,
	day *time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Vehicle").
		Where("status = ?", string(domain.StatusPending)).
		Order("scheduled_at ASC")

	if day != nil {
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		end := start.Add(24 * time.Hour)
		q = q.Where("scheduled_at >= ? AND scheduled_at < ?", start, end)
	}

	var aps []models.Appointment
	if err := q.Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsByVehicle(
	ctx context.Context,
	vehicleID string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Vehicle").
		Where("vehicle_id = ?", vehicleID).
		Order("scheduled_at DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func liveStatuses() []string {
	return []string{
		string(domain.StatusPending),
		string(domain.StatusConfirmed),
	}
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
