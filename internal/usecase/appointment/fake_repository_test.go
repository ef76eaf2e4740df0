package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/VTVServicesAR/inspection-scheduler/internal/domain/appointment"
	"github.com/VTVServicesAR/inspection-scheduler/internal/httperr"
	"github.com/VTVServicesAR/inspection-scheduler/internal/models"
)

// fakeRepository is an in-memory stand-in mirroring the store's contract,
// including atomic conflict detection on create.
type fakeRepository struct {
	vehicles     map[string]*models.Vehicle
	appointments map[string]*models.Appointment
}

var _ domain.Repository = (*fakeRepository)(nil)

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		vehicles:     map[string]*models.Vehicle{},
		appointments: map[string]*models.Appointment{},
	}
}

func (f *fakeRepository) addVehicle(plate string) *models.Vehicle {
	v := &models.Vehicle{
		ID:      uuid.NewString(),
		Plate:   plate,
		Brand:   "Toyota",
		Model:   "Corolla",
		OwnerID: uuid.NewString(),
	}
	f.vehicles[v.ID] = v
	return v
}

func (f *fakeRepository) addAppointment(vehicleID string, at time.Time, status domain.Status) *models.Appointment {
	ap := &models.Appointment{
		ID:          uuid.NewString(),
		VehicleID:   vehicleID,
		ScheduledAt: at,
		Status:      string(status),
	}
	f.appointments[ap.ID] = ap
	return ap
}

func (f *fakeRepository) GetVehicleByID(ctx context.Context, id string) (*models.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, httperr.ErrNotFound("vehicle", id)
	}
	return v, nil
}

func (f *fakeRepository) GetVehicleByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	for _, v := range f.vehicles {
		if v.Plate == plate {
			return v, nil
		}
	}
	return nil, httperr.ErrNotFound("vehicle", plate)
}

func (f *fakeRepository) hasConflict(vehicleID string, at time.Time, excludeID string) bool {
	for _, ap := range f.appointments {
		if ap.ID == excludeID {
			continue
		}
		if ap.VehicleID == vehicleID &&
			ap.ScheduledAt.Equal(at) &&
			domain.Status(ap.Status).IsLive() {
			return true
		}
	}
	return false
}

func (f *fakeRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.hasConflict(ap.VehicleID, ap.ScheduledAt, "") {
		return httperr.ErrConflict("schedule_conflict")
	}
	if ap.ID == "" {
		ap.ID = uuid.NewString()
	}
	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepository) AssertNoScheduleConflict(ctx context.Context, vehicleID string, scheduledAt time.Time, excludeID string) error {
	if f.hasConflict(vehicleID, scheduledAt, excludeID) {
		return httperr.ErrConflict("schedule_conflict")
	}
	return nil
}

func (f *fakeRepository) GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, httperr.ErrNotFound("appointment", id)
	}
	found := *ap
	return &found, nil
}

func (f *fakeRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if _, ok := f.appointments[ap.ID]; !ok {
		return httperr.ErrNotFound("appointment", ap.ID)
	}
	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepository) ListAppointments(ctx context.Context, filter domain.ListFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if filter.Status != "" && domain.Status(ap.Status) != filter.Status {
			continue
		}
		if filter.VehicleID != "" && ap.VehicleID != filter.VehicleID {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeRepository) ListPendingAppointments(ctx context.Context, day *time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if domain.Status(ap.Status) != domain.StatusPending {
			continue
		}
		if day != nil {
			y, m, d := day.Date()
			ay, am, ad := ap.ScheduledAt.Date()
			if y != ay || m != am || d != ad {
				continue
			}
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeRepository) ListAppointmentsByVehicle(ctx context.Context, vehicleID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.VehicleID == vehicleID {
			out = append(out, *ap)
		}
	}
	return out, nil
}
