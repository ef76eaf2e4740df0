package inspection

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	apdomain "github.com/VTVServicesAR/inspection-scheduler/internal/domain/appointment"
	domain "github.com/VTVServicesAR/inspection-scheduler/internal/domain/inspection"
	"github.com/VTVServicesAR/inspection-scheduler/internal/httperr"
	"github.com/VTVServicesAR/inspection-scheduler/internal/models"
)

type fakeRepository struct {
	users        map[string]*models.User
	appointments map[string]*models.Appointment
	inspections  map[string]*models.Inspection
}

var _ domain.Repository = (*fakeRepository)(nil)

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		users:        map[string]*models.User{},
		appointments: map[string]*models.Appointment{},
		inspections:  map[string]*models.Inspection{},
	}
}

func (f *fakeRepository) addUser(role string) *models.User {
	u := &models.User{
		ID:        uuid.NewString(),
		FirstName: "Ana",
		LastName:  "Suarez",
		Role:      role,
	}
	f.users[u.ID] = u
	return u
}

func (f *fakeRepository) addAppointment(status apdomain.Status) *models.Appointment {
	ap := &models.Appointment{
		ID:          uuid.NewString(),
		VehicleID:   uuid.NewString(),
		ScheduledAt: time.Now().Add(24 * time.Hour),
		Status:      string(status),
	}
	f.appointments[ap.ID] = ap
	return ap
}

func (f *fakeRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, httperr.ErrNotFound("user", id)
	}
	return u, nil
}

func (f *fakeRepository) GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, httperr.ErrNotFound("appointment", id)
	}
	found := *ap
	return &found, nil
}

func (f *fakeRepository) CreateInspection(ctx context.Context, insp *models.Inspection) error {
	for _, existing := range f.inspections {
		if existing.AppointmentID == insp.AppointmentID {
			return httperr.ErrConflict("inspection_already_exists")
		}
	}
	if insp.ID == "" {
		insp.ID = uuid.NewString()
	}
	stored := *insp
	f.inspections[insp.ID] = &stored
	return nil
}

func (f *fakeRepository) GetInspectionByID(ctx context.Context, id string) (*models.Inspection, error) {
	insp, ok := f.inspections[id]
	if !ok {
		return nil, httperr.ErrNotFound("inspection", id)
	}
	found := *insp
	return &found, nil
}

func (f *fakeRepository) GetInspectionByAppointment(ctx context.Context, appointmentID string) (*models.Inspection, error) {
	for _, insp := range f.inspections {
		if insp.AppointmentID == appointmentID {
			found := *insp
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) UpdateInspection(ctx context.Context, insp *models.Inspection) error {
	if _, ok := f.inspections[insp.ID]; !ok {
		return httperr.ErrNotFound("inspection", insp.ID)
	}
	stored := *insp
	f.inspections[insp.ID] = &stored
	return nil
}

func (f *fakeRepository) ListInspections(ctx context.Context, filter domain.ListFilter) ([]models.Inspection, error) {
	var out []models.Inspection
	for _, insp := range f.inspections {
		if filter.TechnicianID != "" && insp.TechnicianID != filter.TechnicianID {
			continue
		}
		if filter.Result != "" && insp.Result != string(filter.Result) {
			continue
		}
		out = append(out, *insp)
	}
	return out, nil
}

func (f *fakeRepository) ListInspectionsByVehicle(ctx context.Context, vehicleID string) ([]models.Inspection, error) {
	var out []models.Inspection
	for _, insp := range f.inspections {
		ap, ok := f.appointments[insp.AppointmentID]
		if ok && ap.VehicleID == vehicleID {
			out = append(out, *insp)
		}
	}
	return out, nil
}

// fakeCompleter records how often completion runs and can be forced to
// fail.
type fakeCompleter struct {
	repo  *fakeRepository
	calls int
	fail  error
}

func (f *fakeCompleter) Execute(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	f.calls++
	if f.fail != nil {
		return nil, f.fail
	}
	ap, ok := f.repo.appointments[appointmentID]
	if !ok {
		return nil, httperr.ErrNotFound("appointment", appointmentID)
	}
	ap.Status = string(apdomain.StatusCompleted)
	return ap, nil
}

var errCompleterDown = errors.New("completer unavailable")
