package appointment

import (
	"context"
	"time"

	"github.com/VTVServicesAR/inspection-scheduler/internal/cache"
	domain "github.com/VTVServicesAR/inspection-scheduler/internal/domain/appointment"
	"github.com/VTVServicesAR/inspection-scheduler/internal/dto"
)

// ListAvailableAppointments returns the pending slots, optionally narrowed
// to one day. The listing is cached with a short TTL, so a slot requested a
// moment ago may take up to the TTL to appear; writes never touch the cache.
type ListAvailableAppointments struct {
	repo  domain.Repository
	cache *cache.Cache
}

func NewListAvailableAppointments(
	repo domain.Repository,
	cache *cache.Cache,
) *ListAvailableAppointments {
	return &ListAvailableAppointments{
		repo:  repo,
		cache: cache,
	}
}

func (uc *ListAvailableAppointments) Execute(
	ctx context.Context,
	day *time.Time,
) ([]dto.AppointmentListDTO, error) {

	key := "appointments:available"
	if day != nil {
		key += ":" + day.Format("2006-01-02")
	}

	var cached []dto.AppointmentListDTO
	if uc.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	appointments, err := uc.repo.ListPendingAppointments(ctx, day)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:           ap.ID,
			ScheduledAt:  ap.ScheduledAt,
			Status:       ap.Status,
			VehiclePlate: ap.Vehicle.Plate,
			VehicleBrand: ap.Vehicle.Brand,
			VehicleModel: ap.Vehicle.Model,
		})
	}

	uc.cache.SetJSON(ctx, key, out)

	return out, nil
}
