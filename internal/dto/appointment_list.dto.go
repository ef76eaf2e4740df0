package dto

import "time"

type AppointmentListDTO struct {
	ID                 string    `json:"id"`
	ScheduledAt        time.Time `json:"scheduled_at"`
	Status             string    `json:"status"`
	VehiclePlate       string    `json:"vehicle_plate"`
	VehicleBrand       string    `json:"vehicle_brand"`
	VehicleModel       string    `json:"vehicle_model"`
	CancellationReason string    `json:"cancellation_reason,omitempty"`
}
