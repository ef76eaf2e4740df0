package appointment

import "time"

const DefaultListLimit = 100

// ListFilter enumerates every supported query parameter for appointment
// listings. Zero values mean "no filter".
type ListFilter struct {
	Status    Status
	VehicleID string
	From      *time.Time
	To        *time.Time
	Limit     int
}
