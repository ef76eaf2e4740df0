package inspection

import "time"

const DefaultListLimit = 50

// ListFilter enumerates every supported query parameter for inspection
// listings. Zero values mean "no filter".
type ListFilter struct {
	TechnicianID string
	Result       Result
	From         *time.Time
	To           *time.Time
	Limit        int
}
