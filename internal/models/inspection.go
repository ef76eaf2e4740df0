package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Inspection struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	// One inspection per appointment; the unique index enforces it at the
	// store even if a concurrent create slips past the usecase guard.
	AppointmentID string      `gorm:"type:uuid;uniqueIndex;not null" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"appointment"`

	TechnicianID string `gorm:"type:uuid;index;not null" json:"technician_id"`
	Technician   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"technician"`

	Scores []InspectionScore `gorm:"foreignKey:InspectionID;references:ID" json:"scores"`

	TotalScore   int    `gorm:"not null" json:"total_score"`
	Result       string `gorm:"size:20;index;not null" json:"result"`
	GeneralNotes string `gorm:"size:500" json:"general_notes"`

	InspectedAt time.Time `gorm:"index;not null" json:"inspected_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InspectionScore is one row of the 8-point checklist, kept ordered by
// Position (1-based).
type InspectionScore struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	InspectionID string `gorm:"type:uuid;index;not null" json:"-"`

	Position int    `gorm:"not null" json:"position"`
	Label    string `gorm:"size:100;not null" json:"label"`
	Value    int    `gorm:"not null" json:"value"`
	Notes    string `gorm:"size:255" json:"notes"`
}

func (i *Inspection) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
