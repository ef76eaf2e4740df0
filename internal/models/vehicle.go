package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Vehicle struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Plate string `gorm:"size:10;uniqueIndex;not null" json:"plate"`
	Brand string `gorm:"size:50;not null" json:"brand"`
	Model string `gorm:"size:50;not null" json:"model"`

	OwnerID string `gorm:"type:uuid;index;not null" json:"owner_id"`
	Owner   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"owner"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// Plates are stored uppercase so lookups by plate are case-insensitive.
func (v *Vehicle) BeforeSave(tx *gorm.DB) error {
	v.Plate = strings.ToUpper(strings.TrimSpace(v.Plate))
	return nil
}
