package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID   *string `gorm:"type:uuid;index" json:"user_id"`
	Action   string  `gorm:"size:50;index;not null" json:"action"`
	Entity   string  `gorm:"size:30;not null" json:"entity"`
	EntityID *string `gorm:"type:uuid" json:"entity_id"`
	Metadata string  `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
