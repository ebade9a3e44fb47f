package models

import "time"

type ActivityLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	UserID uint
	User   User

	Entity   string `gorm:"size:50;not null"` // "material", "equipment", "service_log"
	EntityID uint
	Action   string `gorm:"size:50;not null"` // "create", "update", "delete"
	Details  string `gorm:"type:text"`
}
