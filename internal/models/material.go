package models

import "time"

// Material is a consumable inventory item. Rows are hard-deleted, so no
// soft-delete column here.
type Material struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	Name         string  `gorm:"size:255;not null"`
	Quantity     int     `gorm:"not null"`
	Unit         string  `gorm:"size:50;not null"`
	UnitPrice    float64 `gorm:"not null"`
	Supplier     string  `gorm:"size:255;not null"`
	MaterialType string  `gorm:"size:100;not null"`
	Description  string  `gorm:"type:text"`

	// creator; set once at insert, kept nullable so removing a user
	// does not cascade into materials
	UserID *uint
	User   *User
}
