package models

import "time"

// Equipment is a fleet asset (vehicle or machine). Create and view only —
// there is deliberately no edit or delete path.
type Equipment struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	Name    string `gorm:"size:255;not null"`
	Type    string `gorm:"size:100;not null"`
	Make    string `gorm:"size:100"`
	Model   string `gorm:"size:100"`
	Year    int
	Mileage int

	OilChangeDue  *time.Time
	InspectionDue *time.Time

	Notes     string `gorm:"type:text"`
	ImagePath string `gorm:"size:255"` // stored filename only, empty if no upload

	AddedBy *uint
	Adder   *User `gorm:"foreignKey:AddedBy"`

	ServiceLogs []ServiceLog
}

// ServiceLog is an append-only maintenance record attached to one
// equipment item.
type ServiceLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	EquipmentID uint      `gorm:"not null"`
	ServiceDate time.Time `gorm:"not null"`
	Description string    `gorm:"type:text"`
	PhotoPath   string    `gorm:"size:255"`

	AddedBy *uint
	Adder   *User `gorm:"foreignKey:AddedBy"`
}
