package models

import "time"

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleCrewLeader UserRole = "crew_leader"
	RoleCrewMember UserRole = "crew_member"
)

type User struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	Name         string   `gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null;check:role IN ('admin','crew_leader','crew_member')"`
}
