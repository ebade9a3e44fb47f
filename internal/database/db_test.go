package database

import (
	"testing"

	"site-tracker/internal/models"
)

func openTestDB(t *testing.T) {
	t.Helper()
	if err := Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared"); err != nil {
		t.Fatalf("open: %v", err)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if err := Open("oracle", "dsn"); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestRoleCheckConstraint(t *testing.T) {
	openTestDB(t)

	good := models.User{Name: "ok", PasswordHash: "x", Role: models.RoleCrewLeader}
	if err := DB.Create(&good).Error; err != nil {
		t.Fatalf("valid role rejected: %v", err)
	}

	bad := models.User{Name: "nope", PasswordHash: "x", Role: models.UserRole("superuser")}
	if err := DB.Create(&bad).Error; err == nil {
		t.Fatalf("storage accepted a role outside the allowed set")
	}
}

func TestUniqueUserName(t *testing.T) {
	openTestDB(t)

	u1 := models.User{Name: "dup", PasswordHash: "x", Role: models.RoleCrewMember}
	if err := DB.Create(&u1).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	u2 := models.User{Name: "dup", PasswordHash: "y", Role: models.RoleCrewMember}
	if err := DB.Create(&u2).Error; err == nil {
		t.Fatalf("duplicate name accepted")
	}
}

func TestRecordActivity(t *testing.T) {
	openTestDB(t)

	u := models.User{Name: "logger", PasswordHash: "x", Role: models.RoleAdmin}
	DB.Create(&u)

	RecordActivity(u.ID, "material", 7, "delete", "Deleted material id 7")

	var log models.ActivityLog
	if err := DB.Preload("User").First(&log).Error; err != nil {
		t.Fatalf("activity entry not written: %v", err)
	}
	if log.Entity != "material" || log.Action != "delete" || log.User.Name != "logger" {
		t.Fatalf("unexpected entry: %+v", log)
	}
}
