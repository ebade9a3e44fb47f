package database

import (
	"fmt"
	"os"
	"time"

	"site-tracker/internal/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Open connects to the database and runs migrations. Tests use it
// directly with an in-memory sqlite DSN.
func Open(driver, dsn string) error {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return fmt.Errorf("unknown db driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Material{},
		&models.Equipment{},
		&models.ServiceLog{},
		&models.ActivityLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	DB = db
	return nil
}

func Init(driver, dsn string) {
	const maxAttempts = 10

	var err error
	for i := 1; i <= maxAttempts; i++ {
		logrus.Infof("connecting to db (attempt %d/%d)", i, maxAttempts)

		err = Open(driver, dsn)
		if err == nil {
			logrus.Info("connected to db")
			break
		}

		logrus.Warnf("db connect failed: %v", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		logrus.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	createDefaultAdmin()
}

// The admin role has no in-app assignment path, so the single admin
// account comes from the environment.
func createDefaultAdmin() {
	name := os.Getenv("ADMIN_USERNAME")
	if name == "" {
		name = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
	}

	var count int64
	if err := DB.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		logrus.Warnf("failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Warnf("failed to hash default admin password: %v", err)
		return
	}

	admin := models.User{
		Name:         name,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		logrus.Warnf("failed to create default admin: %v", err)
		return
	}

	logrus.Infof("created default admin user: %s", name)
}
